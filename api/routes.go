package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcast-catalog/api/episodes"
	"github.com/killallgit/podcast-catalog/api/health"
	"github.com/killallgit/podcast-catalog/api/podcasts"
	"github.com/killallgit/podcast-catalog/api/types"
	"github.com/killallgit/podcast-catalog/api/version"
	_ "github.com/killallgit/podcast-catalog/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil || deps.Config == nil {
		return errors.New("dependencies are missing configuration")
	}
	if deps.PodcastService == nil || deps.EpisodeService == nil {
		return errors.New("podcast and episode services are required")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// Sync endpoints call upstream services and get a tighter budget than reads
	readLimit, syncLimit := NoRateLimit(), NoRateLimit()
	if rl := deps.Config.RateLimiting; rl.Enabled {
		readLimit = PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, "read", rl.RPS, rl.Burst)
		syncLimit = PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, "sync", rl.SyncRPS, rl.SyncBurst)
	}

	v1 := engine.Group("/api/v1")

	podcasts.RegisterRoutes(v1.Group("/podcasts"), deps, readLimit, syncLimit)

	episodeGroup := v1.Group("/episodes")
	episodeGroup.Use(readLimit)
	episodes.RegisterRoutes(episodeGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "The requested endpoint was not found",
			Error:   "NOT_FOUND",
			Details: gin.H{"path": c.Request.URL.Path},
		})
	}
}

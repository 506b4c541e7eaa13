package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// RegisterRoutes registers podcast routes.
// Rate limiting is applied at the route registration level.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, readMiddleware, syncMiddleware gin.HandlerFunc) {
	// Reconcile and explicit episode sync reach upstream services
	router.POST("/search", syncMiddleware, PostSearch(deps))
	router.POST("/:id/sync", syncMiddleware, PostSync(deps))
	router.POST("/:id/refresh", syncMiddleware, PostRefresh(deps))

	router.GET("", readMiddleware, GetList(deps))
	router.GET("/favorites", readMiddleware, GetFavorites(deps))
	router.GET("/:id", readMiddleware, GetPodcast(deps))
	router.DELETE("/:id", readMiddleware, DeletePodcast(deps))
	router.PATCH("/:id/favorite", readMiddleware, PatchFavorite(deps))
	router.GET("/:id/episodes", readMiddleware, GetEpisodes(deps))
	router.GET("/:id/episodes/latest", readMiddleware, GetLatestEpisode(deps))
}

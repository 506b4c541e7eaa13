package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/favorites", GetFavorites(deps))
	router.GET("/:id", GetEpisode(deps))
	router.PATCH("/:id/favorite", PatchFavorite(deps))
}

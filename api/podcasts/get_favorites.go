package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// GetFavorites lists favorite podcasts
// @Summary      List favorite podcasts
// @Tags         podcasts
// @Produce      json
// @Param        page query int false "Page number" default(1) minimum(1)
// @Param        limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Success      200 {object} types.PodcastListResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/favorites [get]
func GetFavorites(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := types.ParsePagination(c)

		result, err := deps.PodcastService.ListFavoritePodcasts(c.Request.Context(), page, limit)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, result)
	}
}

package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// GetFavorites lists favorite episodes across all podcasts
// @Summary      List favorite episodes
// @Description  Favorite episodes with their podcast, most recently stored first.
// @Tags         episodes
// @Produce      json
// @Param        page query int false "Page number" default(1) minimum(1)
// @Param        limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Success      200 {object} types.EpisodeListResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/episodes/favorites [get]
func GetFavorites(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := types.ParsePagination(c)

		result, err := deps.EpisodeService.ListFavoriteEpisodes(c.Request.Context(), page, limit)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, result)
	}
}

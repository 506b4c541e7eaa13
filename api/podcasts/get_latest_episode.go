package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// GetLatestEpisode returns the newest episode of a podcast
// @Summary      Latest podcast episode
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} models.Episode
// @Failure      404 {object} types.ErrorResponse "Podcast not found or has no episodes"
// @Router       /api/v1/podcasts/{id}/episodes/latest [get]
func GetLatestEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episode, err := deps.EpisodeService.LatestEpisode(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, episode)
	}
}

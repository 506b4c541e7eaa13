package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// GetEpisode returns one stored episode with its podcast
// @Summary      Get episode
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Episode ID" minimum(1)
// @Success      200 {object} models.Episode
// @Failure      400 {object} types.ErrorResponse "Invalid episode ID"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/v1/episodes/{id} [get]
func GetEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episode, err := deps.EpisodeService.GetEpisode(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, episode)
	}
}

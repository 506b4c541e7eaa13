package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// PatchFavorite flips the favorite flag of an episode
// @Summary      Toggle episode favorite
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Episode ID" minimum(1)
// @Success      200 {object} models.Episode
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Failure      409 {object} types.ErrorResponse "Too many concurrent toggles"
// @Router       /api/v1/episodes/{id}/favorite [patch]
func PatchFavorite(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episode, err := deps.EpisodeService.ToggleFavorite(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, episode)
	}
}

package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// PatchFavorite flips the favorite flag of a podcast
// @Summary      Toggle podcast favorite
// @Description  Atomically inverts the favorite flag and returns the updated podcast.
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} models.Podcast
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Failure      409 {object} types.ErrorResponse "Too many concurrent toggles"
// @Router       /api/v1/podcasts/{id}/favorite [patch]
func PatchFavorite(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.PodcastService.ToggleFavorite(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, podcast)
	}
}

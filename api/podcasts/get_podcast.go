package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// GetPodcast returns one stored podcast
// @Summary      Get podcast
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} models.Podcast
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.PodcastService.GetPodcast(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, podcast)
	}
}

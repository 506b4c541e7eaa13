package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// DeletePodcast removes a podcast and its episodes
// @Summary      Delete podcast
// @Tags         podcasts
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      204 "Deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [delete]
func DeletePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PodcastService.DeletePodcast(c.Request.Context(), id); err != nil {
			types.SendError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

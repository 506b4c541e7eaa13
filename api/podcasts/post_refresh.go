package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// PostRefresh re-reads one podcast's metadata from the directory
// @Summary      Refresh podcast metadata
// @Description  Looks the podcast up in the iTunes directory by its track id and updates the stored metadata.
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} models.Podcast
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID"
// @Failure      404 {object} types.ErrorResponse "Podcast not found or no longer listed"
// @Failure      502 {object} types.ErrorResponse "Directory unavailable"
// @Router       /api/v1/podcasts/{id}/refresh [post]
func PostRefresh(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.PodcastService.RefreshPodcast(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, podcast)
	}
}

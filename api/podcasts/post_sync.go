package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// PostSync re-reads a podcast's feed and stores new episodes
// @Summary      Sync podcast episodes
// @Description  Fetches the podcast's RSS feed now. Episodes already stored under the same title are skipped.
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} episodes.IngestResult
// @Failure      400 {object} types.ErrorResponse "Podcast has no feed"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Failure      502 {object} types.ErrorResponse "Feed unavailable"
// @Router       /api/v1/podcasts/{id}/sync [post]
func PostSync(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		result, err := deps.EpisodeService.SyncEpisodes(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, result)
	}
}

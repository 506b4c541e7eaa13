package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// GetEpisodes lists a podcast's episodes, ingesting its feed on first access
// @Summary      List podcast episodes
// @Description  Pages through a podcast's episodes, newest publication first. The first read of a podcast
// @Description  without stored episodes ingests its RSS feed; concurrent first reads share one ingest.
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Param        page query int false "Page number" default(1) minimum(1)
// @Param        limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Success      200 {object} types.EpisodeListResponse
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		page, limit := types.ParsePagination(c)

		result, err := deps.EpisodeService.ListEpisodes(c.Request.Context(), id, page, limit)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, result)
	}
}

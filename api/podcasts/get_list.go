package podcasts

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// GetList lists the catalog, optionally filtered by search keyword
// @Summary      List podcasts
// @Description  Pages through stored podcasts, newest first. With a keyword, only podcasts whose search keyword
// @Description  contains it (case-insensitive) are returned and the directory is never called. Without one, an
// @Description  empty catalog is seeded once from the default keyword.
// @Tags         podcasts
// @Produce      json
// @Param        keyword query string false "Search keyword filter" example(thmanyah)
// @Param        page query int false "Page number" default(1) minimum(1)
// @Param        limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Success      200 {object} types.PodcastListResponse
// @Failure      502 {object} types.ErrorResponse "Seeding from the directory failed"
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/podcasts [get]
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := types.ParsePagination(c)
		ctx := c.Request.Context()

		var (
			result interface{}
			err    error
		)
		if keyword := strings.TrimSpace(c.Query("keyword")); keyword != "" {
			result, err = deps.PodcastService.ListPodcastsByKeyword(ctx, keyword, page, limit)
		} else {
			result, err = deps.PodcastService.ListPodcasts(ctx, page, limit)
		}
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, result)
	}
}

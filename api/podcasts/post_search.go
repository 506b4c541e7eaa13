package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// PostSearch reconciles the catalog against the directory for one keyword
// @Summary      Search and store podcasts
// @Description  Searches the iTunes directory for the keyword and upserts every result into the catalog by track id.
// @Description  Entries that fail to store are counted and reported without aborting the rest.
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        request body types.SearchRequest true "Keyword to search"
// @Success      200 {object} podcasts.ReconcileResult "Reconciliation counts and stored podcasts"
// @Failure      400 {object} types.ErrorResponse "Missing keyword"
// @Failure      502 {object} types.ErrorResponse "Directory unavailable"
// @Router       /api/v1/podcasts/search [post]
func PostSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		result, err := deps.PodcastService.Reconcile(c.Request.Context(), req.Keyword)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

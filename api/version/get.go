package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// Name is reported by the version endpoint
const Name = "Podcast Catalog API"

// Get handles version requests
// @Summary      Version
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	build := types.BuildInfo{Version: "dev", GitCommit: "unknown", BuildTime: "unknown"}
	if deps != nil && deps.Build.Version != "" {
		build = deps.Build
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        Name,
			"version":     build.Version,
			"commit":      build.GitCommit,
			"buildTime":   build.BuildTime,
			"description": "Podcast catalog with iTunes search reconciliation and lazy RSS episode sync",
			"status":      "running",
		})
	}
}

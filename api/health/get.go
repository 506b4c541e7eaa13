package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-catalog/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports database reachability and iTunes client counters.
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  getDatabaseStatus(c.Request.Context(), deps),
		}
		if deps != nil && deps.Directory != nil {
			response.Directory = deps.Directory.GetMetrics()
		}

		status := http.StatusOK
		if response.Database["status"] == "unhealthy" {
			response.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(ctx context.Context, deps *types.Dependencies) map[string]interface{} {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]interface{}{"status": "not configured", "connected": false}
	}

	if err := deps.DB.HealthCheck(ctx); err != nil {
		return map[string]interface{}{"status": "unhealthy", "connected": false, "error": err.Error()}
	}

	return map[string]interface{}{"status": "healthy", "connected": true}
}

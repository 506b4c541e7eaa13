package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-catalog/api/types"
	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/pkg/config"
)

type staticMetrics map[string]int64

func (m staticMetrics) GetMetrics() map[string]int64 { return m }

func openDB(t *testing.T) *database.DB {
	db, err := database.Initialize(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "health.db"),
	})
	require.NoError(t, err)
	return db
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupDeps      func(t *testing.T) *types.Dependencies
		expectedStatus int
		expectedHealth string
		expectedDB     string
		connected      bool
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db := openDB(t)
				t.Cleanup(func() { _ = db.Close() })
				return &types.Dependencies{DB: db, Directory: staticMetrics{"requests": 4}}
			},
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
			expectedDB:     "healthy",
			connected:      true,
		},
		{
			name: "without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
			expectedDB:     "not configured",
		},
		{
			name: "closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db := openDB(t)
				require.NoError(t, db.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "unhealthy",
			expectedDB:     "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := tt.setupDeps(t)
			router := gin.New()
			RegisterRoutes(router, deps)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response types.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedHealth, response.Status)
			assert.Equal(t, tt.expectedDB, response.Database["status"])
			assert.Equal(t, tt.connected, response.Database["connected"])
			if deps.Directory != nil {
				assert.Equal(t, int64(4), response.Directory["requests"])
			}
		})
	}
}

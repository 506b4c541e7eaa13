package episodes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-catalog/api/types"
	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/internal/services/episodes"
	"github.com/killallgit/podcast-catalog/internal/services/pagination"
	apperrors "github.com/killallgit/podcast-catalog/pkg/errors"
)

// MockEpisodeService only answers the calls these routes make
type MockEpisodeService struct {
	episodes.EpisodeService
	mock.Mock
}

func (m *MockEpisodeService) ListFavoriteEpisodes(ctx context.Context, page, limit int) (*pagination.Page[models.Episode], error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[models.Episode]), args.Error(1)
}

func (m *MockEpisodeService) GetEpisode(ctx context.Context, id uint) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeService) ToggleFavorite(ctx context.Context, id uint) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func setupRouter(svc *MockEpisodeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/episodes"), &types.Dependencies{EpisodeService: svc})
	return router
}

func TestRoutes(t *testing.T) {
	podcast := &models.Podcast{ID: 1, TrackName: "Fnjan"}

	tests := []struct {
		name       string
		method     string
		path       string
		setupMock  func(*MockEpisodeService)
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:   "favorites",
			method: http.MethodGet,
			path:   "/api/v1/episodes/favorites?page=1&limit=2",
			setupMock: func(m *MockEpisodeService) {
				m.On("ListFavoriteEpisodes", mock.Anything, 1, 2).Return(pagination.New(
					[]models.Episode{{ID: 5, Title: "Ep5", IsFavorite: true, Podcast: podcast}}, 1, 2, 3), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var page types.EpisodeListResponse
				require.NoError(t, json.Unmarshal(body, &page))
				assert.Equal(t, 2, page.Pagination.Pages)
				require.NotNil(t, page.Data[0].Podcast)
				assert.Equal(t, "Fnjan", page.Data[0].Podcast.TrackName)
			},
		},
		{
			name:   "get episode",
			method: http.MethodGet,
			path:   "/api/v1/episodes/5",
			setupMock: func(m *MockEpisodeService) {
				m.On("GetEpisode", mock.Anything, uint(5)).Return(&models.Episode{ID: 5, Title: "Ep5", Podcast: podcast}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing episode",
			method: http.MethodGet,
			path:   "/api/v1/episodes/6",
			setupMock: func(m *MockEpisodeService) {
				m.On("GetEpisode", mock.Anything, uint(6)).Return(nil, apperrors.NotFound("episode", uint(6)))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "toggle favorite",
			method: http.MethodPatch,
			path:   "/api/v1/episodes/5/favorite",
			setupMock: func(m *MockEpisodeService) {
				m.On("ToggleFavorite", mock.Anything, uint(5)).Return(&models.Episode{ID: 5, IsFavorite: true}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var episode models.Episode
				require.NoError(t, json.Unmarshal(body, &episode))
				assert.True(t, episode.IsFavorite)
			},
		},
		{
			name:       "invalid id",
			method:     http.MethodPatch,
			path:       "/api/v1/episodes/x/favorite",
			setupMock:  func(m *MockEpisodeService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockEpisodeService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			setupRouter(svc).ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w.Body.Bytes())
			}
			svc.AssertExpectations(t)
		})
	}
}

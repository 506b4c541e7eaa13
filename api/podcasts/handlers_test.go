package podcasts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-catalog/api/types"
	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/internal/services/episodes"
	"github.com/killallgit/podcast-catalog/internal/services/pagination"
	podcastsvc "github.com/killallgit/podcast-catalog/internal/services/podcasts"
	apperrors "github.com/killallgit/podcast-catalog/pkg/errors"
)

type MockPodcastService struct {
	mock.Mock
}

func (m *MockPodcastService) Reconcile(ctx context.Context, keyword string) (*podcastsvc.ReconcileResult, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*podcastsvc.ReconcileResult), args.Error(1)
}

func (m *MockPodcastService) ListPodcasts(ctx context.Context, page, limit int) (*pagination.Page[models.Podcast], error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[models.Podcast]), args.Error(1)
}

func (m *MockPodcastService) ListPodcastsByKeyword(ctx context.Context, keyword string, page, limit int) (*pagination.Page[models.Podcast], error) {
	args := m.Called(ctx, keyword, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[models.Podcast]), args.Error(1)
}

func (m *MockPodcastService) ListFavoritePodcasts(ctx context.Context, page, limit int) (*pagination.Page[models.Podcast], error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[models.Podcast]), args.Error(1)
}

func (m *MockPodcastService) GetPodcast(ctx context.Context, id uint) (*models.Podcast, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Podcast), args.Error(1)
}

func (m *MockPodcastService) RefreshPodcast(ctx context.Context, id uint) (*models.Podcast, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Podcast), args.Error(1)
}

func (m *MockPodcastService) DeletePodcast(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPodcastService) ToggleFavorite(ctx context.Context, id uint) (*models.Podcast, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Podcast), args.Error(1)
}

type MockEpisodeService struct {
	mock.Mock
}

func (m *MockEpisodeService) Ingest(ctx context.Context, podcastID uint, feedURL string) (*episodes.IngestResult, error) {
	args := m.Called(ctx, podcastID, feedURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*episodes.IngestResult), args.Error(1)
}

func (m *MockEpisodeService) SyncEpisodes(ctx context.Context, podcastID uint) (*episodes.IngestResult, error) {
	args := m.Called(ctx, podcastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*episodes.IngestResult), args.Error(1)
}

func (m *MockEpisodeService) ListEpisodes(ctx context.Context, podcastID uint, page, limit int) (*pagination.Page[models.Episode], error) {
	args := m.Called(ctx, podcastID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[models.Episode]), args.Error(1)
}

func (m *MockEpisodeService) LatestEpisode(ctx context.Context, podcastID uint) (*models.Episode, error) {
	args := m.Called(ctx, podcastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
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

func setupRouter(podcastService *MockPodcastService, episodeService *MockEpisodeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	noop := func(c *gin.Context) { c.Next() }
	RegisterRoutes(router.Group("/api/v1/podcasts"), &types.Dependencies{
		PodcastService: podcastService,
		EpisodeService: episodeService,
	}, noop, noop)
	return router
}

func podcastPage(page, limit int, total int64, data ...models.Podcast) *pagination.Page[models.Podcast] {
	return pagination.New(data, page, limit, total)
}

func TestPostSearch(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockPodcastService)
		wantStatus int
		wantError  string
	}{
		{
			name: "reconciles keyword",
			body: `{"keyword":"thmanyah"}`,
			setupMock: func(m *MockPodcastService) {
				m.On("Reconcile", mock.Anything, "thmanyah").Return(&podcastsvc.ReconcileResult{
					Keyword: "thmanyah", TotalFound: 3, Created: 3, Podcasts: []models.Podcast{},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing keyword",
			body:       `{}`,
			setupMock:  func(m *MockPodcastService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "VALIDATION",
		},
		{
			name:       "malformed body",
			body:       `{"keyword":`,
			setupMock:  func(m *MockPodcastService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "VALIDATION",
		},
		{
			name: "directory down",
			body: `{"keyword":"thmanyah"}`,
			setupMock: func(m *MockPodcastService) {
				m.On("Reconcile", mock.Anything, "thmanyah").
					Return(nil, apperrors.ExternalServiceError("itunes", errors.New("timeout")))
			},
			wantStatus: http.StatusBadGateway,
			wantError:  "EXTERNAL_SERVICE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPodcastService)
			tt.setupMock(svc)
			router := setupRouter(svc, new(MockEpisodeService))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/podcasts/search", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				var body types.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "error", body.Status)
				assert.Equal(t, tt.wantError, body.Error)
			} else {
				var result podcastsvc.ReconcileResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
				assert.Equal(t, 3, result.Created)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGetList(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(*MockPodcastService)
	}{
		{
			name:  "whole catalog",
			query: "?page=2&limit=1",
			setupMock: func(m *MockPodcastService) {
				m.On("ListPodcasts", mock.Anything, 2, 1).
					Return(podcastPage(2, 1, 3, models.Podcast{ID: 2, TrackID: 200}), nil)
			},
		},
		{
			name:  "by keyword",
			query: "?keyword=thmanyah",
			setupMock: func(m *MockPodcastService) {
				m.On("ListPodcastsByKeyword", mock.Anything, "thmanyah", 1, 10).
					Return(podcastPage(1, 10, 3, models.Podcast{ID: 2, TrackID: 200}), nil)
			},
		},
		{
			name:  "out of range values are clamped",
			query: "?page=0&limit=1000",
			setupMock: func(m *MockPodcastService) {
				m.On("ListPodcasts", mock.Anything, 1, 100).
					Return(podcastPage(1, 100, 3, models.Podcast{ID: 2, TrackID: 200}), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPodcastService)
			tt.setupMock(svc)
			router := setupRouter(svc, new(MockEpisodeService))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/podcasts"+tt.query, nil))

			require.Equal(t, http.StatusOK, w.Code)
			var body types.PodcastListResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Len(t, body.Data, 1)
			assert.Equal(t, int64(200), body.Data[0].TrackID)
			assert.Equal(t, int64(3), body.Pagination.Total)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetPodcast(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(*MockPodcastService)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/v1/podcasts/1",
			setupMock: func(m *MockPodcastService) {
				m.On("GetPodcast", mock.Anything, uint(1)).Return(&models.Podcast{ID: 1, TrackName: "Fnjan"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			path: "/api/v1/podcasts/9",
			setupMock: func(m *MockPodcastService) {
				m.On("GetPodcast", mock.Anything, uint(9)).Return(nil, apperrors.NotFound("podcast", uint(9)))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			path:       "/api/v1/podcasts/abc",
			setupMock:  func(m *MockPodcastService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPodcastService)
			tt.setupMock(svc)
			router := setupRouter(svc, new(MockEpisodeService))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetFavoritesIsNotAnID(t *testing.T) {
	svc := new(MockPodcastService)
	svc.On("ListFavoritePodcasts", mock.Anything, 1, 10).Return(podcastPage(1, 10, 0), nil)
	router := setupRouter(svc, new(MockEpisodeService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/podcasts/favorites", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDeleteAndToggle(t *testing.T) {
	svc := new(MockPodcastService)
	svc.On("DeletePodcast", mock.Anything, uint(1)).Return(nil)
	svc.On("ToggleFavorite", mock.Anything, uint(2)).Return(&models.Podcast{ID: 2, IsFavorite: true}, nil)
	svc.On("ToggleFavorite", mock.Anything, uint(3)).Return(nil, apperrors.Conflict("podcast", uint(3), "retries exhausted"))
	router := setupRouter(svc, new(MockEpisodeService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/podcasts/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/podcasts/2/favorite", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var podcast models.Podcast
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &podcast))
	assert.True(t, podcast.IsFavorite)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/podcasts/3/favorite", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	svc.AssertExpectations(t)
}

func TestPostRefresh(t *testing.T) {
	svc := new(MockPodcastService)
	svc.On("RefreshPodcast", mock.Anything, uint(1)).Return(&models.Podcast{ID: 1, TrackName: "Fnjan"}, nil)
	svc.On("RefreshPodcast", mock.Anything, uint(2)).Return(nil, apperrors.ExternalServiceError("itunes", errors.New("timeout")))
	router := setupRouter(svc, new(MockEpisodeService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/podcasts/1/refresh", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var podcast models.Podcast
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &podcast))
	assert.Equal(t, "Fnjan", podcast.TrackName)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/podcasts/2/refresh", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)

	svc.AssertExpectations(t)
}

func TestEpisodeRoutes(t *testing.T) {
	episodeService := new(MockEpisodeService)
	episodeService.On("ListEpisodes", mock.Anything, uint(1), 1, 5).
		Return(pagination.New([]models.Episode{{ID: 10, Title: "Ep1"}}, 1, 5, 1), nil)
	episodeService.On("LatestEpisode", mock.Anything, uint(1)).Return(&models.Episode{ID: 10, Title: "Ep1"}, nil)
	episodeService.On("LatestEpisode", mock.Anything, uint(2)).
		Return(nil, apperrors.New(apperrors.ErrCodeNotFound, "podcast has no episodes"))
	episodeService.On("SyncEpisodes", mock.Anything, uint(1)).
		Return(&episodes.IngestResult{PodcastID: 1, Fetched: 2, Created: 1, Skipped: 1}, nil)
	router := setupRouter(new(MockPodcastService), episodeService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/podcasts/1/episodes?limit=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var page types.EpisodeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Pagination.Pages)
	assert.Equal(t, "Ep1", page.Data[0].Title)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/podcasts/1/episodes/latest", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/podcasts/2/episodes/latest", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/podcasts/1/sync", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var result episodes.IngestResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Created)

	episodeService.AssertExpectations(t)
}

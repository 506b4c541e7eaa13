package podcasts

import (
	"context"

	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/internal/services/itunes"
	"github.com/killallgit/podcast-catalog/internal/services/pagination"
)

// Filter narrows podcast listings
type Filter struct {
	// Keyword matches search_keyword case-insensitively as a substring
	Keyword       string
	FavoritesOnly bool
}

// PodcastRepository defines the data access interface for podcasts.
// Lookups return database.ErrNotFound for missing rows and creates return
// database.ErrDuplicateKey when the track id is already stored.
type PodcastRepository interface {
	// Create/Update
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	UpdateSyncedPodcast(ctx context.Context, id uint, podcast *models.Podcast) (*models.Podcast, error)
	DeletePodcast(ctx context.Context, id uint) error

	// Read
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)
	GetPodcastByTrackID(ctx context.Context, trackID int64) (*models.Podcast, error)

	// List
	CountPodcasts(ctx context.Context, filter Filter) (int64, error)
	ListPodcasts(ctx context.Context, filter Filter, skip, take int) ([]models.Podcast, error)

	// Favorite flag
	GetFavorite(ctx context.Context, id uint) (bool, error)
	CompareAndSetFavorite(ctx context.Context, id uint, expected, next bool) (bool, error)
}

// SearchGateway is the external directory queried during reconciliation
type SearchGateway interface {
	Search(ctx context.Context, term string, opts *itunes.SearchOptions) (*itunes.SearchResults, error)
	Lookup(ctx context.Context, trackID int64) (*itunes.Entry, error)
}

// PodcastService defines the business logic interface for podcast operations
type PodcastService interface {
	// Reconcile searches the directory and upserts every entry by track id
	Reconcile(ctx context.Context, keyword string) (*ReconcileResult, error)

	// ListPodcasts seeds an empty catalog with the default keyword first
	ListPodcasts(ctx context.Context, page, limit int) (*pagination.Page[models.Podcast], error)
	ListPodcastsByKeyword(ctx context.Context, keyword string, page, limit int) (*pagination.Page[models.Podcast], error)
	ListFavoritePodcasts(ctx context.Context, page, limit int) (*pagination.Page[models.Podcast], error)

	GetPodcast(ctx context.Context, id uint) (*models.Podcast, error)
	// RefreshPodcast re-reads one stored podcast from the directory by its track id
	RefreshPodcast(ctx context.Context, id uint) (*models.Podcast, error)
	DeletePodcast(ctx context.Context, id uint) error
	ToggleFavorite(ctx context.Context, id uint) (*models.Podcast, error)
}

// ReconcileResult summarizes one reconciliation run.
// Podcasts holds only the entries that were stored successfully.
type ReconcileResult struct {
	Keyword    string           `json:"keyword"`
	Message    string           `json:"message"`
	TotalFound int              `json:"totalFound"`
	Created    int              `json:"created"`
	Updated    int              `json:"updated"`
	Failed     int              `json:"failed"`
	Errors     []string         `json:"errors,omitempty"`
	Podcasts   []models.Podcast `json:"podcasts"`
}

package episodes

import (
	"context"

	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/internal/services/feeds"
	"github.com/killallgit/podcast-catalog/internal/services/pagination"
)

// Filter narrows an episode listing. A zero PodcastID spans every podcast.
type Filter struct {
	PodcastID     uint
	FavoritesOnly bool
}

// EpisodeRepository defines the interface for episode data persistence
type EpisodeRepository interface {
	// Create operations
	CreateEpisode(ctx context.Context, episode *models.Episode) error

	// Read operations
	GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
	ExistsByTitle(ctx context.Context, podcastID uint, title string) (bool, error)
	CountEpisodes(ctx context.Context, filter Filter) (int64, error)
	ListEpisodes(ctx context.Context, filter Filter, skip, take int) ([]models.Episode, error)
	LatestEpisode(ctx context.Context, podcastID uint) (*models.Episode, error)

	// Favorite flag
	GetFavorite(ctx context.Context, id uint) (bool, error)
	CompareAndSetFavorite(ctx context.Context, id uint, expected, next bool) (bool, error)
}

// FeedGateway fetches the items of one RSS feed
type FeedGateway interface {
	Fetch(ctx context.Context, feedURL string) ([]feeds.Item, error)
}

// PodcastLookup resolves the podcast an episode listing belongs to
type PodcastLookup interface {
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)
}

// EpisodeService defines the business logic interface for episode operations
type EpisodeService interface {
	Ingest(ctx context.Context, podcastID uint, feedURL string) (*IngestResult, error)
	SyncEpisodes(ctx context.Context, podcastID uint) (*IngestResult, error)

	ListEpisodes(ctx context.Context, podcastID uint, page, limit int) (*pagination.Page[models.Episode], error)
	LatestEpisode(ctx context.Context, podcastID uint) (*models.Episode, error)
	ListFavoriteEpisodes(ctx context.Context, page, limit int) (*pagination.Page[models.Episode], error)
	GetEpisode(ctx context.Context, id uint) (*models.Episode, error)
	ToggleFavorite(ctx context.Context, id uint) (*models.Episode, error)
}

// IngestResult counts what one pass over a feed did with its items
type IngestResult struct {
	PodcastID uint `json:"podcastId"`
	Fetched   int  `json:"fetched"`
	Created   int  `json:"created"`
	Skipped   int  `json:"skipped"`
	Invalid   int  `json:"invalid"`
	Failed    int  `json:"failed"`
}

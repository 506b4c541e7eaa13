package episodes

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/internal/services/favorites"
	"github.com/killallgit/podcast-catalog/internal/services/feeds"
	"github.com/killallgit/podcast-catalog/internal/services/lazyfetch"
	"github.com/killallgit/podcast-catalog/internal/services/pagination"
	apperrors "github.com/killallgit/podcast-catalog/pkg/errors"
)

type Service struct {
	repository  EpisodeRepository
	podcasts    PodcastLookup
	feeds       FeedGateway
	coordinator *lazyfetch.Coordinator
	toggler     *favorites.Toggler
}

func NewService(repository EpisodeRepository, podcasts PodcastLookup, feeds FeedGateway, coordinator *lazyfetch.Coordinator, toggler *favorites.Toggler) *Service {
	return &Service{
		repository:  repository,
		podcasts:    podcasts,
		feeds:       feeds,
		coordinator: coordinator,
		toggler:     toggler,
	}
}

// Ingest fetches feedURL once and stores every item the podcast does not
// already hold under the same title. Only a failed fetch is an error; item
// failures are counted and the rest of the feed is still processed.
func (s *Service) Ingest(ctx context.Context, podcastID uint, feedURL string) (*IngestResult, error) {
	result := &IngestResult{PodcastID: podcastID}
	if strings.TrimSpace(feedURL) == "" {
		return result, nil
	}

	logger := log.WithFields(log.Fields{"podcastId": podcastID, "feedUrl": feedURL})

	items, err := s.feeds.Fetch(ctx, feedURL)
	if err != nil {
		logger.WithError(err).Warn("feed fetch failed")
		return result, &FetchError{PodcastID: podcastID, FeedURL: feedURL, Err: err}
	}
	result.Fetched = len(items)

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if item.Title == "" || item.PublishedAt == nil {
			result.Invalid++
			continue
		}

		exists, err := s.repository.ExistsByTitle(ctx, podcastID, item.Title)
		if err != nil {
			result.Failed++
			logger.WithError(err).WithField("title", item.Title).Warn("failed to check episode")
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		if err := s.repository.CreateEpisode(ctx, toEpisode(podcastID, item)); err != nil {
			if errors.Is(err, database.ErrDuplicateKey) {
				result.Skipped++
				continue
			}
			result.Failed++
			logger.WithError(err).WithField("title", item.Title).Warn("failed to store episode")
			continue
		}
		result.Created++
	}

	logger.WithFields(log.Fields{
		"fetched": result.Fetched,
		"created": result.Created,
		"skipped": result.Skipped,
		"invalid": result.Invalid,
		"failed":  result.Failed,
	}).Info("feed ingested")

	return result, nil
}

// SyncEpisodes re-reads the podcast's feed on demand and reports the outcome
func (s *Service) SyncEpisodes(ctx context.Context, podcastID uint) (*IngestResult, error) {
	podcast, err := s.podcast(ctx, podcastID)
	if err != nil {
		return nil, err
	}
	if !podcast.HasFeed() {
		return nil, apperrors.ValidationError("feedUrl", "podcast has no feed")
	}

	result, err := s.Ingest(ctx, podcast.ID, podcast.FeedURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperrors.ExternalServiceError("feed", err).WithDetail("podcastId", podcastID)
	}
	if result.Created > 0 {
		s.coordinator.Forget(lazyfetch.EpisodesKey(podcastID))
	}
	return result, nil
}

// ListEpisodes lists a podcast's episodes, newest first, ingesting its feed on the first read
func (s *Service) ListEpisodes(ctx context.Context, podcastID uint, page, limit int) (*pagination.Page[models.Episode], error) {
	podcast, err := s.podcast(ctx, podcastID)
	if err != nil {
		return nil, err
	}
	if err := s.ensure(ctx, podcast); err != nil {
		return nil, err
	}
	return s.list(ctx, Filter{PodcastID: podcast.ID}, page, limit)
}

// LatestEpisode returns the newest episode of a podcast, ingesting its feed on the first read
func (s *Service) LatestEpisode(ctx context.Context, podcastID uint) (*models.Episode, error) {
	podcast, err := s.podcast(ctx, podcastID)
	if err != nil {
		return nil, err
	}
	if err := s.ensure(ctx, podcast); err != nil {
		return nil, err
	}

	episode, err := s.repository.LatestEpisode(ctx, podcast.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "podcast has no episodes").WithDetail("podcastId", podcastID)
		}
		return nil, apperrors.DatabaseError("get latest episode", err)
	}
	return episode, nil
}

// ListFavoriteEpisodes lists favorite episodes across all podcasts
func (s *Service) ListFavoriteEpisodes(ctx context.Context, page, limit int) (*pagination.Page[models.Episode], error) {
	return s.list(ctx, Filter{FavoritesOnly: true}, page, limit)
}

// GetEpisode returns one episode with its podcast
func (s *Service) GetEpisode(ctx context.Context, id uint) (*models.Episode, error) {
	episode, err := s.repository.GetEpisodeByID(ctx, id)
	if err != nil {
		return nil, storeError("episode", id, err)
	}
	return episode, nil
}

// ToggleFavorite flips the favorite flag and returns the reloaded episode
func (s *Service) ToggleFavorite(ctx context.Context, id uint) (*models.Episode, error) {
	if _, err := s.toggler.Toggle(ctx, s.repository, "episode", id); err != nil {
		return nil, err
	}
	return s.GetEpisode(ctx, id)
}

// ensure populates the podcast's episodes once. A podcast without a feed
// settles empty. A failed ingest is logged and the local rows are served.
func (s *Service) ensure(ctx context.Context, podcast *models.Podcast) error {
	filter := Filter{PodcastID: podcast.ID}
	_, err := s.coordinator.Ensure(ctx, lazyfetch.EpisodesKey(podcast.ID),
		func(ctx context.Context) (int64, error) {
			return s.repository.CountEpisodes(ctx, filter)
		},
		func(ctx context.Context) error {
			if !podcast.HasFeed() {
				return nil
			}
			_, err := s.Ingest(ctx, podcast.ID, podcast.FeedURL)
			return err
		},
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.WithError(err).WithField("podcastId", podcast.ID).Warn("episode sync failed, serving stored episodes")
	}
	return nil
}

func (s *Service) list(ctx context.Context, filter Filter, page, limit int) (*pagination.Page[models.Episode], error) {
	result, err := pagination.Paginate[models.Episode](ctx, pagination.QueryFuncs[models.Episode]{
		CountFunc: func(ctx context.Context) (int64, error) {
			return s.repository.CountEpisodes(ctx, filter)
		},
		FindFunc: func(ctx context.Context, skip, take int) ([]models.Episode, error) {
			return s.repository.ListEpisodes(ctx, filter, skip, take)
		},
	}, page, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("list episodes", err)
	}
	return result, nil
}

func (s *Service) podcast(ctx context.Context, id uint) (*models.Podcast, error) {
	podcast, err := s.podcasts.GetPodcastByID(ctx, id)
	if err != nil {
		return nil, storeError("podcast", id, err)
	}
	return podcast, nil
}

func storeError(resource string, id uint, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return apperrors.NotFound(resource, id)
	}
	return apperrors.DatabaseError("get "+resource, err)
}

// toEpisode maps a feed item onto the episode columns
func toEpisode(podcastID uint, item feeds.Item) *models.Episode {
	description := item.Content
	if description == "" {
		description = item.Snippet
	}
	return &models.Episode{
		PodcastID:        podcastID,
		Title:            item.Title,
		PubDate:          item.PublishedAt.UTC(),
		AudioURL:         item.EnclosureURL,
		EnclosureType:    item.EnclosureType,
		EnclosureLength:  item.EnclosureLength,
		Duration:         item.Duration,
		Description:      description,
		ShortDescription: item.Snippet,
		EpisodeNumber:    item.Episode,
		SeasonNumber:     item.Season,
		EpisodeType:      item.EpisodeType,
		Explicit:         item.Explicit,
		Image:            item.Image,
	}
}

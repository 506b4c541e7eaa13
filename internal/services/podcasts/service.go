package podcasts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/internal/services/favorites"
	"github.com/killallgit/podcast-catalog/internal/services/itunes"
	"github.com/killallgit/podcast-catalog/internal/services/lazyfetch"
	"github.com/killallgit/podcast-catalog/internal/services/pagination"
	apperrors "github.com/killallgit/podcast-catalog/pkg/errors"
)

// Config holds catalog sync settings
type Config struct {
	// DefaultKeyword seeds an empty catalog on the first unfiltered listing
	DefaultKeyword string
	SearchLimit    int
}

type Service struct {
	repository  PodcastRepository
	gateway     SearchGateway
	coordinator *lazyfetch.Coordinator
	toggler     *favorites.Toggler
	config      Config
}

func NewService(repository PodcastRepository, gateway SearchGateway, coordinator *lazyfetch.Coordinator, toggler *favorites.Toggler, cfg Config) *Service {
	if cfg.DefaultKeyword == "" {
		cfg.DefaultKeyword = "thmanyah"
	}
	return &Service{
		repository:  repository,
		gateway:     gateway,
		coordinator: coordinator,
		toggler:     toggler,
		config:      cfg,
	}
}

// Reconcile calls the directory once and upserts each entry by track id.
// A failing entry is logged and counted; it never aborts the rest of the batch.
func (s *Service) Reconcile(ctx context.Context, keyword string) (*ReconcileResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperrors.ValidationError("keyword", "must not be empty")
	}

	results, err := s.gateway.Search(ctx, keyword, &itunes.SearchOptions{Limit: s.config.SearchLimit})
	if err != nil {
		log.WithError(err).WithField("keyword", keyword).Error("directory search failed")
		return nil, apperrors.ExternalServiceError("itunes", err).WithDetail("keyword", keyword)
	}

	result := &ReconcileResult{
		Keyword:    keyword,
		TotalFound: len(results.Entries),
		Podcasts:   []models.Podcast{},
	}
	if len(results.Entries) == 0 {
		result.Message = fmt.Sprintf("No podcasts found for keyword: %s", keyword)
		return result, nil
	}

	var errs *multierror.Error
	for _, entry := range results.Entries {
		podcast, created, err := s.reconcileEntry(ctx, keyword, entry)
		if err != nil {
			result.Failed++
			errs = multierror.Append(errs, err)
			log.WithError(err).WithField("keyword", keyword).Warn("failed to reconcile podcast")
			continue
		}

		if created {
			result.Created++
		} else {
			result.Updated++
		}
		result.Podcasts = append(result.Podcasts, *podcast)
	}

	if err := errs.ErrorOrNil(); err != nil {
		for _, e := range errs.Errors {
			result.Errors = append(result.Errors, e.Error())
		}
	}

	result.Message = fmt.Sprintf("Successfully processed %d podcasts for keyword: %s", result.Created+result.Updated, keyword)
	log.WithFields(log.Fields{
		"keyword": keyword,
		"found":   result.TotalFound,
		"created": result.Created,
		"updated": result.Updated,
		"failed":  result.Failed,
	}).Info("catalog reconciled")

	return result, nil
}

// reconcileEntry stores one entry and reports whether it was newly created
func (s *Service) reconcileEntry(ctx context.Context, keyword string, entry *itunes.Entry) (*models.Podcast, bool, error) {
	if entry == nil || entry.TrackID == 0 || strings.TrimSpace(entry.TrackName) == "" {
		return nil, false, errMalformedEntry(entry)
	}

	podcast := fromEntry(entry, keyword)

	existing, err := s.repository.GetPodcastByTrackID(ctx, entry.TrackID)
	switch {
	case err == nil:
	case errors.Is(err, database.ErrNotFound):
		err = s.repository.CreatePodcast(ctx, podcast)
		if err == nil {
			log.WithFields(log.Fields{"trackId": podcast.TrackID, "name": podcast.TrackName}).Debug("created podcast")
			return podcast, true, nil
		}
		if !errors.Is(err, database.ErrDuplicateKey) {
			return nil, false, err
		}
		// A concurrent reconcile created it first; fall back to an update
		existing, err = s.repository.GetPodcastByTrackID(ctx, entry.TrackID)
		if err != nil {
			return nil, false, err
		}
	default:
		return nil, false, err
	}

	updated, err := s.repository.UpdateSyncedPodcast(ctx, existing.ID, podcast)
	if err != nil {
		return nil, false, err
	}
	log.WithFields(log.Fields{"trackId": updated.TrackID, "name": updated.TrackName}).Debug("updated podcast")
	return updated, false, nil
}

// ListPodcasts lists the whole catalog, seeding it with the default keyword when empty
func (s *Service) ListPodcasts(ctx context.Context, page, limit int) (*pagination.Page[models.Podcast], error) {
	all := Filter{}

	_, err := s.coordinator.Ensure(ctx, lazyfetch.CatalogSeedKey,
		func(ctx context.Context) (int64, error) {
			return s.repository.CountPodcasts(ctx, all)
		},
		func(ctx context.Context) error {
			log.WithField("keyword", s.config.DefaultKeyword).Info("catalog is empty, seeding from directory")
			_, err := s.Reconcile(ctx, s.config.DefaultKeyword)
			return err
		},
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.DatabaseError("count podcasts", err)
	}

	return s.list(ctx, all, page, limit)
}

// ListPodcastsByKeyword lists podcasts whose search keyword contains keyword. It never calls the directory.
func (s *Service) ListPodcastsByKeyword(ctx context.Context, keyword string, page, limit int) (*pagination.Page[models.Podcast], error) {
	return s.list(ctx, Filter{Keyword: keyword}, page, limit)
}

// ListFavoritePodcasts lists podcasts flagged as favorite
func (s *Service) ListFavoritePodcasts(ctx context.Context, page, limit int) (*pagination.Page[models.Podcast], error) {
	return s.list(ctx, Filter{FavoritesOnly: true}, page, limit)
}

func (s *Service) list(ctx context.Context, filter Filter, page, limit int) (*pagination.Page[models.Podcast], error) {
	result, err := pagination.Paginate[models.Podcast](ctx, pagination.QueryFuncs[models.Podcast]{
		CountFunc: func(ctx context.Context) (int64, error) {
			return s.repository.CountPodcasts(ctx, filter)
		},
		FindFunc: func(ctx context.Context, skip, take int) ([]models.Podcast, error) {
			return s.repository.ListPodcasts(ctx, filter, skip, take)
		},
	}, page, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("list podcasts", err)
	}
	return result, nil
}

// GetPodcast returns one podcast
func (s *Service) GetPodcast(ctx context.Context, id uint) (*models.Podcast, error) {
	podcast, err := s.repository.GetPodcastByID(ctx, id)
	if err != nil {
		return nil, storeError("podcast", id, err)
	}
	return podcast, nil
}

// RefreshPodcast looks the podcast up in the directory and overwrites its
// synced fields. The search keyword it was stored under is kept.
func (s *Service) RefreshPodcast(ctx context.Context, id uint) (*models.Podcast, error) {
	podcast, err := s.GetPodcast(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := s.gateway.Lookup(ctx, podcast.TrackID)
	if err != nil {
		if errors.Is(err, itunes.ErrNoResults) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "podcast is no longer listed in the directory").
				WithDetail("trackId", podcast.TrackID)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperrors.ExternalServiceError("itunes", err).WithDetail("trackId", podcast.TrackID)
	}
	if entry.TrackID != podcast.TrackID {
		return nil, apperrors.ExternalServiceError("itunes",
			fmt.Errorf("lookup of track %d returned track %d", podcast.TrackID, entry.TrackID))
	}

	updated, _, err := s.reconcileEntry(ctx, podcast.SearchKeyword, entry)
	if err != nil {
		return nil, apperrors.DatabaseError("refresh podcast", err)
	}
	log.WithFields(log.Fields{"podcastId": id, "trackId": updated.TrackID}).Info("refreshed podcast")
	return updated, nil
}

// DeletePodcast removes the podcast with its episodes and resets its lazy-fetch state
func (s *Service) DeletePodcast(ctx context.Context, id uint) error {
	if err := s.repository.DeletePodcast(ctx, id); err != nil {
		return storeError("podcast", id, err)
	}
	s.coordinator.Forget(lazyfetch.EpisodesKey(id))
	log.WithField("podcastId", id).Info("deleted podcast")
	return nil
}

// ToggleFavorite flips the favorite flag and returns the reloaded podcast
func (s *Service) ToggleFavorite(ctx context.Context, id uint) (*models.Podcast, error) {
	if _, err := s.toggler.Toggle(ctx, s.repository, "podcast", id); err != nil {
		return nil, err
	}
	return s.GetPodcast(ctx, id)
}

func storeError(resource string, id uint, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return apperrors.NotFound(resource, id)
	}
	return apperrors.DatabaseError("get "+resource, err)
}

func errMalformedEntry(entry *itunes.Entry) error {
	if entry == nil {
		return errors.New("malformed directory entry: nil")
	}
	return fmt.Errorf("malformed directory entry: trackId=%d name=%q", entry.TrackID, entry.TrackName)
}

// fromEntry maps a directory entry onto the podcast columns
func fromEntry(entry *itunes.Entry, keyword string) *models.Podcast {
	genres := entry.Genres
	if genres == nil {
		genres = []string{}
	}
	return &models.Podcast{
		TrackID:                entry.TrackID,
		TrackName:              entry.TrackName,
		ArtistName:             entry.ArtistName,
		CollectionName:         entry.CollectionName,
		TrackViewURL:           entry.TrackViewURL,
		ArtworkURL30:           entry.ArtworkURL30,
		ArtworkURL60:           entry.ArtworkURL60,
		ArtworkURL100:          entry.ArtworkURL100,
		ArtworkURL600:          entry.ArtworkURL600,
		CollectionPrice:        entry.CollectionPrice,
		TrackPrice:             entry.TrackPrice,
		ReleaseDate:            entry.ReleaseDate,
		CollectionExplicitness: entry.CollectionExplicitness,
		TrackExplicitness:      entry.TrackExplicitness,
		TrackCount:             entry.TrackCount,
		Country:                entry.Country,
		Currency:               entry.Currency,
		PrimaryGenreName:       entry.PrimaryGenreName,
		ContentAdvisoryRating:  entry.ContentAdvisoryRating,
		FeedURL:                entry.FeedURL,
		Genres:                 genres,
		SearchKeyword:          keyword,
	}
}

package podcasts

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/internal/models"
)

// syncedColumns are overwritten on every reconciliation. id, is_favorite and created_at are never touched.
var syncedColumns = []string{
	"track_name", "artist_name", "collection_name", "track_view_url",
	"artwork_url30", "artwork_url60", "artwork_url100", "artwork_url600",
	"collection_price", "track_price", "release_date",
	"collection_explicitness", "track_explicitness", "track_count",
	"country", "currency", "primary_genre_name", "content_advisory_rating",
	"feed_url", "genres", "search_keyword", "updated_at",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PodcastRepository {
	return &Repository{db: db}
}

// CreatePodcast inserts a new podcast
func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Omit("Episodes").Create(podcast).Error; err != nil {
		return fmt.Errorf("creating podcast %d: %w", podcast.TrackID, database.Translate(err))
	}
	return nil
}

// UpdateSyncedPodcast overwrites the directory-sourced columns of podcast id and returns the stored row
func (r *Repository) UpdateSyncedPodcast(ctx context.Context, id uint, podcast *models.Podcast) (*models.Podcast, error) {
	values := *podcast
	values.ID = id
	values.Episodes = nil

	result := r.db.WithContext(ctx).Model(&values).Select(syncedColumns).Updates(&values)
	if result.Error != nil {
		return nil, fmt.Errorf("updating podcast %d: %w", id, database.Translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("updating podcast %d: %w", id, database.ErrNotFound)
	}

	return r.GetPodcastByID(ctx, id)
}

// DeletePodcast removes a podcast and its episodes
func (r *Repository) DeletePodcast(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("podcast_id = ?", id).Delete(&models.Episode{}).Error; err != nil {
			return fmt.Errorf("deleting episodes of podcast %d: %w", id, err)
		}
		result := tx.Delete(&models.Podcast{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting podcast %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("deleting podcast %d: %w", id, database.ErrNotFound)
		}
		return nil
	})
}

// GetPodcastByID retrieves a podcast by its database ID
func (r *Repository) GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
		return nil, fmt.Errorf("getting podcast %d: %w", id, database.Translate(err))
	}
	return &podcast, nil
}

// GetPodcastByTrackID retrieves a podcast by its iTunes track id
func (r *Repository) GetPodcastByTrackID(ctx context.Context, trackID int64) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).
		Where("track_id = ?", trackID).
		First(&podcast).Error; err != nil {
		return nil, fmt.Errorf("getting podcast by track id %d: %w", trackID, database.Translate(err))
	}
	return &podcast, nil
}

// CountPodcasts counts podcasts matching filter
func (r *Repository) CountPodcasts(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("counting podcasts: %w", err)
	}
	return total, nil
}

// ListPodcasts returns one window of podcasts matching filter, newest first
func (r *Repository) ListPodcasts(ctx context.Context, filter Filter, skip, take int) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	if err := r.filtered(ctx, filter).
		Order("created_at DESC").
		Order("id DESC").
		Offset(skip).
		Limit(take).
		Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("listing podcasts: %w", err)
	}
	return podcasts, nil
}

func (r *Repository) filtered(ctx context.Context, filter Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Podcast{})
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		query = query.Where(`LOWER(search_keyword) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(keyword))+"%")
	}
	if filter.FavoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}
	return query
}

// GetFavorite reads the favorite flag
func (r *Repository) GetFavorite(ctx context.Context, id uint) (bool, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).Select("id", "is_favorite").First(&podcast, id).Error; err != nil {
		return false, fmt.Errorf("getting podcast %d: %w", id, database.Translate(err))
	}
	return podcast.IsFavorite, nil
}

// CompareAndSetFavorite sets the flag to next only if it still equals expected
func (r *Repository) CompareAndSetFavorite(ctx context.Context, id uint, expected, next bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("id = ? AND is_favorite = ?", id, expected).
		Update("is_favorite", next)
	if result.Error != nil {
		return false, fmt.Errorf("updating favorite of podcast %d: %w", id, result.Error)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking podcast %d: %w", id, err)
	}
	if count == 0 {
		return false, fmt.Errorf("podcast %d: %w", id, database.ErrNotFound)
	}
	return false, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

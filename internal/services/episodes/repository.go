package episodes

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) EpisodeRepository {
	return &Repository{db: db}
}

// CreateEpisode inserts an episode. A second episode with the same podcast and title yields ErrDuplicateKey.
func (r *Repository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Omit("Podcast").Create(episode).Error; err != nil {
		return fmt.Errorf("creating episode %q of podcast %d: %w", episode.Title, episode.PodcastID, database.Translate(err))
	}
	return nil
}

// GetEpisodeByID retrieves an episode with its podcast
func (r *Repository) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).Preload("Podcast").First(&episode, id).Error; err != nil {
		return nil, fmt.Errorf("getting episode %d: %w", id, database.Translate(err))
	}
	return &episode, nil
}

// ExistsByTitle reports whether the podcast already holds an episode with this title
func (r *Repository) ExistsByTitle(ctx context.Context, podcastID uint, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("podcast_id = ? AND title = ?", podcastID, title).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking episode %q of podcast %d: %w", title, podcastID, err)
	}
	return count > 0, nil
}

// CountEpisodes counts episodes matching filter
func (r *Repository) CountEpisodes(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("counting episodes: %w", err)
	}
	return total, nil
}

// ListEpisodes returns one window of episodes with their podcast. Podcast
// listings are newest publication first; favorites are most recently stored first.
func (r *Repository) ListEpisodes(ctx context.Context, filter Filter, skip, take int) ([]models.Episode, error) {
	query := r.filtered(ctx, filter).Preload("Podcast")
	if filter.FavoritesOnly {
		query = query.Order("created_at DESC")
	} else {
		query = query.Order("pub_date DESC")
	}

	var episodes []models.Episode
	if err := query.
		Order("id DESC").
		Offset(skip).
		Limit(take).
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}
	return episodes, nil
}

// LatestEpisode returns the most recently published episode of a podcast with the podcast loaded
func (r *Repository) LatestEpisode(ctx context.Context, podcastID uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).
		Preload("Podcast").
		Where("podcast_id = ?", podcastID).
		Order("pub_date DESC").
		Order("id DESC").
		First(&episode).Error; err != nil {
		return nil, fmt.Errorf("getting latest episode of podcast %d: %w", podcastID, database.Translate(err))
	}
	return &episode, nil
}

func (r *Repository) filtered(ctx context.Context, filter Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Episode{})
	if filter.PodcastID != 0 {
		query = query.Where("podcast_id = ?", filter.PodcastID)
	}
	if filter.FavoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}
	return query
}

// GetFavorite reads the favorite flag
func (r *Repository) GetFavorite(ctx context.Context, id uint) (bool, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).Select("id", "is_favorite").First(&episode, id).Error; err != nil {
		return false, fmt.Errorf("getting episode %d: %w", id, database.Translate(err))
	}
	return episode.IsFavorite, nil
}

// CompareAndSetFavorite sets the flag to next only if it still equals expected
func (r *Repository) CompareAndSetFavorite(ctx context.Context, id uint, expected, next bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("id = ? AND is_favorite = ?", id, expected).
		Update("is_favorite", next)
	if result.Error != nil {
		return false, fmt.Errorf("updating favorite of episode %d: %w", id, result.Error)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Episode{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking episode %d: %w", id, err)
	}
	if count == 0 {
		return false, fmt.Errorf("episode %d: %w", id, database.ErrNotFound)
	}
	return false, nil
}

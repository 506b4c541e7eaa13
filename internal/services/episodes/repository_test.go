package episodes

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/pkg/config"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Initialize(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db.DB
}

func seedPodcast(t *testing.T, db *gorm.DB, trackID int64, feedURL string) *models.Podcast {
	p := &models.Podcast{
		TrackID:       trackID,
		TrackName:     "Fnjan",
		FeedURL:       feedURL,
		SearchKeyword: "thmanyah",
		Genres:        []string{},
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedEpisode(t *testing.T, repo EpisodeRepository, podcastID uint, title string, pub time.Time) *models.Episode {
	e := &models.Episode{PodcastID: podcastID, Title: title, PubDate: pub}
	require.NoError(t, repo.CreateEpisode(context.Background(), e))
	return e
}

func TestRepository_CreateAndDedup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	p := seedPodcast(t, db, 1, "")
	other := seedPodcast(t, db, 2, "")

	ep := seedEpisode(t, repo, p.ID, "Ep1", time.Now())
	assert.NotZero(t, ep.ID)

	err := repo.CreateEpisode(ctx, &models.Episode{PodcastID: p.ID, Title: "Ep1", PubDate: time.Now()})
	assert.ErrorIs(t, err, database.ErrDuplicateKey)

	// same title under another podcast is a different episode
	seedEpisode(t, repo, other.ID, "Ep1", time.Now())

	exists, err := repo.ExistsByTitle(ctx, p.ID, "Ep1")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByTitle(ctx, p.ID, "Ep2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_GetEpisodeByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	p := seedPodcast(t, db, 1, "")
	ep := seedEpisode(t, repo, p.ID, "Ep1", time.Now())

	got, err := repo.GetEpisodeByID(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ep1", got.Title)
	require.NotNil(t, got.Podcast)
	assert.Equal(t, p.ID, got.Podcast.ID)

	_, err = repo.GetEpisodeByID(ctx, 999)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_ListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	p := seedPodcast(t, db, 1, "")
	other := seedPodcast(t, db, 2, "")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	old := seedEpisode(t, repo, p.ID, "old", base)
	newest := seedEpisode(t, repo, p.ID, "newest", base.Add(48*time.Hour))
	middle := seedEpisode(t, repo, p.ID, "middle", base.Add(24*time.Hour))
	foreign := seedEpisode(t, repo, other.ID, "foreign", base.Add(72*time.Hour))

	for i, e := range []*models.Episode{old, newest, middle, foreign} {
		require.NoError(t, db.Model(e).UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}
	for _, e := range []*models.Episode{old, foreign} {
		swapped, err := repo.CompareAndSetFavorite(ctx, e.ID, false, true)
		require.NoError(t, err)
		require.True(t, swapped)
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []uint
	}{
		{"podcast newest publication first", Filter{PodcastID: p.ID}, []uint{newest.ID, middle.ID, old.ID}},
		{"favorites most recently stored first", Filter{FavoritesOnly: true}, []uint{foreign.ID, old.ID}},
		{"unknown podcast", Filter{PodcastID: 999}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := repo.CountEpisodes(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.wantIDs)), total)

			episodes, err := repo.ListEpisodes(ctx, tt.filter, 0, 10)
			require.NoError(t, err)
			ids := []uint{}
			for _, e := range episodes {
				ids = append(ids, e.ID)
				require.NotNil(t, e.Podcast)
				assert.Equal(t, e.PodcastID, e.Podcast.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	latest, err := repo.LatestEpisode(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, latest.ID)
	require.NotNil(t, latest.Podcast)
	assert.Equal(t, p.ID, latest.Podcast.ID)

	_, err = repo.LatestEpisode(ctx, 999)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_CompareAndSetFavorite(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	p := seedPodcast(t, db, 1, "")
	ep := seedEpisode(t, repo, p.ID, "Ep1", time.Now())

	swapped, err := repo.CompareAndSetFavorite(ctx, ep.ID, true, false)
	require.NoError(t, err)
	assert.False(t, swapped)

	swapped, err = repo.CompareAndSetFavorite(ctx, ep.ID, false, true)
	require.NoError(t, err)
	assert.True(t, swapped)

	flag, err := repo.GetFavorite(ctx, ep.ID)
	require.NoError(t, err)
	assert.True(t, flag)

	_, err = repo.CompareAndSetFavorite(ctx, 999, false, true)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

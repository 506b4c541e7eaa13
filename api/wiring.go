package api

import (
	"errors"

	"github.com/killallgit/podcast-catalog/api/types"
	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/internal/services/episodes"
	"github.com/killallgit/podcast-catalog/internal/services/favorites"
	"github.com/killallgit/podcast-catalog/internal/services/feeds"
	"github.com/killallgit/podcast-catalog/internal/services/itunes"
	"github.com/killallgit/podcast-catalog/internal/services/lazyfetch"
	"github.com/killallgit/podcast-catalog/internal/services/podcasts"
	"github.com/killallgit/podcast-catalog/pkg/config"
)

// Services are the long-lived components behind the handlers
type Services struct {
	Podcasts *podcasts.Service
	Episodes *episodes.Service
	ITunes   *itunes.Client
}

// NewServices wires gateways, store and sync engines from configuration.
// Podcast and episode services share one lazy-fetch coordinator so deleting a
// podcast also resets its episode state.
func NewServices(cfg *config.Config, db *database.DB) (*Services, error) {
	if cfg == nil || db == nil || db.DB == nil {
		return nil, errors.New("configuration and database are required")
	}

	directory := itunes.NewClient(itunes.Config{
		RequestsPerMinute: cfg.ITunes.RequestsPerMinute,
		BurstSize:         cfg.ITunes.BurstSize,
		Timeout:           cfg.ITunes.Timeout,
		MaxRetries:        cfg.ITunes.MaxRetries,
		RetryBackoff:      cfg.ITunes.RetryBackoff,
		DefaultLimit:      cfg.ITunes.SearchLimit,
		Country:           cfg.ITunes.Country,
		UserAgent:         cfg.Feeds.UserAgent,
		BaseURL:           cfg.ITunes.BaseURL,
	})
	feedClient := feeds.NewClient(feeds.Config{
		Timeout:   cfg.Feeds.Timeout,
		UserAgent: cfg.Feeds.UserAgent,
	})

	coordinator := lazyfetch.New(lazyfetch.Config{
		EmptyTTL:    cfg.Catalog.EmptyTTL,
		SyncTimeout: cfg.Catalog.SyncTimeout,
	})
	toggler := favorites.NewToggler(cfg.Catalog.FavoriteMaxRetries)

	podcastRepo := podcasts.NewRepository(db.DB)
	podcastService := podcasts.NewService(podcastRepo, directory, coordinator, toggler, podcasts.Config{
		DefaultKeyword: cfg.Catalog.DefaultKeyword,
		SearchLimit:    cfg.ITunes.SearchLimit,
	})
	episodeService := episodes.NewService(episodes.NewRepository(db.DB), podcastRepo, feedClient, coordinator, toggler)

	return &Services{
		Podcasts: podcastService,
		Episodes: episodeService,
		ITunes:   directory,
	}, nil
}

// Dependencies exposes the services to the handlers
func (s *Services) Dependencies(cfg *config.Config, db *database.DB, build types.BuildInfo) *types.Dependencies {
	return &types.Dependencies{
		DB:             db,
		Config:         cfg,
		PodcastService: s.Podcasts,
		EpisodeService: s.Episodes,
		Directory:      s.ITunes,
		Build:          build,
	}
}

package types

import (
	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/internal/services/episodes"
	"github.com/killallgit/podcast-catalog/internal/services/podcasts"
	"github.com/killallgit/podcast-catalog/pkg/config"
)

// MetricsSource reports counters of an upstream client
type MetricsSource interface {
	GetMetrics() map[string]int64
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	Config         *config.Config
	PodcastService podcasts.PodcastService
	EpisodeService episodes.EpisodeService
	Directory      MetricsSource
	Build          BuildInfo
}

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"commit"`
	BuildTime string `json:"buildTime"`
}

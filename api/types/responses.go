package types

import (
	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/internal/services/pagination"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// PodcastListResponse is a page of podcasts
type PodcastListResponse struct {
	Data       []models.Podcast      `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// EpisodeListResponse is a page of episodes
type EpisodeListResponse struct {
	Data       []models.Episode      `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Database  map[string]interface{} `json:"database"`
	Directory map[string]int64       `json:"directory,omitempty"`
}

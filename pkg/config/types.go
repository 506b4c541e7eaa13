package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	ITunes       ITunesConfig    `mapstructure:"itunes"`
	Feeds        FeedsConfig     `mapstructure:"feeds"`
	Catalog      CatalogConfig   `mapstructure:"catalog"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Driver                string        `mapstructure:"driver"` // sqlite or postgres
	Path                  string        `mapstructure:"path"`   // sqlite file
	DSN                   string        `mapstructure:"dsn"`    // postgres connection string
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// ITunesConfig contains iTunes Search API settings
type ITunesConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	BurstSize         int           `mapstructure:"burst_size"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RetryBackoff      time.Duration `mapstructure:"retry_backoff"`
	SearchLimit       int           `mapstructure:"search_limit"`
	Country           string        `mapstructure:"country"`
}

// FeedsConfig contains RSS/Atom fetch settings
type FeedsConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// CatalogConfig contains synchronization policy settings
type CatalogConfig struct {
	DefaultKeyword     string        `mapstructure:"default_keyword"`
	RefreshKeywords    []string      `mapstructure:"refresh_keywords"`
	RefreshSchedule    string        `mapstructure:"refresh_schedule"`
	EmptyTTL           time.Duration `mapstructure:"empty_ttl"`
	SyncTimeout        time.Duration `mapstructure:"sync_timeout"`
	FavoriteMaxRetries int           `mapstructure:"favorite_max_retries"`
}

// RateLimitConfig contains inbound rate limiting settings
type RateLimitConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	RPS       int  `mapstructure:"rps"`
	Burst     int  `mapstructure:"burst"`
	SyncRPS   int  `mapstructure:"sync_rps"`
	SyncBurst int  `mapstructure:"sync_burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool     `mapstructure:"enable_cors"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	CORSMethods     []string `mapstructure:"cors_methods"`
	CORSHeaders     []string `mapstructure:"cors_headers"`
	EnableRequestID bool     `mapstructure:"enable_request_id"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

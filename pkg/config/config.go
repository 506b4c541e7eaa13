package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CATALOG_SERVER_PORT
const EnvPrefix = "CATALOG"

// DefaultConfigPath is where the optional YAML settings file is looked up
const DefaultConfigPath = "./config/settings.yaml"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load(DefaultConfigPath)
	})

	return initErr
}

func load(configPath string) error {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath = filepath.Clean(configPath)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	cfg, err := GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	// Unmarshal does not see string slices coming from env overrides
	if keywords := viper.GetStringSlice("catalog.refresh_keywords"); len(keywords) > 0 {
		config.Catalog.RefreshKeywords = keywords
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Validate checks a Config struct and auto-corrects recoverable values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case "", "sqlite":
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}

	if c.ITunes.SearchLimit < 0 || c.ITunes.SearchLimit > 200 {
		return fmt.Errorf("itunes.search_limit must be between 1 and 200, got %d", c.ITunes.SearchLimit)
	}

	if strings.TrimSpace(c.Catalog.DefaultKeyword) == "" {
		return fmt.Errorf("catalog.default_keyword cannot be empty")
	}

	if c.ITunes.MaxRetries <= 0 {
		c.ITunes.MaxRetries = 3
	}

	if c.Catalog.FavoriteMaxRetries <= 0 {
		c.Catalog.FavoriteMaxRetries = 5
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./data/catalog.db")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)

	// iTunes defaults
	viper.SetDefault("itunes.base_url", "https://itunes.apple.com")
	viper.SetDefault("itunes.timeout", 10*time.Second)
	viper.SetDefault("itunes.requests_per_minute", 20)
	viper.SetDefault("itunes.burst_size", 2)
	viper.SetDefault("itunes.max_retries", 3)
	viper.SetDefault("itunes.retry_backoff", time.Second)
	viper.SetDefault("itunes.search_limit", 50)
	viper.SetDefault("itunes.country", "")

	// Feed defaults
	viper.SetDefault("feeds.timeout", 15*time.Second)
	viper.SetDefault("feeds.user_agent", "PodcastCatalog/1.0")

	// Catalog sync defaults
	viper.SetDefault("catalog.default_keyword", "thmanyah")
	viper.SetDefault("catalog.refresh_keywords", []string{})
	viper.SetDefault("catalog.refresh_schedule", "")
	viper.SetDefault("catalog.empty_ttl", time.Duration(0))
	viper.SetDefault("catalog.sync_timeout", 60*time.Second)
	viper.SetDefault("catalog.favorite_max_retries", 5)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)
	viper.SetDefault("rate_limiting.sync_rps", 1)
	viper.SetDefault("rate_limiting.sync_burst", 2)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Origin", "Content-Type", "Authorization"})
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.file_path", "./logs/catalog.log")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 10)
	viper.SetDefault("logging.max_age", 30)
	viper.SetDefault("logging.compress", true)
}

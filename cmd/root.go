package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killallgit/podcast-catalog/internal/database"
	"github.com/killallgit/podcast-catalog/internal/models"
	"github.com/killallgit/podcast-catalog/pkg/config"
	apperrors "github.com/killallgit/podcast-catalog/pkg/errors"
	"github.com/killallgit/podcast-catalog/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcast-catalog",
	Short: "Podcast catalog API server",
	Long: `Podcast Catalog API - a podcast catalog synchronized from the iTunes Search API

Features:
  • Keyword search reconciled into a local catalog by iTunes track id
  • Lazy RSS episode ingestion on first read
  • Paginated listings and favorites for podcasts and episodes
  • Scheduled keyword refresh`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// appConfig returns the loaded configuration with logging applied.
// --log-level and --json-logs override the configured values when set.
func appConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		cfg.Logging.Format = "json"
	}
	if err := logging.Configure(cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	return cfg, nil
}

func connectDatabase(cfg config.DatabaseConfig) (*database.DB, error) {
	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseConnection, "failed to initialize database").
			WithDetail("driver", cfg.Driver)
	}
	return db, nil
}

// openDatabase connects and brings the schema up to date
func openDatabase(cfg config.DatabaseConfig) (*database.DB, error) {
	db, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		_ = db.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseMigration, "failed to auto-migrate database")
	}
	return db, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/killallgit/podcast-catalog/api"
	"github.com/killallgit/podcast-catalog/api/types"
	"github.com/killallgit/podcast-catalog/internal/services/refresh"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podcast Catalog API server with the configured settings.

When catalog.refresh_schedule is set, the configured refresh keywords are
reconciled against the iTunes directory on that cron schedule.

Example:
  podcast-catalog serve
  podcast-catalog serve --port 9090
  podcast-catalog serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig(cmd)
	if err != nil {
		return err
	}

	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()

	services, err := api.NewServices(cfg, db)
	if err != nil {
		return err
	}

	var scheduler *refresh.Scheduler
	if cfg.Catalog.RefreshSchedule != "" {
		scheduler, err = refresh.New(services.Podcasts, cfg.Catalog.RefreshSchedule, cfg.Catalog.RefreshKeywords)
		if err != nil {
			return err
		}
	}

	srv := api.NewServer(cfg.Server)
	srv.SetDependencies(services.Dependencies(cfg, db, types.BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}))
	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	if scheduler != nil {
		group.Go(func() error {
			return scheduler.Run(ctx)
		})
	}

	group.Go(func() error {
		log.WithFields(log.Fields{
			"addr":    srv.Addr(),
			"version": Version,
		}).Info("starting podcast catalog server")
		return srv.Start()
	})

	group.Go(func() error {
		defer func() {
			log.Info("shutting down web server")
			shutdownCtx, done := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("server shutdown failed")
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			cancel()
			return nil
		}
	})

	err = group.Wait()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Info("gracefully stopped")
	return nil
}

// Package refresh re-runs catalog reconciliation for a fixed keyword list on a cron schedule.
package refresh

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/killallgit/podcast-catalog/internal/services/podcasts"
)

// Reconciler is the part of the podcast service the scheduler drives
type Reconciler interface {
	Reconcile(ctx context.Context, keyword string) (*podcasts.ReconcileResult, error)
}

type Scheduler struct {
	reconciler Reconciler
	schedule   string
	keywords   []string
	cron       *cron.Cron
}

// New validates schedule and returns a scheduler for keywords. Blank keywords are dropped.
func New(reconciler Reconciler, schedule string, keywords []string) (*Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}

	logger := cron.PrintfLogger(log.StandardLogger())
	return &Scheduler{
		reconciler: reconciler,
		schedule:   schedule,
		keywords:   cleaned,
		cron:       cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
	}, nil
}

// Keywords returns the keywords refreshed on every tick
func (s *Scheduler) Keywords() []string {
	return s.keywords
}

// RunOnce reconciles every keyword in order. A failing keyword does not stop the rest.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	var errs *multierror.Error
	for _, keyword := range s.keywords {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := s.reconciler.Reconcile(ctx, keyword)
		if err != nil {
			log.WithError(err).WithField("keyword", keyword).Error("scheduled refresh failed")
			errs = multierror.Append(errs, fmt.Errorf("refresh %q: %w", keyword, err))
			continue
		}
		log.WithFields(log.Fields{
			"keyword": keyword,
			"created": result.Created,
			"updated": result.Updated,
			"failed":  result.Failed,
		}).Info("scheduled refresh done")
	}
	return errs.ErrorOrNil()
}

// Run starts the cron and blocks until ctx ends, then waits for a running tick to finish
func (s *Scheduler) Run(ctx context.Context) error {
	if len(s.keywords) == 0 {
		log.Info("no refresh keywords configured, scheduler idle")
		<-ctx.Done()
		return ctx.Err()
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		_ = s.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("scheduling refresh: %w", err)
	}

	log.WithFields(log.Fields{
		"schedule": s.schedule,
		"keywords": s.keywords,
	}).Info("starting refresh scheduler")
	s.cron.Start()

	<-ctx.Done()
	log.Info("shutting down refresh scheduler")
	<-s.cron.Stop().Done()
	return ctx.Err()
}

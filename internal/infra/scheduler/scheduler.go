package scheduler

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type SessionMaintainer interface {
	RefreshAll() int
	EvictIdle(now time.Time) int
}

type DraftEvictor interface {
	EvictIdle(now time.Time) int
}

// CacheInvalidator is the shared catalog cache; nil when redis is disabled.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type Specs struct {
	CatalogRefresh string
	Eviction       string
}

// Scheduler runs the periodic catalog refresh and idle eviction.
type Scheduler struct {
	cron     *cron.Cron
	sessions SessionMaintainer
	drafts   DraftEvictor
	cache    CacheInvalidator
	clock    clock.Clock
	logger   *slog.Logger
}

func New(
	specs Specs,
	sessions SessionMaintainer,
	drafts DraftEvictor,
	cache CacheInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &Scheduler{
		cron:     c,
		sessions: sessions,
		drafts:   drafts,
		cache:    cache,
		clock:    clk,
		logger:   logger,
	}

	if _, err := c.AddFunc(specs.CatalogRefresh, s.RefreshCatalog); err != nil {
		return nil, errs.Wrapf(err, "register catalog refresh job %q", specs.CatalogRefresh)
	}
	if _, err := c.AddFunc(specs.Eviction, s.EvictIdle); err != nil {
		return nil, errs.Wrapf(err, "register eviction job %q", specs.Eviction)
	}
	return s, nil
}

// RefreshCatalog drops the shared cache, then marks every session's catalog
// stale.
func (s *Scheduler) RefreshCatalog() {
	if s.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Catalog cache invalidation failed", slog.String("error", err.Error()))
		}
	}
	n := s.sessions.RefreshAll()
	s.logger.Debug("Catalog refresh scheduled", slog.Int("sessions", n))
}

func (s *Scheduler) EvictIdle() {
	now := s.clock.Now()
	sessions := s.sessions.EvictIdle(now)
	drafts := s.drafts.EvictIdle(now)
	if sessions+drafts > 0 {
		s.logger.Info("Idle eviction finished",
			slog.Int("sessions", sessions),
			slog.Int("drafts", drafts),
		)
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop waits for running jobs or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Cron scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

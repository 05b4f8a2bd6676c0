package bootstrap

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/infra/scheduler"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(func(*scheduler.Scheduler) {}),
)

func NewScheduler(
	lc fx.Lifecycle,
	cfg config.Config,
	sessions scheduler.SessionMaintainer,
	drafts scheduler.DraftEvictor,
	cache scheduler.CacheInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) (*scheduler.Scheduler, error) {
	s, err := scheduler.New(scheduler.Specs{
		CatalogRefresh: cfg.Catalog.RefreshSpec,
		Eviction:       cfg.Reservation.EvictionSpec,
	}, sessions, drafts, cache, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
	return s, nil
}

package components

import (
	"log/slog"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/domain/pricing"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/infra/scheduler"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/usecase"
	"vehicle-rental/internal/usecase/catalog"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCatalogModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *filter.Engine {
		return filter.NewEngineForLocale(cfg.Catalog.Locale)
	},
	NewPriceCalculator,
	NewReservationFactory,
)

var usecaseCatalogModule = fx.Module("usecase/catalog",
	fx.Provide(
		fx.Annotate(
			NewSearchRegistry,
			fx.As(new(catalog.SearchSessions)),
			fx.As(new(scheduler.SessionMaintainer)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewReservationCommands,
		func(c commands.ReservationCommands) scheduler.DraftEvictor { return c },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVehicleQueries,
		queries.NewLocationQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPriceCalculator(cfg config.Config) (*pricing.Calculator, error) {
	tax, err := pricing.PolicyFor(cfg.Pricing.TaxPercent)
	if err != nil {
		return nil, err
	}
	return pricing.NewCalculator(tax), nil
}

func NewReservationFactory(cfg config.Config, clk clock.Clock, calc *pricing.Calculator) (*reservation.Factory, error) {
	loc, err := cfg.Reservation.Location()
	if err != nil {
		return nil, err
	}
	return reservation.NewFactory(clk, calc, loc, cfg.Reservation.FallbackLocation), nil
}

func NewSearchRegistry(
	cfg config.Config,
	engine *filter.Engine,
	fetcher catalog.Fetcher,
	clk clock.Clock,
	logger *slog.Logger,
	metrics catalog.Recorder,
) *catalog.Registry {
	return catalog.NewRegistry(engine, fetcher, clk, catalog.Settings{
		Quiet:   cfg.Catalog.DebounceQuiet,
		TTL:     cfg.Catalog.CacheTTL,
		IdleTTL: cfg.Reservation.SessionIdleTTL,
	}, logger, metrics)
}

func NewReservationCommands(
	cfg config.Config,
	vehicles commands.VehicleRepository,
	submitter commands.BookingSubmitter,
	factory *reservation.Factory,
	clk clock.Clock,
	logger *slog.Logger,
	metrics commands.Recorder,
) commands.ReservationCommands {
	return commands.NewReservationUseCase(vehicles, submitter, factory, clk, commands.ReservationSettings{
		SubmitTimeout: cfg.Reservation.SubmitTimeout,
		IdleTTL:       cfg.Reservation.SessionIdleTTL,
	}, logger, metrics)
}

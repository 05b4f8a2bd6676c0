package components

import (
	"log/slog"

	"vehicle-rental/internal/infra/cache"
	"vehicle-rental/internal/infra/readstore"
	"vehicle-rental/internal/infra/repository"
	"vehicle-rental/internal/infra/scheduler"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/usecase/catalog"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	fx.Provide(NewCatalogFetcher),
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Location
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LocationReadQueries)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationReader)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReader)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewReadQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Vehicle
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.VehicleQueries)),
		),
		fx.Annotate(
			repository.NewVehicleRepository,
			fx.As(fx.Self()),
			fx.As(new(commands.VehicleRepository)),
			fx.As(new(queries.VehicleReader)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.BookingWriteQueries)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingSubmitter)),
		),
	),
)

type CatalogSource struct {
	fx.Out

	Fetcher catalog.Fetcher
	Cache   scheduler.CacheInvalidator
}

// NewCatalogFetcher puts the redis cache in front of the vehicle repository
// when a client is configured.
func NewCatalogFetcher(repo *repository.VehicleRepository, client redis.UniversalClient, cfg config.Config, logger *slog.Logger) CatalogSource {
	if client == nil {
		return CatalogSource{Fetcher: repo}
	}
	cached := cache.NewCachedFetcher(repo, client, cfg.Catalog.CacheTTL, logger)
	return CatalogSource{Fetcher: cached, Cache: cached}
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

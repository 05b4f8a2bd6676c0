package queries

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/catalog"

	"github.com/google/uuid"
)

type VehiclePage struct {
	Vehicles  []*vehicle.Vehicle
	Total     int
	Offset    int
	Limit     int
	NextLimit int
	HasMore   bool
}

type Highlights struct {
	Featured      []*vehicle.Vehicle
	SpecialOffers []*vehicle.Vehicle
}

// VehicleReader looks up single catalog records.
type VehicleReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
}

type VehicleQueries interface {
	Search(ctx context.Context, c filter.Criteria, offset, limit int) (*VehiclePage, error)
	Facets(ctx context.Context) (*filter.Facets, error)
	Highlights(ctx context.Context) (*Highlights, error)
	GetByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
}

type vehicleQueriesImpl struct {
	fetcher catalog.Fetcher
	reader  VehicleReader
	engine  *filter.Engine
	logger  *slog.Logger
}

func NewVehicleQueries(fetcher catalog.Fetcher, reader VehicleReader, engine *filter.Engine, logger *slog.Logger) VehicleQueries {
	return &vehicleQueriesImpl{
		fetcher: fetcher,
		reader:  reader,
		engine:  engine,
		logger:  logger,
	}
}

// Search is the one-shot, non-debounced form of a search session.
func (q *vehicleQueriesImpl) Search(ctx context.Context, c filter.Criteria, offset, limit int) (*VehiclePage, error) {
	all, err := q.fetch(ctx, c.Hints())
	if err != nil {
		return nil, err
	}

	visible := q.engine.ComputeVisible(all, c)
	offset = ValidateOffset(offset)
	if limit <= 0 {
		limit = filter.NextPageLimit(offset)
	}
	limit = ValidateLimit(limit)

	page := filter.Page(visible, offset, limit)
	shown := offset + len(page)
	return &VehiclePage{
		Vehicles:  page,
		Total:     len(visible),
		Offset:    offset,
		Limit:     limit,
		NextLimit: filter.NextPageLimit(shown),
		HasMore:   shown < len(visible),
	}, nil
}

func (q *vehicleQueriesImpl) Facets(ctx context.Context) (*filter.Facets, error) {
	all, err := q.fetch(ctx, vehicle.Hints{})
	if err != nil {
		return nil, err
	}
	f := q.engine.Facets(all)
	return &f, nil
}

func (q *vehicleQueriesImpl) Highlights(ctx context.Context) (*Highlights, error) {
	all, err := q.fetch(ctx, vehicle.Hints{})
	if err != nil {
		return nil, err
	}
	return &Highlights{
		Featured:      filter.Featured(all),
		SpecialOffers: filter.SpecialOffers(all),
	}, nil
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *vehicleQueriesImpl) fetch(ctx context.Context, hints vehicle.Hints) ([]*vehicle.Vehicle, error) {
	vs, err := q.fetcher.FetchVehicles(ctx, hints)
	if err != nil {
		q.logger.Warn("Catalog fetch failed", slog.String("hints", hints.Key()), slog.String("error", err.Error()))
		return nil, errs.Mark(errs.Wrap(err, "fetch vehicles"), errs.ErrCatalogUnavailable)
	}
	return vs, nil
}

package readstore

import (
	"context"

	"vehicle-rental/internal/infra"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/pgconv"
	"vehicle-rental/internal/usecase/queries"
)

type LocationReadQueries interface {
	ListLocations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Locations, error)
}

type LocationReadStore struct {
	queries LocationReadQueries
	db      sqlc.DBTX
}

func NewLocationReadStore(queries LocationReadQueries, db sqlc.DBTX) *LocationReadStore {
	return &LocationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LocationReadStore) ListLocations(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := r.queries.ListLocations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}

	out := make([]*queries.LocationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.LocationView{
			ID:        row.ID,
			Name:      row.Name,
			Latitude:  pgconv.Float64PtrFromPgtype(row.Latitude),
			Longitude: pgconv.Float64PtrFromPgtype(row.Longitude),
		})
	}
	return out, nil
}

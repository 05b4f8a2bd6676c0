package readstore

import (
	"context"

	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/infra"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	ListReviewsByVehicle(ctx context.Context, db sqlc.DBTX, vehicleID uuid.UUID) ([]sqlc.Reviews, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByVehicle returns the vehicle's reviews, newest review date first.
func (r *ReviewReadStore) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*review.Review, error) {
	rows, err := r.queries.ListReviewsByVehicle(ctx, r.db, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by vehicle", err)
	}

	out := make([]*review.Review, 0, len(rows))
	for _, row := range rows {
		rv, err := review.Reconstruct(
			row.ID, row.VehicleID,
			row.AuthorName, row.Body, int(row.Stars),
			pgconv.DateFromPgtype(row.ReviewDate),
			pgconv.TimeFromPgtype(row.CreatedAt),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert review row", err)
		}
		out = append(out, rv)
	}
	return out, nil
}

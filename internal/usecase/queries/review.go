package queries

import (
	"context"

	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type VehicleReviews struct {
	VehicleID uuid.UUID
	Reviews   []*review.Review
	Summary   review.Summary
}

type ReviewReader interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*review.Review, error)
}

type ReviewQueries interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) (*VehicleReviews, error)
}

type reviewQueriesImpl struct {
	vehicles VehicleReader
	reader   ReviewReader
}

func NewReviewQueries(vehicles VehicleReader, reader ReviewReader) ReviewQueries {
	return &reviewQueriesImpl{vehicles: vehicles, reader: reader}
}

// ListByVehicle returns every review of the vehicle with its rating summary.
// An unknown vehicle is ErrVehicleNotFound rather than an empty list.
func (q *reviewQueriesImpl) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) (*VehicleReviews, error) {
	if _, err := q.vehicles.FindByID(ctx, vehicleID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, err
	}

	reviews, err := q.reader.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, errs.Wrap(err, "list reviews")
	}
	if reviews == nil {
		reviews = []*review.Review{}
	}
	return &VehicleReviews{
		VehicleID: vehicleID,
		Reviews:   reviews,
		Summary:   review.Summarize(reviews),
	}, nil
}

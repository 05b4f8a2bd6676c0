//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-rental/internal/domain/review"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	VehicleID uuid.UUID
	Author    string
	Text      string
	Stars     int
	Date      time.Time
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		Author:    "Lena",
		Text:      "Clean car, smooth pickup.",
		Stars:     5,
		Date:      time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithStars(stars int) *ReviewBuilder {
	r.Stars = stars
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() *review.Review {
	rv, err := review.Reconstruct(r.ID, r.VehicleID, r.Author, r.Text, r.Stars, r.Date, r.CreatedAt)
	if err != nil {
		panic(err)
	}
	return rv
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:         r.ID,
		VehicleID:  r.VehicleID,
		AuthorName: r.Author,
		Body:       r.Text,
		Stars:      int32(r.Stars),
		ReviewDate: pgconv.DateToPgtype(r.Date),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt),
	}
}

// Reviews builds one review of vehicleID per star value, one day apart,
// newest first.
func Reviews(vehicleID uuid.UUID, stars ...int) []*review.Review {
	out := make([]*review.Review, 0, len(stars))
	for i, s := range stars {
		b := NewReviewBuilder().WithStars(s)
		b.VehicleID = vehicleID
		b.Date = b.Date.AddDate(0, 0, -i)
		out = append(out, b.BuildDomain())
	}
	return out
}

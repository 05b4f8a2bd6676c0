package queries

import (
	"context"

	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type LocationView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

type LocationReader interface {
	ListLocations(ctx context.Context) ([]*LocationView, error)
}

type LocationQueries interface {
	List(ctx context.Context) ([]*LocationView, error)
}

type locationQueriesImpl struct {
	reader LocationReader
}

func NewLocationQueries(reader LocationReader) LocationQueries {
	return &locationQueriesImpl{reader: reader}
}

func (q *locationQueriesImpl) List(ctx context.Context) ([]*LocationView, error) {
	locations, err := q.reader.ListLocations(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list locations")
	}
	if locations == nil {
		locations = []*LocationView{}
	}
	return locations, nil
}

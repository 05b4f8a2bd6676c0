package queries

import (
	"context"
	"time"

	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	VehicleName     string    `json:"vehicle_name"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	Pickup          time.Time `json:"pickup"`
	Dropoff         time.Time `json:"dropoff"`
	Total           float64   `json:"total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingReader lists bookings newest pickup first. after, when set, is the
// keyset position of the last item already returned.
type BookingReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, after *BookingKey, limit int) ([]*BookingListItem, error)
}

type BookingKey struct {
	Pickup time.Time
	ID     uuid.UUID
}

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	reader BookingReader
}

func NewBookingQueries(reader BookingReader) BookingQueries {
	return &bookingQueriesImpl{reader: reader}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var after *BookingKey
	if cursor != nil && cursor.After != "" {
		pickup, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		after = &BookingKey{Pickup: pickup, ID: id}
	}

	// one extra row tells whether another page exists
	items, err := q.reader.ListByUser(ctx, userID, after, limit+1)
	if err != nil {
		return nil, nil, errs.Wrap(err, "list bookings")
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.Pickup, last.ID)}
	}
	if items == nil {
		items = []*BookingListItem{}
	}
	return items, next, nil
}

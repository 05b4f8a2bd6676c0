package readstore

import (
	"context"
	"strings"

	"vehicle-rental/internal/infra"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/pgconv"
	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserFirstPageParams) ([]sqlc.GetBookingsByUserFirstPageRow, error)
	GetBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByUserKeysetParams) ([]sqlc.GetBookingsByUserKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.BookingKey, limit int) ([]*queries.BookingListItem, error) {
	if after == nil {
		rows, err := r.queries.GetBookingsByUserFirstPage(ctx, r.db, sqlc.GetBookingsByUserFirstPageParams{
			UserID: userID,
			Limit:  pgconv.IntToInt32(limit),
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to get bookings first page by user", err)
		}
		items := make([]*queries.BookingListItem, 0, len(rows))
		for _, row := range rows {
			item, err := toBookingListItem(bookingRow(row))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	rows, err := r.queries.GetBookingsByUserKeyset(ctx, r.db, sqlc.GetBookingsByUserKeysetParams{
		UserID:   userID,
		PickupAt: pgconv.TimeToPgtype(after.Pickup),
		ID:       after.ID,
		Limit:    pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings keyset by user", err)
	}
	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toBookingListItem(bookingRow(row))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// bookingRow is the column set both list queries select.
type bookingRow struct {
	ID              uuid.UUID
	VehicleID       uuid.UUID
	Brand           string
	Model           string
	PickupLocation  string
	DropoffLocation string
	PickupAt        pgtype.Timestamptz
	DropoffAt       pgtype.Timestamptz
	Total           pgtype.Numeric
	Status          string
	CreatedAt       pgtype.Timestamptz
}

func toBookingListItem(row bookingRow) (*queries.BookingListItem, error) {
	total, err := pgconv.Float64PtrFromNumeric(row.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking total", err)
	}
	item := &queries.BookingListItem{
		ID:              row.ID,
		VehicleID:       row.VehicleID,
		VehicleName:     strings.TrimSpace(row.Brand + " " + row.Model),
		PickupLocation:  row.PickupLocation,
		DropoffLocation: row.DropoffLocation,
		Pickup:          pgconv.TimeFromPgtype(row.PickupAt),
		Dropoff:         pgconv.TimeFromPgtype(row.DropoffAt),
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if total != nil {
		item.Total = *total
	}
	return item, nil
}

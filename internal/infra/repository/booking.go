package repository

import (
	"context"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type BookingWriteQueries interface {
	GetVehicleForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetVehicleForBookingRow, error)
	UpsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertBookingParams) (sqlc.Bookings, error)
}

// BookingRepository is the booking collaborator. Re-submitting a draft
// returns the row created the first time.
type BookingRepository struct {
	queries BookingWriteQueries
	pool    db.TxBeginner
}

func NewBookingRepository(queries BookingWriteQueries, pool db.TxBeginner) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		pool:    pool,
	}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, payload booking.Payload) (*booking.Booking, error) {
	if err := payload.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return db.WithDefaultRetry(ctx, r.pool, func(tx sqlc.DBTX) (*booking.Booking, error) {
		v, err := r.queries.GetVehicleForBooking(ctx, tx, payload.VehicleID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
			}
			return nil, infra.WrapRepoErr("failed to lock vehicle", err)
		}
		if !v.Available {
			return nil, errs.Mark(
				infra.WrapRepoErr("vehicle not available", nil, infra.KindUnavailable),
				errs.ErrVehicleUnavailable,
			)
		}

		row, err := r.queries.UpsertBooking(ctx, tx, sqlc.UpsertBookingParams{
			DraftID:         payload.DraftID,
			VehicleID:       payload.VehicleID,
			UserID:          payload.UserID,
			PickupLocation:  payload.PickupLocation,
			DropoffLocation: payload.DropoffLocation,
			PickupAt:        pgconv.TimeToPgtype(payload.Pickup),
			DropoffAt:       pgconv.TimeToPgtype(payload.Dropoff),
			Total:           pgconv.Float64ToNumeric(payload.Total),
			Status:          payload.Status.String(),
		})
		if err != nil {
			if isForeignKeyViolation(err) {
				return nil, infra.WrapRepoErr("booking references missing vehicle", err, infra.KindForeignKeyViolated)
			}
			return nil, infra.WrapRepoErr("failed to insert booking", err)
		}
		return toBooking(row)
	})
}

func toBooking(row sqlc.Bookings) (*booking.Booking, error) {
	total, err := pgconv.Float64PtrFromNumeric(row.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking total", err)
	}
	var t float64
	if total != nil {
		t = *total
	}
	return booking.Reconstruct(
		row.ID, row.DraftID, row.VehicleID, row.UserID,
		row.PickupLocation, row.DropoffLocation,
		pgconv.TimeFromPgtype(row.PickupAt), pgconv.TimeFromPgtype(row.DropoffAt),
		t,
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errs.As(err, &pgErr) && pgErr.Code == "23503"
}

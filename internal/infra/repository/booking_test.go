//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/repository"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/pkg/pgconv"
	repositorymock "vehicle-rental/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubTx struct {
	pgx.Tx
	committed bool
}

func (s *stubTx) Commit(context.Context) error {
	s.committed = true
	return nil
}

func (s *stubTx) Rollback(context.Context) error {
	if s.committed {
		return pgx.ErrTxClosed
	}
	return nil
}

type stubPool struct{ tx *stubTx }

func (p *stubPool) Begin(context.Context) (pgx.Tx, error) {
	p.tx = &stubTx{}
	return p.tx, nil
}

func bookingPayload() booking.Payload {
	pickup := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	return booking.Payload{
		DraftID:         uuid.New(),
		VehicleID:       uuid.New(),
		UserID:          uuid.New(),
		PickupLocation:  "Bremen",
		DropoffLocation: "Hamburg",
		Pickup:          pickup,
		Dropoff:         pickup.Add(47 * time.Hour),
		Total:           80,
		Status:          booking.StatusConfirmed,
	}
}

func TestBookingRepository_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: booking is inserted and committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockBookingWriteQueries(ctrl)
		pool := &stubPool{}
		repo := repository.NewBookingRepository(q, pool)
		p := bookingPayload()
		bookingID := uuid.New()

		q.EXPECT().GetVehicleForBooking(ctx, gomock.Any(), p.VehicleID).
			Return(sqlc.GetVehicleForBookingRow{ID: p.VehicleID, Available: true}, nil)
		q.EXPECT().UpsertBooking(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertBookingParams) (sqlc.Bookings, error) {
				assert.Equal(t, p.DraftID, arg.DraftID)
				assert.Equal(t, "confirmed", arg.Status)
				assert.True(t, arg.PickupAt.Time.Equal(p.Pickup))
				return sqlc.Bookings{
					ID:              bookingID,
					DraftID:         arg.DraftID,
					VehicleID:       arg.VehicleID,
					UserID:          arg.UserID,
					PickupLocation:  arg.PickupLocation,
					DropoffLocation: arg.DropoffLocation,
					PickupAt:        arg.PickupAt,
					DropoffAt:       arg.DropoffAt,
					Total:           arg.Total,
					Status:          arg.Status,
					CreatedAt:       pgconv.TimeToPgtype(p.Pickup),
					UpdatedAt:       pgconv.TimeToPgtype(p.Pickup),
				}, nil
			})

		b, err := repo.CreateBooking(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, bookingID, b.ID())
		assert.Equal(t, 80.0, b.Total())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, pool.tx.committed)
	})

	t.Run("error: unavailable vehicle is not booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockBookingWriteQueries(ctrl)
		pool := &stubPool{}
		repo := repository.NewBookingRepository(q, pool)
		p := bookingPayload()

		q.EXPECT().GetVehicleForBooking(ctx, gomock.Any(), p.VehicleID).
			Return(sqlc.GetVehicleForBookingRow{ID: p.VehicleID, Available: false}, nil)

		_, err := repo.CreateBooking(ctx, p)

		assert.True(t, errs.Is(err, errs.ErrVehicleUnavailable))
		assert.False(t, pool.tx.committed)
	})

	t.Run("error: unknown vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(q, &stubPool{})
		p := bookingPayload()

		q.EXPECT().GetVehicleForBooking(ctx, gomock.Any(), p.VehicleID).
			Return(sqlc.GetVehicleForBookingRow{}, pgx.ErrNoRows)

		_, err := repo.CreateBooking(ctx, p)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: invalid payload never opens a transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pool := &stubPool{}
		repo := repository.NewBookingRepository(repositorymock.NewMockBookingWriteQueries(ctrl), pool)
		p := bookingPayload()
		p.Dropoff = p.Pickup

		_, err := repo.CreateBooking(ctx, p)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Nil(t, pool.tx)
	})
}

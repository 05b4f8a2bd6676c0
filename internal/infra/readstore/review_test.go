//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/readstore"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/pgconv"
	readstoremock "vehicle-rental/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewReadStore_ListByVehicle(t *testing.T) {
	ctx := context.Background()
	vehicleID := uuid.New()
	day := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("success: rows become reviews in query order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockReviewReadQueries(ctrl)
		store := readstore.NewReviewReadStore(q, nil)

		q.EXPECT().ListReviewsByVehicle(ctx, gomock.Any(), vehicleID).Return([]sqlc.Reviews{
			{ID: uuid.New(), VehicleID: vehicleID, AuthorName: "Lena", Body: "Clean and quiet", Stars: 5, ReviewDate: pgconv.DateToPgtype(day)},
			{ID: uuid.New(), VehicleID: vehicleID, AuthorName: "", Body: "Ok", Stars: 3, ReviewDate: pgconv.DateToPgtype(day.AddDate(0, 0, -3))},
		}, nil)

		reviews, err := store.ListByVehicle(ctx, vehicleID)

		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "Lena", reviews[0].Author())
		assert.Equal(t, 5, reviews[0].Stars().Value())
		assert.True(t, reviews[0].Date().Equal(day))
		assert.Equal(t, "?", reviews[1].Initial())
	})

	t.Run("success: vehicle without reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockReviewReadQueries(ctrl)
		store := readstore.NewReviewReadStore(q, nil)

		q.EXPECT().ListReviewsByVehicle(ctx, gomock.Any(), vehicleID).Return(nil, nil)

		reviews, err := store.ListByVehicle(ctx, vehicleID)

		require.NoError(t, err)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
	})

	t.Run("error: corrupt star value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockReviewReadQueries(ctrl)
		store := readstore.NewReviewReadStore(q, nil)

		q.EXPECT().ListReviewsByVehicle(ctx, gomock.Any(), vehicleID).
			Return([]sqlc.Reviews{{ID: uuid.New(), VehicleID: vehicleID, Stars: 9}}, nil)

		_, err := store.ListByVehicle(ctx, vehicleID)

		assert.ErrorIs(t, err, review.ErrInvalidStars)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockReviewReadQueries(ctrl)
		store := readstore.NewReviewReadStore(q, nil)

		q.EXPECT().ListReviewsByVehicle(ctx, gomock.Any(), vehicleID).Return(nil, errDBConnectionLost)

		_, err := store.ListByVehicle(ctx, vehicleID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

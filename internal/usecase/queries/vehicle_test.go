//go:build unit

package queries_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/tests/common/builder"
	catalogmock "vehicle-rental/tests/mock/catalog"
	queriesmock "vehicle-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

func newVehicleQueries(t *testing.T) (queries.VehicleQueries, *catalogmock.MockFetcher, *queriesmock.MockVehicleReader) {
	ctrl := gomock.NewController(t)
	fetcher := catalogmock.NewMockFetcher(ctrl)
	reader := queriesmock.NewMockVehicleReader(ctrl)
	q := queries.NewVehicleQueries(fetcher, reader, filter.NewEngine(language.German), slog.New(slog.DiscardHandler))
	return q, fetcher, reader
}

func fleet(n int) []*vehicle.Vehicle {
	mutations := make([]func(*builder.VehicleBuilder), n)
	for i := range mutations {
		rate := float64(10 * (i + 1))
		mutations[i] = func(b *builder.VehicleBuilder) { b.WithRate(rate) }
	}
	return builder.Catalog(mutations...)
}

func TestVehicleQueries_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("success: hints are passed to the fetcher and results re-filtered", func(t *testing.T) {
		q, fetcher, _ := newVehicleQueries(t)
		c := filter.NewCriteria()
		require.NoError(t, c.Select(filter.FieldBrand, "BMW"))

		catalog := builder.Catalog(
			func(b *builder.VehicleBuilder) { b.WithBrand("BMW").WithRate(120) },
			func(b *builder.VehicleBuilder) { b.WithBrand("BMW Alpina").WithRate(200) },
		)
		fetcher.EXPECT().FetchVehicles(gomock.Any(), vehicle.Hints{Brand: "bmw"}).Return(catalog, nil)

		page, err := q.Search(ctx, c, 0, 0)

		require.NoError(t, err)
		require.Len(t, page.Vehicles, 1)
		assert.Equal(t, "BMW", page.Vehicles[0].Brand())
		assert.Equal(t, 1, page.Total)
		assert.False(t, page.HasMore)
	})

	t.Run("success: first page then load more", func(t *testing.T) {
		q, fetcher, _ := newVehicleQueries(t)
		fetcher.EXPECT().FetchVehicles(gomock.Any(), gomock.Any()).Return(fleet(25), nil).Times(2)

		first, err := q.Search(ctx, filter.NewCriteria(), 0, 0)
		require.NoError(t, err)
		assert.Len(t, first.Vehicles, filter.FirstPageSize)
		assert.True(t, first.HasMore)
		assert.Equal(t, filter.NextPageSize, first.NextLimit)

		next, err := q.Search(ctx, filter.NewCriteria(), filter.FirstPageSize, first.NextLimit)
		require.NoError(t, err)
		assert.Len(t, next.Vehicles, filter.NextPageSize)
		assert.Equal(t, 130.0, next.Vehicles[0].DailyRate())
	})

	t.Run("error: fetch failure is reported as catalog unavailable", func(t *testing.T) {
		q, fetcher, _ := newVehicleQueries(t)
		fetcher.EXPECT().FetchVehicles(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: refused"))

		_, err := q.Search(ctx, filter.NewCriteria(), 0, 0)

		assert.True(t, errs.Is(err, errs.ErrCatalogUnavailable))
	})
}

func TestVehicleQueries_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("success: facets and highlights use the full catalog", func(t *testing.T) {
		q, fetcher, _ := newVehicleQueries(t)
		catalog := builder.Catalog(
			func(b *builder.VehicleBuilder) { b.WithBrand("Audi").Discount = ptrFloat(10) },
			func(b *builder.VehicleBuilder) { b.WithBrand("BMW").Rating = ptrFloat(4.8) },
		)
		fetcher.EXPECT().FetchVehicles(gomock.Any(), vehicle.Hints{}).Return(catalog, nil).Times(2)

		facets, err := q.Facets(ctx)
		require.NoError(t, err)
		assert.Len(t, facets.Brands, 2)

		h, err := q.Highlights(ctx)
		require.NoError(t, err)
		require.Len(t, h.Featured, 1)
		assert.Equal(t, "BMW", h.Featured[0].Brand())
		require.Len(t, h.SpecialOffers, 1)
		assert.Equal(t, "Audi", h.SpecialOffers[0].Brand())
	})

	t.Run("error: unknown vehicle id", func(t *testing.T) {
		q, _, reader := newVehicleQueries(t)
		id := uuid.New()
		reader.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := q.GetByID(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrVehicleNotFound))
	})
}

func ptrFloat(f float64) *float64 { return &f }

//go:build unit

package filter_test

import (
	"math"
	"testing"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCriteria(t *testing.T) {
	t.Run("success: new criteria is empty and sorted by price", func(t *testing.T) {
		c := filter.NewCriteria()

		assert.True(t, c.IsEmpty())
		assert.Equal(t, filter.SortPriceAsc, c.Sort())
		assert.Equal(t, filter.Unbounded, c.Price())
	})

	t.Run("success: selections are normalized and deduplicated", func(t *testing.T) {
		c := filter.NewCriteria()
		require.NoError(t, c.Select(filter.FieldBrand, " BMW", "bmw", "Audi", ""))

		assert.Equal(t, []string{"audi", "bmw"}, c.Selected(filter.FieldBrand))
	})

	t.Run("success: toggle adds then removes", func(t *testing.T) {
		c := filter.NewCriteria()
		require.NoError(t, c.Toggle(filter.FieldType, "SUV"))
		require.NoError(t, c.Toggle(filter.FieldType, "Van"))
		require.NoError(t, c.Toggle(filter.FieldType, "suv"))

		assert.Equal(t, []string{"van"}, c.Selected(filter.FieldType))
	})

	t.Run("success: copies do not share selections", func(t *testing.T) {
		a := filter.NewCriteria()
		require.NoError(t, a.Select(filter.FieldBrand, "bmw"))
		b := a
		require.NoError(t, b.Toggle(filter.FieldBrand, "audi"))

		assert.Equal(t, []string{"bmw"}, a.Selected(filter.FieldBrand))
		assert.Equal(t, []string{"audi", "bmw"}, b.Selected(filter.FieldBrand))
	})

	t.Run("success: equal criteria have equal keys", func(t *testing.T) {
		a := filter.NewCriteria()
		require.NoError(t, a.Select(filter.FieldBrand, "BMW", "Audi"))
		a.SetLocations("Bremen", "")
		b := filter.NewCriteria()
		require.NoError(t, b.Select(filter.FieldBrand, "audi", "bmw"))
		b.SetLocations(" bremen ", "")

		assert.Equal(t, a.Key(), b.Key())

		require.NoError(t, b.SetSort(filter.SortNameAsc))
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("success: swap locations", func(t *testing.T) {
		c := filter.NewCriteria()
		c.SetLocations("Bremen", "Hamburg")
		c.SwapLocations()

		assert.Equal(t, "Hamburg", c.Pickup())
		assert.Equal(t, "Bremen", c.Dropoff())
	})

	t.Run("price range validation", func(t *testing.T) {
		cases := []struct {
			name    string
			lo, hi  float64
			wantErr bool
		}{
			{"equal bounds", 50, 50, false},
			{"open upper bound", 10, math.Inf(1), false},
			{"min above max", 200, 100, true},
			{"negative min", -1, 100, true},
			{"NaN", math.NaN(), 100, true},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c := filter.NewCriteria()
				err := c.SetPriceRange(tc.lo, tc.hi)
				if tc.wantErr {
					assert.ErrorIs(t, err, filter.ErrInvalidPriceRange)
					assert.Equal(t, filter.Unbounded, c.Price())
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("error: unknown field, sort key and seat band", func(t *testing.T) {
		c := filter.NewCriteria()

		assert.ErrorIs(t, c.Select(filter.Field(42), "x"), filter.ErrUnknownField)
		assert.ErrorIs(t, c.SetSort("cheapest"), filter.ErrUnknownSortKey)
		assert.ErrorIs(t, c.SelectCapacities(vehicle.SeatBand(7)), vehicle.ErrInvalidSeatBand)

		_, err := filter.ParseField("colour")
		assert.ErrorIs(t, err, filter.ErrUnknownField)
	})

	t.Run("success: hints only carry single-valued selections", func(t *testing.T) {
		c := filter.NewCriteria()
		require.NoError(t, c.Select(filter.FieldBrand, "BMW"))
		require.NoError(t, c.Select(filter.FieldType, "suv", "van"))
		require.NoError(t, c.SetPriceRange(20, 150))
		c.SetLocations("Bremen", "Hamburg")

		h := c.Hints()

		assert.Equal(t, "bmw", h.Brand)
		assert.Empty(t, h.Type)
		assert.Equal(t, "Bremen", h.Location)
		require.NotNil(t, h.MinPrice)
		require.NotNil(t, h.MaxPrice)
		assert.Equal(t, 20.0, *h.MinPrice)
		assert.Equal(t, 150.0, *h.MaxPrice)

		assert.True(t, filter.NewCriteria().Hints().IsZero())
	})

	t.Run("success: location hint agrees with the engine", func(t *testing.T) {
		c := filter.NewCriteria()
		c.SetLocations("Mannheim (49.489,8.467)", "")
		stored := vehicle.New(vehicle.Attributes{Brand: "Opel", Model: "Corsa", Locations: []string{"Bremen,  Mannheim"}, Available: true})

		h := c.Hints()

		assert.Equal(t, "Mannheim", h.Location)
		assert.Equal(t, "mannheim", h.LocationKey())
		require.Len(t, filter.NewEngine(language.German).ComputeVisible([]*vehicle.Vehicle{stored}, c), 1)
		assert.Contains(t, vehicle.NormalizeText("Bremen,  Mannheim"), h.LocationKey())
	})
}

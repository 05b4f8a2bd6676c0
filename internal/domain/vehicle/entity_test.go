//go:build unit

package vehicle_test

import (
	"testing"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicle(t *testing.T) {
	t.Run("success: defaults for sparse record", func(t *testing.T) {
		v := vehicle.New(vehicle.Attributes{Brand: " BMW ", Model: "X1"})

		assert.Equal(t, "BMW", v.Brand())
		assert.Equal(t, "BMW X1", v.Name())
		assert.Zero(t, v.DailyRate())
		assert.Zero(t, v.Seats())
		assert.Equal(t, vehicle.UnknownFuel, v.Fuel())
		assert.False(t, v.Featured())
		_, rated := v.Rating()
		assert.False(t, rated)
		assert.Zero(t, v.Locations().Len())
	})

	t.Run("success: negative rate and discount are clamped", func(t *testing.T) {
		v := builder.NewVehicleBuilder().WithRate(-10).With(func(b *builder.VehicleBuilder) {
			d := -5.0
			b.Discount = &d
		}).BuildDomain()

		assert.Zero(t, v.DailyRate())
		assert.Zero(t, v.Discount())
	})

	t.Run("success: attributes round trip keeps defaults", func(t *testing.T) {
		v := builder.NewVehicleBuilder().WithoutRate().BuildDomain()

		again := vehicle.New(v.Attributes())

		if diff := cmp.Diff(v.Attributes(), again.Attributes()); diff != "" {
			t.Errorf("attributes mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, again.Attributes().DailyRate)
		assert.Zero(t, *again.Attributes().DailyRate)
	})
}

func TestLocationSet(t *testing.T) {
	t.Run("success: comma-joined strings and arrays normalize to one set", func(t *testing.T) {
		fromString := vehicle.NewLocationSet("Bremen, Hamburg ,  berlin")
		fromArray := vehicle.NewLocationSet("bremen", "HAMBURG", "Berlin", "Bremen")

		assert.Equal(t, []string{"Bremen", "Hamburg", "berlin"}, fromString.Names())
		assert.Equal(t, 3, fromArray.Len())
		for _, name := range fromString.Names() {
			assert.True(t, fromArray.Contains(name), name)
		}
	})

	t.Run("success: matching is trimmed and case-insensitive", func(t *testing.T) {
		set := vehicle.NewLocationSet("Bad  Oldesloe")

		assert.True(t, set.Contains("  bad oldesloe "))
		assert.False(t, set.Contains("Oldesloe"))
		assert.False(t, set.Contains(""))
	})

	t.Run("success: coordinate suffix is split off", func(t *testing.T) {
		set := vehicle.NewLocationSet("Mannheim (49.489,8.467), Heidelberg")

		require.Equal(t, 2, set.Len())
		assert.True(t, set.Contains("mannheim"))
		assert.True(t, set.Contains("Mannheim (49.489,8.467)"))

		first, ok := set.First()
		require.True(t, ok)
		p, ok := first.Point()
		require.True(t, ok)
		assert.InDelta(t, 49.489, p.Lat, 1e-9)
		assert.InDelta(t, 8.467, p.Lng, 1e-9)
		assert.Equal(t, []string{"Mannheim (49.489,8.467)", "Heidelberg"}, set.Raw())
	})

	t.Run("success: malformed coordinates stay part of the name", func(t *testing.T) {
		loc, ok := vehicle.ParseLocation("Depot (north)")
		require.True(t, ok)

		assert.Equal(t, "Depot (north)", loc.Name())
		_, hasPoint := loc.Point()
		assert.False(t, hasPoint)
	})
}

func TestSeatBand(t *testing.T) {
	cases := []struct {
		band  vehicle.SeatBand
		seats int
		want  bool
	}{
		{vehicle.SeatsUpTo2, 2, true},
		{vehicle.SeatsUpTo2, 0, true},
		{vehicle.SeatsUpTo2, 3, false},
		{vehicle.Seats3To4, 3, true},
		{vehicle.Seats3To4, 5, false},
		{vehicle.Seats5To6, 6, true},
		{vehicle.Seats8AndUp, 7, false},
		{vehicle.Seats8AndUp, 9, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.band.Contains(tc.seats), "band %s seats %d", tc.band, tc.seats)
	}

	b, err := vehicle.ParseSeatBand("8+")
	require.NoError(t, err)
	assert.Equal(t, vehicle.Seats8AndUp, b)

	_, err = vehicle.ParseSeatBand("7")
	assert.ErrorIs(t, err, vehicle.ErrInvalidSeatBand)
}

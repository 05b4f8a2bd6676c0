//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"vehicle-rental/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) *time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCalculator_Quote(t *testing.T) {
	calc := pricing.NewCalculator(pricing.NoTax{})

	tests := []struct {
		name     string
		pickup   *time.Time
		dropoff  *time.Time
		rate     float64
		wantDays int
		wantSub  float64
	}{
		{"47 hours round up to 2 days", at("2025-01-01T10:00"), at("2025-01-03T09:00"), 40, 2, 80},
		{"exactly one day", at("2025-01-01T10:00"), at("2025-01-02T10:00"), 40, 1, 40},
		{"one minute over a day", at("2025-01-01T10:00"), at("2025-01-02T10:01"), 40, 2, 80},
		{"one hour is a minimum day", at("2025-01-01T10:00"), at("2025-01-01T11:00"), 55.5, 1, 55.5},
		{"same instant falls back to one day", at("2025-01-01T10:00"), at("2025-01-01T10:00"), 40, 1, 40},
		{"inverted window falls back to one day", at("2025-01-03T10:00"), at("2025-01-01T10:00"), 40, 1, 40},
		{"missing dropoff falls back to one day", at("2025-01-01T10:00"), nil, 40, 1, 40},
		{"missing both falls back to one day", nil, nil, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := calc.Quote(tt.pickup, tt.dropoff, tt.rate)

			assert.Equal(t, tt.wantDays, q.Days)
			assert.InDelta(t, tt.wantSub, q.Subtotal, 1e-9)
			assert.Zero(t, q.Tax)
			assert.InDelta(t, q.Subtotal+q.Tax, q.Total, 1e-9)
			assert.Equal(t, tt.rate, q.DailyRate)
		})
	}
}

func TestCalculator_Monotonic(t *testing.T) {
	tax, err := pricing.NewPercentTax(19)
	require.NoError(t, err)

	for _, calc := range []*pricing.Calculator{pricing.NewCalculator(nil), pricing.NewCalculator(tax)} {
		start := at("2025-03-01T09:00")
		prev := -1.0
		for n := 1; n <= 30; n++ {
			end := start.Add(time.Duration(n) * 24 * time.Hour)
			q := calc.Quote(start, &end, 37.9)
			require.Equal(t, n, q.Days)
			assert.GreaterOrEqual(t, q.Total, prev)
			prev = q.Total
		}
	}
}

func TestTaxPolicy(t *testing.T) {
	t.Run("success: percent tax is added to the total", func(t *testing.T) {
		tax, err := pricing.PolicyFor(19)
		require.NoError(t, err)

		q := pricing.NewCalculator(tax).Quote(at("2025-01-01T10:00"), at("2025-01-03T09:00"), 40)

		assert.InDelta(t, 15.2, q.Tax, 1e-9)
		assert.InDelta(t, 95.2, q.Total, 1e-9)
		assert.Equal(t, "95.20", pricing.Format(q.Total))
	})

	t.Run("success: zero percent is no tax", func(t *testing.T) {
		tax, err := pricing.PolicyFor(0)
		require.NoError(t, err)
		assert.IsType(t, pricing.NoTax{}, tax)
	})

	t.Run("error: out of range percent", func(t *testing.T) {
		_, err := pricing.PolicyFor(120)
		assert.ErrorIs(t, err, pricing.ErrInvalidTaxPercent)

		_, err = pricing.NewPercentTax(-1)
		assert.ErrorIs(t, err, pricing.ErrInvalidTaxPercent)
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "80.00", pricing.Format(80))
	assert.Equal(t, "33.33", pricing.Format(100.0/3))
	assert.Equal(t, "0.00", pricing.Format(0))
}

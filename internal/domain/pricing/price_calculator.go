package pricing

import (
	"math"
	"strconv"
	"time"
)

const day = 24 * time.Hour

// Quote is the price breakdown for one rental window. Amounts are kept
// unrounded; Format rounds for display only.
type Quote struct {
	Days      int
	DailyRate float64
	Subtotal  float64
	Tax       float64
	Total     float64
}

type Calculator struct {
	tax TaxPolicy
}

func NewCalculator(tax TaxPolicy) *Calculator {
	if tax == nil {
		tax = NoTax{}
	}
	return &Calculator{tax: tax}
}

// Quote never fails: a missing or inverted window is priced as a single day.
func (c *Calculator) Quote(pickup, dropoff *time.Time, dailyRate float64) Quote {
	days := RentalDays(pickup, dropoff)
	subtotal := float64(days) * dailyRate
	tax := c.tax.Tax(subtotal)
	return Quote{
		Days:      days,
		DailyRate: dailyRate,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
	}
}

// RentalDays is the ceiling of the elapsed time in whole days, at least 1.
func RentalDays(pickup, dropoff *time.Time) int {
	if pickup == nil || dropoff == nil || !dropoff.After(*pickup) {
		return 1
	}
	days := int(math.Ceil(float64(dropoff.Sub(*pickup)) / float64(day)))
	return max(days, 1)
}

// Format renders an amount with two decimals.
func Format(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

package filter

import (
	"math"
	"slices"

	"vehicle-rental/internal/domain/vehicle"

	"golang.org/x/text/collate"
)

// FeaturedRatingThreshold promotes well-rated vehicles to the featured list.
const FeaturedRatingThreshold = 4.5

type Option struct {
	Value string
	Label string
	Count int
}

type Facets struct {
	Brands     []Option
	Types      []Option
	Capacities []Option
	PriceMin   float64
	PriceMax   float64
}

// Facets lists the selectable values of the catalog with their counts.
func (e *Engine) Facets(catalog []*vehicle.Vehicle) Facets {
	f := Facets{
		Brands:     e.options(catalog, FieldBrand),
		Types:      e.options(catalog, FieldType),
		Capacities: []Option{},
	}

	for _, band := range vehicle.SeatBands {
		n := 0
		for _, v := range catalog {
			if v != nil && band.Contains(v.Seats()) {
				n++
			}
		}
		if n > 0 {
			f.Capacities = append(f.Capacities, Option{Value: band.String(), Label: band.String(), Count: n})
		}
	}

	lo, hi := math.Inf(1), 0.0
	for _, v := range catalog {
		if v == nil {
			continue
		}
		lo = min(lo, v.DailyRate())
		hi = max(hi, v.DailyRate())
	}
	if !math.IsInf(lo, 1) {
		f.PriceMin, f.PriceMax = lo, hi
	}
	return f
}

func (e *Engine) options(catalog []*vehicle.Vehicle, field Field) []Option {
	index := map[string]int{}
	out := []Option{}
	for _, v := range catalog {
		if v == nil {
			continue
		}
		label := field.valueOf(v)
		key := normalizeChoice(label)
		if key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, Option{Value: key, Label: label, Count: 1})
	}

	col := collate.New(e.locale)
	slices.SortStableFunc(out, func(a, b Option) int { return col.CompareString(a.Value, b.Value) })
	return out
}

// Featured returns flagged or highly rated vehicles in catalog order.
func Featured(catalog []*vehicle.Vehicle) []*vehicle.Vehicle {
	out := []*vehicle.Vehicle{}
	for _, v := range catalog {
		if v == nil {
			continue
		}
		if rating, ok := v.Rating(); v.Featured() || (ok && rating >= FeaturedRatingThreshold) {
			out = append(out, v)
		}
	}
	return out
}

// SpecialOffers returns discounted vehicles in catalog order.
func SpecialOffers(catalog []*vehicle.Vehicle) []*vehicle.Vehicle {
	out := []*vehicle.Vehicle{}
	for _, v := range catalog {
		if v != nil && v.Discount() > 0 {
			out = append(out, v)
		}
	}
	return out
}

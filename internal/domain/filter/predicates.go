package filter

import (
	"slices"
	"strconv"
	"strings"

	"vehicle-rental/internal/domain/vehicle"
)

// Predicate is one active constraint of a Criteria.
type Predicate interface {
	Name() string
	Match(v *vehicle.Vehicle) bool
}

type choicePredicate struct {
	field  Field
	values []string
}

func (p choicePredicate) Name() string { return p.field.String() }

// Match is OR within the field, case-insensitive.
func (p choicePredicate) Match(v *vehicle.Vehicle) bool {
	return slices.Contains(p.values, normalizeChoice(p.field.valueOf(v)))
}

type priceBandPredicate struct {
	band PriceRange
}

func (p priceBandPredicate) Name() string { return "price" }

func (p priceBandPredicate) Match(v *vehicle.Vehicle) bool {
	return p.band.Contains(v.DailyRate())
}

type locationPredicate struct {
	role     string
	location string
}

func (p locationPredicate) Name() string { return p.role }

func (p locationPredicate) Match(v *vehicle.Vehicle) bool {
	return v.Locations().Contains(p.location)
}

type capacityPredicate struct {
	bands []vehicle.SeatBand
}

func (p capacityPredicate) Name() string {
	parts := make([]string, len(p.bands))
	for i, b := range p.bands {
		parts[i] = b.String()
	}
	return "seats[" + strings.Join(parts, ",") + "]"
}

func (p capacityPredicate) Match(v *vehicle.Vehicle) bool {
	for _, b := range p.bands {
		if b.Contains(v.Seats()) {
			return true
		}
	}
	return false
}

type availabilityPredicate struct{}

func (availabilityPredicate) Name() string { return "available" }

func (availabilityPredicate) Match(v *vehicle.Vehicle) bool { return v.Available() }

// Predicates lists the active constraints; fields with no selection are absent.
func (c Criteria) Predicates() []Predicate {
	var preds []Predicate
	for _, f := range Fields {
		if sel := c.selections[f-1]; len(sel) > 0 {
			preds = append(preds, choicePredicate{field: f, values: sel})
		}
	}
	if len(c.capacities) > 0 {
		preds = append(preds, capacityPredicate{bands: c.capacities})
	}
	if band := c.Price(); band.IsBounded() {
		preds = append(preds, priceBandPredicate{band: band})
	}
	if c.pickup != "" {
		preds = append(preds, locationPredicate{role: "pickup", location: c.pickup})
	}
	if c.dropoff != "" {
		preds = append(preds, locationPredicate{role: "dropoff", location: c.dropoff})
	}
	if c.onlyAvailable {
		preds = append(preds, availabilityPredicate{})
	}
	return preds
}

// MatchesAll is the AND across predicates.
func MatchesAll(v *vehicle.Vehicle, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Match(v) {
			return false
		}
	}
	return true
}

// String summarizes the active predicates for logs.
func (c Criteria) String() string {
	preds := c.Predicates()
	names := make([]string, len(preds))
	for i, p := range preds {
		names[i] = p.Name()
	}
	return "predicates=" + strconv.Itoa(len(preds)) + "[" + strings.Join(names, ",") + "] sort=" + string(c.Sort())
}

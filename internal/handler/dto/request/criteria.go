package request

import (
	"math"
	"strings"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/patch"
)

// CriteriaRequest changes the criteria of a search session. Nil fields keep
// their current value; an empty list clears the selection.
type CriteriaRequest struct {
	Brands        *[]string      `json:"brands"`
	Types         *[]string      `json:"types"`
	Gears         *[]string      `json:"gears"`
	Fuels         *[]string      `json:"fuels"`
	Seats         *[]string      `json:"seats"`
	MinPrice      *float64       `json:"min_price" binding:"omitempty,min=0"`
	MaxPrice      *float64       `json:"max_price" binding:"omitempty,min=0"`
	ClearPrice    bool           `json:"clear_price"`
	Pickup        *string        `json:"pickup" binding:"omitempty,max=200"`
	Dropoff       *string        `json:"dropoff" binding:"omitempty,max=200"`
	SwapLocations bool           `json:"swap_locations"`
	OnlyAvailable *bool          `json:"only_available"`
	Sort          *string        `json:"sort"`
	Toggle        *ToggleRequest `json:"toggle"`
}

type ToggleRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// Apply mutates c in place. It stops at the first rejected change.
func (r *CriteriaRequest) Apply(c *filter.Criteria) error {
	selections := []struct {
		field  filter.Field
		values *[]string
	}{
		{filter.FieldBrand, r.Brands},
		{filter.FieldType, r.Types},
		{filter.FieldGear, r.Gears},
		{filter.FieldFuel, r.Fuels},
	}
	for _, s := range selections {
		field := s.field
		if err := patch.Apply(s.values, func(values []string) error {
			return c.Select(field, values...)
		}); err != nil {
			return err
		}
	}

	if err := patch.Apply(r.Seats, func(raw []string) error {
		bands := make([]vehicle.SeatBand, 0, len(raw))
		for _, s := range raw {
			band, err := vehicle.ParseSeatBand(s)
			if err != nil {
				return err
			}
			bands = append(bands, band)
		}
		return c.SelectCapacities(bands...)
	}); err != nil {
		return err
	}

	if r.ClearPrice {
		if err := c.SetPriceRange(0, math.Inf(1)); err != nil {
			return err
		}
	}
	if r.MinPrice != nil || r.MaxPrice != nil {
		cur := c.Price()
		if err := c.SetPriceRange(patch.Coalesce(r.MinPrice, cur.Min), patch.Coalesce(r.MaxPrice, cur.Max)); err != nil {
			return err
		}
	}

	if r.Pickup != nil || r.Dropoff != nil {
		c.SetLocations(patch.Coalesce(r.Pickup, c.Pickup()), patch.Coalesce(r.Dropoff, c.Dropoff()))
	}
	if r.SwapLocations {
		c.SwapLocations()
	}
	if r.OnlyAvailable != nil {
		c.SetOnlyAvailable(*r.OnlyAvailable)
	}

	if err := patch.Apply(r.Sort, func(s string) error {
		return c.SetSort(filter.SortKey(s))
	}); err != nil {
		return err
	}

	if r.Toggle != nil {
		field, err := filter.ParseField(r.Toggle.Field)
		if err != nil {
			return err
		}
		return c.Toggle(field, r.Toggle.Value)
	}
	return nil
}

// VehicleSearchQuery is the query string of a one-shot search. List values
// may be repeated or comma separated.
type VehicleSearchQuery struct {
	Brands        []string `form:"brand"`
	Types         []string `form:"type"`
	Gears         []string `form:"gear"`
	Fuels         []string `form:"fuel"`
	Seats         []string `form:"seats"`
	MinPrice      *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice      *float64 `form:"max_price" binding:"omitempty,min=0"`
	Pickup        string   `form:"pickup" binding:"max=200"`
	Dropoff       string   `form:"dropoff" binding:"max=200"`
	OnlyAvailable bool     `form:"only_available"`
	Sort          string   `form:"sort"`
	Offset        int      `form:"offset" binding:"omitempty,min=0"`
	Limit         int      `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *VehicleSearchQuery) Criteria() (filter.Criteria, error) {
	req := CriteriaRequest{
		Brands:   listOrNil(q.Brands),
		Types:    listOrNil(q.Types),
		Gears:    listOrNil(q.Gears),
		Fuels:    listOrNil(q.Fuels),
		Seats:    listOrNil(q.Seats),
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Pickup:   &q.Pickup,
		Dropoff:  &q.Dropoff,
	}
	if q.OnlyAvailable {
		req.OnlyAvailable = &q.OnlyAvailable
	}
	if q.Sort != "" {
		req.Sort = &q.Sort
	}

	c := filter.NewCriteria()
	if err := req.Apply(&c); err != nil {
		return filter.Criteria{}, err
	}
	return c, nil
}

func listOrNil(raw []string) *[]string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &out
}

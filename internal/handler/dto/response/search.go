package response

import (
	"math"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/usecase/catalog"
)

type CriteriaResponse struct {
	Brands        []string `json:"brands"`
	Types         []string `json:"types"`
	Gears         []string `json:"gears"`
	Fuels         []string `json:"fuels"`
	Seats         []string `json:"seats"`
	MinPrice      float64  `json:"min_price"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	Pickup        string   `json:"pickup"`
	Dropoff       string   `json:"dropoff"`
	OnlyAvailable bool     `json:"only_available"`
	Sort          string   `json:"sort"`
}

func FromCriteria(c filter.Criteria) CriteriaResponse {
	seats := make([]string, 0)
	for _, b := range c.Capacities() {
		seats = append(seats, b.String())
	}
	price := c.Price()
	res := CriteriaResponse{
		Brands:        nonNil(c.Selected(filter.FieldBrand)),
		Types:         nonNil(c.Selected(filter.FieldType)),
		Gears:         nonNil(c.Selected(filter.FieldGear)),
		Fuels:         nonNil(c.Selected(filter.FieldFuel)),
		Seats:         seats,
		MinPrice:      price.Min,
		Pickup:        c.Pickup(),
		Dropoff:       c.Dropoff(),
		OnlyAvailable: c.OnlyAvailable(),
		Sort:          string(c.Sort()),
	}
	if !math.IsInf(price.Max, 1) {
		hi := price.Max
		res.MaxPrice = &hi
	}
	return res
}

// SearchViewResponse is one page of a search session's visible list.
type SearchViewResponse struct {
	SessionID  string             `json:"session_id"`
	Generation uint64             `json:"generation"`
	Status     string             `json:"status"`
	Error      string             `json:"error,omitempty"`
	Pending    bool               `json:"pending"`
	ComputedAt int64              `json:"computed_at,omitempty"`
	Criteria   CriteriaResponse   `json:"criteria"`
	Items      []*VehicleResponse `json:"items"`
	Total      int                `json:"total"`
	Offset     int                `json:"offset"`
	NextLimit  int                `json:"next_limit"`
	HasMore    bool               `json:"has_more"`
}

func FromSearchView(v catalog.View, offset, limit int) *SearchViewResponse {
	if limit <= 0 {
		limit = filter.NextPageLimit(offset)
	}
	page := filter.Page(v.Vehicles, offset, limit)
	shown := offset + len(page)

	res := &SearchViewResponse{
		SessionID:  v.SessionID.String(),
		Generation: v.Generation,
		Status:     string(v.Status),
		Error:      v.Err,
		Pending:    v.Pending,
		Criteria:   FromCriteria(v.Criteria),
		Items:      FromVehicles(page),
		Total:      len(v.Vehicles),
		Offset:     offset,
		NextLimit:  filter.NextPageLimit(shown),
		HasMore:    shown < len(v.Vehicles),
	}
	if !v.ComputedAt.IsZero() {
		res.ComputedAt = v.ComputedAt.Unix()
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

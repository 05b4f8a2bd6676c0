package response

import (
	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/usecase/queries"
)

type VehicleResponse struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Model     string   `json:"model"`
	Year      int      `json:"year"`
	Type      string   `json:"type"`
	DailyRate float64  `json:"daily_rate"`
	Seats     int      `json:"seats"`
	Luggage   int      `json:"luggage"`
	Gear      string   `json:"gear"`
	Fuel      string   `json:"fuel"`
	Electric  bool     `json:"electric"`
	Locations []string `json:"locations"`
	Available bool     `json:"available"`
	Featured  bool     `json:"featured"`
	Rating    *float64 `json:"rating,omitempty"`
	Discount  float64  `json:"discount,omitempty"`
}

func FromVehicle(v *vehicle.Vehicle) *VehicleResponse {
	res := &VehicleResponse{
		ID:        v.ID().String(),
		Code:      v.Code(),
		Name:      v.Name(),
		Brand:     v.Brand(),
		Model:     v.Model(),
		Year:      v.Year(),
		Type:      v.Type(),
		DailyRate: v.DailyRate(),
		Seats:     v.Seats(),
		Luggage:   v.Luggage(),
		Gear:      v.Gear(),
		Fuel:      v.Fuel(),
		Electric:  v.Electric(),
		Locations: v.Locations().Names(),
		Available: v.Available(),
		Featured:  v.Featured(),
		Discount:  v.Discount(),
	}
	if rating, ok := v.Rating(); ok {
		res.Rating = &rating
	}
	return res
}

func FromVehicles(vs []*vehicle.Vehicle) []*VehicleResponse {
	res := make([]*VehicleResponse, len(vs))
	for i, v := range vs {
		res[i] = FromVehicle(v)
	}
	return res
}

type VehiclePageResponse struct {
	Items     []*VehicleResponse `json:"items"`
	Total     int                `json:"total"`
	Offset    int                `json:"offset"`
	Limit     int                `json:"limit"`
	NextLimit int                `json:"next_limit"`
	HasMore   bool               `json:"has_more"`
}

func FromVehiclePage(p *queries.VehiclePage) *VehiclePageResponse {
	return &VehiclePageResponse{
		Items:     FromVehicles(p.Vehicles),
		Total:     p.Total,
		Offset:    p.Offset,
		Limit:     p.Limit,
		NextLimit: p.NextLimit,
		HasMore:   p.HasMore,
	}
}

type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type FacetsResponse struct {
	Brands     []OptionResponse `json:"brands"`
	Types      []OptionResponse `json:"types"`
	Capacities []OptionResponse `json:"capacities"`
	PriceMin   float64          `json:"price_min"`
	PriceMax   float64          `json:"price_max"`
}

func FromFacets(f *filter.Facets) (*FacetsResponse, error) {
	res := &FacetsResponse{}
	if err := copyInto(res, f); err != nil {
		return nil, err
	}
	for _, opts := range []*[]OptionResponse{&res.Brands, &res.Types, &res.Capacities} {
		if *opts == nil {
			*opts = []OptionResponse{}
		}
	}
	return res, nil
}

type HighlightsResponse struct {
	Featured      []*VehicleResponse `json:"featured"`
	SpecialOffers []*VehicleResponse `json:"special_offers"`
}

func FromHighlights(h *queries.Highlights) *HighlightsResponse {
	return &HighlightsResponse{
		Featured:      FromVehicles(h.Featured),
		SpecialOffers: FromVehicles(h.SpecialOffers),
	}
}

//go:build unit || e2e

package builder

import (
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/ptr"

	"github.com/google/uuid"
)

type VehicleBuilder struct {
	ID        uuid.UUID
	Code      string
	Brand     string
	Model     string
	Year      int
	Type      string
	DailyRate *float64
	Seats     *int
	Luggage   *int
	Gear      string
	Fuel      *string
	Electric  bool
	Locations []string
	Available bool
	Featured  *bool
	Rating    *float64
	Discount  *float64
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		ID:        uuid.New(),
		Code:      "VW-GOLF-01",
		Brand:     "Volkswagen",
		Model:     "Golf",
		Year:      2022,
		Type:      "Compact",
		DailyRate: ptr.Of(45.0),
		Seats:     ptr.Of(5),
		Luggage:   ptr.Of(2),
		Gear:      "Manual",
		Fuel:      ptr.Of("Petrol"),
		Locations: []string{"Bremen", "Hamburg"},
		Available: true,
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) WithBrand(brand string) *VehicleBuilder {
	b.Brand = brand
	return b
}

func (b *VehicleBuilder) WithModel(model string) *VehicleBuilder {
	b.Model = model
	return b
}

func (b *VehicleBuilder) WithRate(rate float64) *VehicleBuilder {
	b.DailyRate = &rate
	return b
}

func (b *VehicleBuilder) WithoutRate() *VehicleBuilder {
	b.DailyRate = nil
	return b
}

func (b *VehicleBuilder) WithSeats(seats int) *VehicleBuilder {
	b.Seats = &seats
	return b
}

func (b *VehicleBuilder) WithLocations(locations ...string) *VehicleBuilder {
	b.Locations = locations
	return b
}

// Build methods
func (b *VehicleBuilder) BuildAttributes() vehicle.Attributes {
	return vehicle.Attributes{
		ID:        b.ID,
		Code:      b.Code,
		Brand:     b.Brand,
		Model:     b.Model,
		Year:      b.Year,
		Type:      b.Type,
		DailyRate: b.DailyRate,
		Seats:     b.Seats,
		Luggage:   b.Luggage,
		Gear:      b.Gear,
		Fuel:      b.Fuel,
		Electric:  b.Electric,
		Locations: b.Locations,
		Available: b.Available,
		Featured:  b.Featured,
		Rating:    b.Rating,
		Discount:  b.Discount,
	}
}

func (b *VehicleBuilder) BuildDomain() *vehicle.Vehicle {
	return vehicle.New(b.BuildAttributes())
}

// Catalog builds one vehicle per mutation, each from a fresh default builder.
func Catalog(mutations ...func(*VehicleBuilder)) []*vehicle.Vehicle {
	out := make([]*vehicle.Vehicle, 0, len(mutations))
	for _, m := range mutations {
		out = append(out, NewVehicleBuilder().With(m).BuildDomain())
	}
	return out
}

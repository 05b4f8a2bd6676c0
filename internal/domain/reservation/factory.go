package reservation

import (
	"time"

	"vehicle-rental/internal/domain/pricing"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock            clock.Clock
	Calculator       *pricing.Calculator
	Location         *time.Location
	FallbackLocation string
}

func NewFactory(clk clock.Clock, calculator *pricing.Calculator, loc *time.Location, fallbackLocation string) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	if calculator == nil {
		calculator = pricing.NewCalculator(pricing.NoTax{})
	}
	return &Factory{
		Clock:            clk,
		Calculator:       calculator,
		Location:         loc,
		FallbackLocation: fallbackLocation,
	}
}

// NewDraft starts a workflow at Billing. The rental form is prefilled from
// the search; blank locations default to the vehicle's first serviceable
// location, or the fallback location when it lists none.
func (f *Factory) NewDraft(v *vehicle.Vehicle, prefill RentalWindow) *Draft {
	defaultLocation := f.FallbackLocation
	if first, ok := v.Locations().First(); ok {
		defaultLocation = first.Name()
	}
	if prefill.PickupLocation == "" {
		prefill.PickupLocation = defaultLocation
	}
	if prefill.DropoffLocation == "" {
		prefill.DropoffLocation = defaultLocation
	}

	d := &Draft{
		id: uuid.New(),
		vehicle: VehicleSnapshot{
			ID:        v.ID(),
			Name:      v.Name(),
			DailyRate: v.DailyRate(),
			Locations: v.Locations().Names(),
		},
		state:      BillingState{},
		rental:     prefill,
		createdAt:  f.Clock.Now(),
		calculator: f.Calculator,
		location:   f.Location,
	}
	d.requote()
	return d
}

//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-rental/internal/domain/pricing"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/pkg/clock"
)

// DraftNow is the fixed "today" used by reservation tests.
var DraftNow = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	Now      time.Time
	Vehicle  *VehicleBuilder
	Tax      pricing.TaxPolicy
	Billing  reservation.BillingInfo
	Rental   reservation.RentalWindow
	Payment  reservation.PaymentDetails
	Consent  reservation.Consent
	Fallback string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Now:     DraftNow,
		Vehicle: NewVehicleBuilder().WithRate(40),
		Tax:     pricing.NoTax{},
		Billing: reservation.BillingInfo{
			Name:    "Erika Mustermann",
			Phone:   "+49 421 123456",
			Address: "Am Wall 1",
			Town:    "Bremen",
		},
		Rental: reservation.RentalWindow{
			PickupLocation:  "Bremen",
			PickupDate:      "2025-01-01",
			PickupTime:      "10:00",
			DropoffLocation: "Hamburg",
			DropoffDate:     "2025-01-03",
			DropoffTime:     "09:00",
		},
		Payment: reservation.PaymentDetails{
			Method: reservation.PaymentCard,
			Card: reservation.CardDetails{
				Number: "4111 1111 1111 1111",
				Holder: "Erika Mustermann",
				Expiry: "12/27",
				CVV:    "123",
			},
		},
		Consent:  reservation.Consent{Terms: true},
		Fallback: "Bremen",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Factory() *reservation.Factory {
	return reservation.NewFactory(clock.NewMockClock(b.Now), pricing.NewCalculator(b.Tax), time.UTC, b.Fallback)
}

// BuildAt walks a fresh draft through the workflow up to step, filling each
// form from the builder. It stops at the first failing transition.
func (b *ReservationBuilder) BuildAt(step reservation.Step) (*reservation.Draft, error) {
	d := b.Factory().NewDraft(b.Vehicle.BuildDomain(), reservation.RentalWindow{})
	for d.Step() < step {
		if err := b.fill(d); err != nil {
			return d, err
		}
		if _, err := d.Advance(b.Now); err != nil {
			return d, err
		}
	}
	if err := b.fill(d); err != nil {
		return d, err
	}
	return d, nil
}

func (b *ReservationBuilder) fill(d *reservation.Draft) error {
	switch d.Step() {
	case reservation.StepBilling:
		return d.UpdateBilling(b.Billing)
	case reservation.StepRental:
		return d.UpdateRental(b.Rental)
	case reservation.StepPayment:
		return d.UpdatePayment(b.Payment)
	case reservation.StepConfirmation:
		return d.UpdateConsent(b.Consent)
	}
	return nil
}

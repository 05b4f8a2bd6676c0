package reservation

import (
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/pricing"

	"github.com/google/uuid"
)

// Draft is the in-progress reservation. It is not safe for concurrent use;
// its owner serializes access.
type Draft struct {
	id        uuid.UUID
	vehicle   VehicleSnapshot
	state     State
	billing   BillingInfo
	rental    RentalWindow
	payment   PaymentDetails
	consent   Consent
	quote     pricing.Quote
	createdAt time.Time

	calculator *pricing.Calculator
	location   *time.Location
}

func (d *Draft) ID() uuid.UUID            { return d.id }
func (d *Draft) Vehicle() VehicleSnapshot { return d.vehicle }
func (d *Draft) State() State             { return d.state }
func (d *Draft) Step() Step               { return d.state.Step() }
func (d *Draft) Billing() BillingInfo     { return d.billing }
func (d *Draft) Rental() RentalWindow     { return d.rental }
func (d *Draft) Payment() PaymentDetails  { return d.payment }
func (d *Draft) Consent() Consent         { return d.consent }
func (d *Draft) Quote() pricing.Quote     { return d.quote }
func (d *Draft) CreatedAt() time.Time     { return d.createdAt }

func (d *Draft) requireStep(step Step) error {
	if d.state.Step() != step {
		return ErrStepNotActive
	}
	return nil
}

func (d *Draft) requote() {
	pickup, dropoff := d.rental.Instants(d.location)
	d.quote = d.calculator.Quote(pickup, dropoff, d.vehicle.DailyRate)
}

func (d *Draft) UpdateBilling(b BillingInfo) error {
	if err := d.requireStep(StepBilling); err != nil {
		return err
	}
	d.billing = b.normalized()
	return nil
}

// UpdateRental replaces the rental form and re-quotes. Incomplete or
// inconsistent dates are accepted here and quoted as a single day.
func (d *Draft) UpdateRental(w RentalWindow) error {
	if err := d.requireStep(StepRental); err != nil {
		return err
	}
	d.rental = w
	d.requote()
	return nil
}

func (d *Draft) UpdatePayment(p PaymentDetails) error {
	if err := d.requireStep(StepPayment); err != nil {
		return err
	}
	if p.Method != "" && !p.Method.IsValid() {
		return ErrUnknownPaymentMethod
	}
	d.payment = p
	return nil
}

// SelectPaymentMethod switches the method and keeps previously typed fields.
func (d *Draft) SelectPaymentMethod(m PaymentMethod) error {
	if err := d.requireStep(StepPayment); err != nil {
		return err
	}
	if !m.IsValid() {
		return ErrUnknownPaymentMethod
	}
	d.payment.Method = m
	return nil
}

func (d *Draft) UpdateConsent(c Consent) error {
	if err := d.requireStep(StepConfirmation); err != nil {
		return err
	}
	d.consent = c
	return nil
}

// Advance validates the current step and moves to the next one. On a
// validation failure the state is unchanged.
func (d *Draft) Advance(now time.Time) (State, error) {
	switch s := d.state.(type) {
	case BillingState:
		if err := newValidationError(StepBilling, d.billing.Validate()); err != nil {
			return d.state, err
		}
		d.state = RentalState{Billing: d.billing}
		d.requote()
	case RentalState:
		window, fe := d.rental.Validate(now, d.location)
		if err := newValidationError(StepRental, fe); err != nil {
			return d.state, err
		}
		d.state = PaymentState{Billing: s.Billing, Window: window}
		d.requote()
	case PaymentState:
		if err := newValidationError(StepPayment, d.payment.Validate()); err != nil {
			return d.state, err
		}
		d.state = ConfirmationState{Billing: s.Billing, Window: s.Window, Payment: d.payment.Selected()}
	case ConfirmationState:
		return d.state, ErrNoNextStep
	}
	return d.state, nil
}

// Back moves to any earlier step. Form data is kept.
func (d *Draft) Back(to Step) (State, error) {
	if !to.IsValid() || to >= d.state.Step() {
		return d.state, ErrCannotGoBack
	}
	d.state = rewind(d.state, to)
	if to == StepRental {
		d.requote()
	}
	return d.state, nil
}

// Payload builds the booking submission. It requires the confirmation step,
// an authenticated user and accepted terms; the draft is not modified.
func (d *Draft) Payload(userID uuid.UUID) (booking.Payload, error) {
	conf, ok := d.state.(ConfirmationState)
	if !ok {
		return booking.Payload{}, ErrNotReadyToSubmit
	}
	if !d.consent.Terms {
		return booking.Payload{}, newValidationError(StepConfirmation, FieldErrors{"terms": msgTerms})
	}
	if userID == uuid.Nil {
		return booking.Payload{}, ErrIdentityRequired
	}

	pickup, dropoff := conf.Window.Pickup(), conf.Window.Dropoff()
	quote := d.calculator.Quote(&pickup, &dropoff, d.vehicle.DailyRate)

	return booking.Payload{
		DraftID:         d.id,
		VehicleID:       d.vehicle.ID,
		UserID:          userID,
		PickupLocation:  conf.Window.PickupLocation(),
		DropoffLocation: conf.Window.DropoffLocation(),
		Pickup:          pickup,
		Dropoff:         dropoff,
		Total:           quote.Total,
		Status:          booking.StatusConfirmed,
	}, nil
}

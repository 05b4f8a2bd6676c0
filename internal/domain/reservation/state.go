package reservation

// State is the tagged workflow state. Each state carries the data validated by
// the steps before it, so a ConfirmationState always holds a valid Window and
// complete payment details.
type State interface {
	Step() Step
	isState()
}

type BillingState struct{}

type RentalState struct {
	Billing BillingInfo
}

type PaymentState struct {
	Billing BillingInfo
	Window  Window
}

type ConfirmationState struct {
	Billing BillingInfo
	Window  Window
	Payment PaymentDetails
}

func (BillingState) Step() Step      { return StepBilling }
func (RentalState) Step() Step       { return StepRental }
func (PaymentState) Step() Step      { return StepPayment }
func (ConfirmationState) Step() Step { return StepConfirmation }

func (BillingState) isState()      {}
func (RentalState) isState()       {}
func (PaymentState) isState()      {}
func (ConfirmationState) isState() {}

// rewind returns the state for an earlier step, keeping what the current
// state accumulated for the steps before it.
func rewind(cur State, to Step) State {
	var (
		billing BillingInfo
		window  Window
	)
	switch s := cur.(type) {
	case RentalState:
		billing = s.Billing
	case PaymentState:
		billing, window = s.Billing, s.Window
	case ConfirmationState:
		billing, window = s.Billing, s.Window
	}

	switch to {
	case StepRental:
		return RentalState{Billing: billing}
	case StepPayment:
		return PaymentState{Billing: billing, Window: window}
	default:
		return BillingState{}
	}
}

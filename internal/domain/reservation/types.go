package reservation

import (
	"fmt"
	"strings"
)

// Step is the position of a draft in the workflow. Order is significant.
type Step int

const (
	StepBilling Step = iota + 1
	StepRental
	StepPayment
	StepConfirmation
)

func ParseStep(s string) (Step, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "billing":
		return StepBilling, nil
	case "rental":
		return StepRental, nil
	case "payment":
		return StepPayment, nil
	case "confirmation":
		return StepConfirmation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}
}

func (s Step) String() string {
	switch s {
	case StepBilling:
		return "billing"
	case StepRental:
		return "rental"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

func (s Step) IsValid() bool {
	return s >= StepBilling && s <= StepConfirmation
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentCrypto PaymentMethod = "crypto"
)

// ParsePaymentMethod also accepts the legacy form values "credit" and "bitcoin".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "card", "credit":
		return PaymentCard, nil
	case "paypal":
		return PaymentPayPal, nil
	case "crypto", "bitcoin":
		return PaymentCrypto, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentPayPal, PaymentCrypto:
		return true
	default:
		return false
	}
}

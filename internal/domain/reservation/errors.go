package reservation

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation           = errors.New("reservation validation failed")
	ErrStepNotActive        = errors.New("step is not active")
	ErrCannotGoBack         = errors.New("can only go back to an earlier step")
	ErrNoNextStep           = errors.New("confirmation is the last step")
	ErrNotReadyToSubmit     = errors.New("draft has not reached confirmation")
	ErrIdentityRequired     = errors.New("an authenticated user is required")
	ErrUnknownStep          = errors.New("unknown step")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// ValidationError blocks a transition. It matches ErrValidation.
type ValidationError struct {
	Step   Step
	Fields FieldErrors
}

func newValidationError(step Step, fields FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Step: step, Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return e.Step.String() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

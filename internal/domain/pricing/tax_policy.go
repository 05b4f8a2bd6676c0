package pricing

import "errors"

var ErrInvalidTaxPercent = errors.New("tax percent must be between 0 and 100")

type TaxPolicy interface {
	Tax(subtotal float64) float64
}

type NoTax struct{}

func (NoTax) Tax(float64) float64 { return 0 }

type PercentTax struct {
	percent float64
}

func NewPercentTax(percent float64) (PercentTax, error) {
	if percent < 0 || percent > 100 {
		return PercentTax{}, ErrInvalidTaxPercent
	}
	return PercentTax{percent: percent}, nil
}

func (p PercentTax) Tax(subtotal float64) float64 {
	return subtotal * p.percent / 100
}

func (p PercentTax) Percent() float64 { return p.percent }

// PolicyFor maps the configured percentage to a policy; zero means no tax.
func PolicyFor(percent float64) (TaxPolicy, error) {
	if percent == 0 {
		return NoTax{}, nil
	}
	return NewPercentTax(percent)
}

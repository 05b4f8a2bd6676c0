package review

import "vehicle-rental/internal/pkg/errs"

var ErrInvalidStars = errs.New("stars must be between 1 and 5")

const (
	MinStars = 1
	MaxStars = 5
)

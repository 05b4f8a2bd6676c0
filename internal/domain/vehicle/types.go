package vehicle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSeatBand = errors.New("invalid seat band")

// SeatBand groups seat counts for the capacity filter.
type SeatBand int

const (
	SeatsUpTo2  SeatBand = 2
	Seats3To4   SeatBand = 4
	Seats5To6   SeatBand = 6
	Seats8AndUp SeatBand = 8
)

var SeatBands = []SeatBand{SeatsUpTo2, Seats3To4, Seats5To6, Seats8AndUp}

func ParseSeatBand(s string) (SeatBand, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "+"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeatBand, s)
	}
	b := SeatBand(n)
	if !b.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeatBand, s)
	}
	return b, nil
}

func (b SeatBand) IsValid() bool {
	switch b {
	case SeatsUpTo2, Seats3To4, Seats5To6, Seats8AndUp:
		return true
	default:
		return false
	}
}

// Contains places a missing seat count (zero) in the smallest band.
func (b SeatBand) Contains(seats int) bool {
	switch b {
	case SeatsUpTo2:
		return seats <= 2
	case Seats3To4:
		return seats >= 3 && seats <= 4
	case Seats5To6:
		return seats >= 5 && seats <= 6
	case Seats8AndUp:
		return seats >= 8
	default:
		return false
	}
}

func (b SeatBand) String() string {
	if b == Seats8AndUp {
		return "8+"
	}
	return strconv.Itoa(int(b))
}

// Hints are coarse filters the catalog collaborator may apply server-side.
// They only ever narrow to a superset of what the engine keeps.
type Hints struct {
	Brand    string
	Type     string
	Location string
	MinPrice *float64
	MaxPrice *float64
}

// LocationKey is the location hint without coordinates, in comparison form.
func (h Hints) LocationKey() string {
	loc, ok := ParseLocation(h.Location)
	if !ok {
		return ""
	}
	return loc.Key()
}

func (h Hints) IsZero() bool {
	return h.Brand == "" && h.Type == "" && h.Location == "" && h.MinPrice == nil && h.MaxPrice == nil
}

// Key identifies the hint set for caching.
func (h Hints) Key() string {
	f := func(p *float64) string {
		if p == nil {
			return "-"
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}
	return strings.Join([]string{
		strings.ToLower(h.Brand),
		strings.ToLower(h.Type),
		h.LocationKey(),
		f(h.MinPrice),
		f(h.MaxPrice),
	}, "|")
}

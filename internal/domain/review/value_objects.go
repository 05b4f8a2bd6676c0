package review

import "math"

type Stars struct {
	value int
}

func NewStars(v int) (Stars, error) {
	if v < MinStars || v > MaxStars {
		return Stars{}, ErrInvalidStars
	}
	return Stars{value: v}, nil
}

func (s Stars) Value() int { return s.value }

// Summary is the rating shown next to a vehicle. Average is rounded to one
// decimal and zero when there are no reviews.
type Summary struct {
	Average float64
	Count   int
}

func Summarize(reviews []*Review) Summary {
	if len(reviews) == 0 {
		return Summary{}
	}
	total := 0
	for _, r := range reviews {
		total += r.stars.value
	}
	avg := float64(total) / float64(len(reviews))
	return Summary{
		Average: math.Round(avg*10) / 10,
		Count:   len(reviews),
	}
}

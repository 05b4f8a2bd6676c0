package review

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of one vehicle. Reviews are read-only here;
// they are written by the feedback flow that owns the table.
type Review struct {
	id        uuid.UUID
	vehicleID uuid.UUID
	author    string
	text      string
	stars     Stars
	date      time.Time
	createdAt time.Time
}

// Reconstruct rebuilds a stored review. date is truncated to the calendar day.
func Reconstruct(id, vehicleID uuid.UUID, author, text string, stars int, date, createdAt time.Time) (*Review, error) {
	s, err := NewStars(stars)
	if err != nil {
		return nil, err
	}
	y, m, d := date.Date()
	return &Review{
		id:        id,
		vehicleID: vehicleID,
		author:    strings.TrimSpace(author),
		text:      strings.TrimSpace(text),
		stars:     s,
		date:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		createdAt: createdAt,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) VehicleID() uuid.UUID { return r.vehicleID }
func (r *Review) Author() string       { return r.author }
func (r *Review) Text() string         { return r.text }
func (r *Review) Stars() Stars         { return r.stars }
func (r *Review) Date() time.Time      { return r.date }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

// Initial is the avatar letter; "?" for anonymous reviews.
func (r *Review) Initial() string {
	for _, c := range r.author {
		return strings.ToUpper(string(c))
	}
	return "?"
}

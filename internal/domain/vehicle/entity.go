package vehicle

import (
	"strings"

	"vehicle-rental/internal/pkg/ptr"

	"github.com/google/uuid"
)

const UnknownFuel = "unknown"

// Attributes is a catalog record as delivered by the catalog collaborator.
// Optional fields are pointers; New fills in defaults for the missing ones.
type Attributes struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Type      string    `json:"type"`
	DailyRate *float64  `json:"dailyRate,omitempty"`
	Seats     *int      `json:"seats,omitempty"`
	Luggage   *int      `json:"luggage,omitempty"`
	Gear      string    `json:"gear"`
	Fuel      *string   `json:"fuel,omitempty"`
	Electric  bool      `json:"electric"`
	Locations []string  `json:"locations"`
	Available bool      `json:"available"`
	Featured  *bool     `json:"featured,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	Discount  *float64  `json:"discount,omitempty"`
}

// Vehicle is immutable once built. Sparse records never fail construction.
type Vehicle struct {
	id        uuid.UUID
	code      string
	brand     string
	model     string
	year      int
	kind      string
	dailyRate float64
	seats     int
	luggage   int
	gear      string
	fuel      string
	electric  bool
	locations LocationSet
	available bool
	featured  bool
	rating    *float64
	discount  float64
}

func New(a Attributes) *Vehicle {
	rate := ptr.Deref(a.DailyRate, 0)
	if rate < 0 {
		rate = 0
	}

	fuel := strings.TrimSpace(ptr.Deref(a.Fuel, ""))
	if fuel == "" {
		fuel = UnknownFuel
	}

	discount := ptr.Deref(a.Discount, 0)
	if discount < 0 {
		discount = 0
	}

	return &Vehicle{
		id:        a.ID,
		code:      strings.TrimSpace(a.Code),
		brand:     strings.TrimSpace(a.Brand),
		model:     strings.TrimSpace(a.Model),
		year:      a.Year,
		kind:      strings.TrimSpace(a.Type),
		dailyRate: rate,
		seats:     max(ptr.Deref(a.Seats, 0), 0),
		luggage:   max(ptr.Deref(a.Luggage, 0), 0),
		gear:      strings.TrimSpace(a.Gear),
		fuel:      fuel,
		electric:  a.Electric,
		locations: NewLocationSet(a.Locations...),
		available: a.Available,
		featured:  ptr.Deref(a.Featured, false),
		rating:    a.Rating,
		discount:  discount,
	}
}

func (v *Vehicle) ID() uuid.UUID          { return v.id }
func (v *Vehicle) Code() string           { return v.code }
func (v *Vehicle) Brand() string          { return v.brand }
func (v *Vehicle) Model() string          { return v.model }
func (v *Vehicle) Year() int              { return v.year }
func (v *Vehicle) Type() string           { return v.kind }
func (v *Vehicle) DailyRate() float64     { return v.dailyRate }
func (v *Vehicle) Seats() int             { return v.seats }
func (v *Vehicle) Luggage() int           { return v.luggage }
func (v *Vehicle) Gear() string           { return v.gear }
func (v *Vehicle) Fuel() string           { return v.fuel }
func (v *Vehicle) Electric() bool         { return v.electric }
func (v *Vehicle) Locations() LocationSet { return v.locations }
func (v *Vehicle) Available() bool        { return v.available }
func (v *Vehicle) Featured() bool         { return v.featured }
func (v *Vehicle) Discount() float64      { return v.discount }

func (v *Vehicle) Rating() (float64, bool) {
	if v.rating == nil {
		return 0, false
	}
	return *v.rating, true
}

// Name is the display name used in listings and booking summaries.
func (v *Vehicle) Name() string {
	return strings.TrimSpace(v.brand + " " + v.model)
}

// Attributes returns the record with defaults applied, suitable for caching.
func (v *Vehicle) Attributes() Attributes {
	a := Attributes{
		ID:        v.id,
		Code:      v.code,
		Brand:     v.brand,
		Model:     v.model,
		Year:      v.year,
		Type:      v.kind,
		DailyRate: ptr.Of(v.dailyRate),
		Seats:     ptr.Of(v.seats),
		Luggage:   ptr.Of(v.luggage),
		Gear:      v.gear,
		Fuel:      ptr.Of(v.fuel),
		Electric:  v.electric,
		Locations: v.locations.Raw(),
		Available: v.available,
		Featured:  ptr.Of(v.featured),
		Discount:  ptr.Of(v.discount),
	}
	if v.rating != nil {
		a.Rating = ptr.Of(*v.rating)
	}
	return a
}

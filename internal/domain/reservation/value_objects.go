package reservation

import (
	"strings"
	"time"

	"vehicle-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	msgRequired     = "is required"
	msgInvalidDate  = "must be a date (YYYY-MM-DD)"
	msgInvalidTime  = "must be a time (HH:MM)"
	msgPastPickup   = "must not be in the past"
	msgDropoffOrder = "must be after pickup"
	msgTerms        = "must be accepted"
)

type BillingInfo struct {
	Name    string
	Phone   string
	Address string
	Town    string
}

func (b BillingInfo) normalized() BillingInfo {
	return BillingInfo{
		Name:    strings.TrimSpace(b.Name),
		Phone:   strings.TrimSpace(b.Phone),
		Address: strings.TrimSpace(b.Address),
		Town:    strings.TrimSpace(b.Town),
	}
}

func (b BillingInfo) Validate() FieldErrors {
	fe := FieldErrors{}
	n := b.normalized()
	if n.Name == "" {
		fe.add("name", msgRequired)
	}
	if n.Phone == "" {
		fe.add("phone", msgRequired)
	}
	if n.Address == "" {
		fe.add("address", msgRequired)
	}
	if n.Town == "" {
		fe.add("town", msgRequired)
	}
	return fe
}

// RentalWindow holds the rental form as entered. Window is its validated form.
type RentalWindow struct {
	PickupLocation  string
	PickupDate      string
	PickupTime      string
	DropoffLocation string
	DropoffDate     string
	DropoffTime     string
}

func parseInstant(date, clockTime string, loc *time.Location) (*time.Time, bool) {
	date, clockTime = strings.TrimSpace(date), strings.TrimSpace(clockTime)
	if date == "" || clockTime == "" {
		return nil, false
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clockTime, loc)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// Instants parses the window leniently for quoting; unparseable ends are nil.
func (w RentalWindow) Instants(loc *time.Location) (pickup, dropoff *time.Time) {
	pickup, _ = parseInstant(w.PickupDate, w.PickupTime, loc)
	dropoff, _ = parseInstant(w.DropoffDate, w.DropoffTime, loc)
	return pickup, dropoff
}

// Validate checks the window against now. Pickup is compared at date
// granularity so any time today is accepted. Dates are never adjusted.
func (w RentalWindow) Validate(now time.Time, loc *time.Location) (Window, FieldErrors) {
	fe := FieldErrors{}

	required := []struct{ field, value string }{
		{"pickupLocation", w.PickupLocation},
		{"pickupDate", w.PickupDate},
		{"pickupTime", w.PickupTime},
		{"dropoffLocation", w.DropoffLocation},
		{"dropoffDate", w.DropoffDate},
		{"dropoffTime", w.DropoffTime},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fe.add(r.field, msgRequired)
		}
	}

	pickupDate, errPD := time.ParseInLocation(DateLayout, strings.TrimSpace(w.PickupDate), loc)
	if _, ok := fe["pickupDate"]; !ok && errPD != nil {
		fe.add("pickupDate", msgInvalidDate)
	}
	if _, ok := fe["dropoffDate"]; !ok {
		if _, err := time.ParseInLocation(DateLayout, strings.TrimSpace(w.DropoffDate), loc); err != nil {
			fe.add("dropoffDate", msgInvalidDate)
		}
	}
	for _, f := range []struct{ field, value string }{{"pickupTime", w.PickupTime}, {"dropoffTime", w.DropoffTime}} {
		if _, ok := fe[f.field]; ok {
			continue
		}
		if _, err := time.Parse(TimeLayout, strings.TrimSpace(f.value)); err != nil {
			fe.add(f.field, msgInvalidTime)
		}
	}

	if errPD == nil && pickupDate.Before(clock.StartOfDay(now.In(loc))) {
		fe.add("pickupDate", msgPastPickup)
	}

	pickup, pOK := parseInstant(w.PickupDate, w.PickupTime, loc)
	dropoff, dOK := parseInstant(w.DropoffDate, w.DropoffTime, loc)
	if pOK && dOK && !dropoff.After(*pickup) {
		fe.add("dropoffDate", msgDropoffOrder)
	}

	if len(fe) > 0 {
		return Window{}, fe
	}
	return Window{
		pickupLocation:  strings.TrimSpace(w.PickupLocation),
		dropoffLocation: strings.TrimSpace(w.DropoffLocation),
		pickup:          *pickup,
		dropoff:         *dropoff,
	}, fe
}

// Window is a rental window that passed validation: both ends present and
// dropoff strictly after pickup.
type Window struct {
	pickupLocation  string
	dropoffLocation string
	pickup          time.Time
	dropoff         time.Time
}

func (w Window) PickupLocation() string  { return w.pickupLocation }
func (w Window) DropoffLocation() string { return w.dropoffLocation }
func (w Window) Pickup() time.Time       { return w.pickup }
func (w Window) Dropoff() time.Time      { return w.dropoff }

type CardDetails struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

type PayPalDetails struct {
	Email string
}

type CryptoDetails struct {
	WalletAddress string
}

// PaymentDetails carries one field group per method; only the group of the
// selected Method is required and kept.
type PaymentDetails struct {
	Method PaymentMethod
	Card   CardDetails
	PayPal PayPalDetails
	Crypto CryptoDetails
}

func (p PaymentDetails) Validate() FieldErrors {
	fe := FieldErrors{}
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	switch p.Method {
	case PaymentCard:
		if blank(p.Card.Number) {
			fe.add("cardNumber", msgRequired)
		}
		if blank(p.Card.Holder) {
			fe.add("cardHolder", msgRequired)
		}
		if blank(p.Card.Expiry) {
			fe.add("cardExpiry", msgRequired)
		}
		if blank(p.Card.CVV) {
			fe.add("cardCvv", msgRequired)
		}
	case PaymentPayPal:
		if blank(p.PayPal.Email) {
			fe.add("paypalEmail", msgRequired)
		}
	case PaymentCrypto:
		if blank(p.Crypto.WalletAddress) {
			fe.add("walletAddress", msgRequired)
		}
	default:
		fe.add("paymentMethod", msgRequired)
	}
	return fe
}

// Selected drops the field groups of the methods that were not chosen.
func (p PaymentDetails) Selected() PaymentDetails {
	out := PaymentDetails{Method: p.Method}
	switch p.Method {
	case PaymentCard:
		out.Card = p.Card
	case PaymentPayPal:
		out.PayPal = p.PayPal
	case PaymentCrypto:
		out.Crypto = p.Crypto
	}
	return out
}

// MaskedCardNumber keeps the last four digits.
func (c CardDetails) MaskedCardNumber() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.Number)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

type Consent struct {
	Terms     bool
	Marketing bool
}

// VehicleSnapshot is the part of the vehicle a draft needs to price and book.
type VehicleSnapshot struct {
	ID        uuid.UUID
	Name      string
	DailyRate float64
	Locations []string
}

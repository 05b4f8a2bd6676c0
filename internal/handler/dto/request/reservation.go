package request

import (
	"vehicle-rental/internal/domain/reservation"

	"github.com/google/uuid"
)

type StartReservationRequest struct {
	VehicleID uuid.UUID     `json:"vehicle_id" binding:"required"`
	Rental    RentalRequest `json:"rental"`
}

type BillingRequest struct {
	Name    string `json:"name" binding:"max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=300"`
	Town    string `json:"town" binding:"max=200"`
}

func (r *BillingRequest) ToDomain() reservation.BillingInfo {
	return reservation.BillingInfo{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
		Town:    r.Town,
	}
}

// RentalRequest holds dates as YYYY-MM-DD and times as HH:MM.
type RentalRequest struct {
	PickupLocation  string `json:"pickup_location" binding:"max=200"`
	PickupDate      string `json:"pickup_date"`
	PickupTime      string `json:"pickup_time"`
	DropoffLocation string `json:"dropoff_location" binding:"max=200"`
	DropoffDate     string `json:"dropoff_date"`
	DropoffTime     string `json:"dropoff_time"`
}

func (r *RentalRequest) ToDomain() reservation.RentalWindow {
	return reservation.RentalWindow{
		PickupLocation:  r.PickupLocation,
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		DropoffLocation: r.DropoffLocation,
		DropoffDate:     r.DropoffDate,
		DropoffTime:     r.DropoffTime,
	}
}

type PaymentRequest struct {
	Method        string `json:"method"`
	CardNumber    string `json:"card_number" binding:"max=32"`
	CardHolder    string `json:"card_holder" binding:"max=200"`
	CardExpiry    string `json:"card_expiry" binding:"max=7"`
	CardCVV       string `json:"card_cvv" binding:"max=4"`
	PayPalEmail   string `json:"paypal_email" binding:"omitempty,email"`
	WalletAddress string `json:"wallet_address" binding:"max=128"`
}

// ToDomain leaves Method empty when none was sent so the draft keeps its
// current selection.
func (r *PaymentRequest) ToDomain() (reservation.PaymentDetails, error) {
	p := reservation.PaymentDetails{
		Card: reservation.CardDetails{
			Number: r.CardNumber,
			Holder: r.CardHolder,
			Expiry: r.CardExpiry,
			CVV:    r.CardCVV,
		},
		PayPal: reservation.PayPalDetails{Email: r.PayPalEmail},
		Crypto: reservation.CryptoDetails{WalletAddress: r.WalletAddress},
	}
	if r.Method != "" {
		m, err := reservation.ParsePaymentMethod(r.Method)
		if err != nil {
			return reservation.PaymentDetails{}, err
		}
		p.Method = m
	}
	return p, nil
}

type ConsentRequest struct {
	Terms     bool `json:"terms"`
	Marketing bool `json:"marketing"`
}

func (r *ConsentRequest) ToDomain() reservation.Consent {
	return reservation.Consent{Terms: r.Terms, Marketing: r.Marketing}
}

type BackRequest struct {
	Step string `json:"step" binding:"required"`
}

func (r *BackRequest) ToDomain() (reservation.Step, error) {
	return reservation.ParseStep(r.Step)
}

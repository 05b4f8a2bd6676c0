package response

import (
	"vehicle-rental/internal/domain/pricing"
	"vehicle-rental/internal/usecase/commands"
)

type DraftVehicleResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	DailyRate float64  `json:"daily_rate"`
	Locations []string `json:"locations"`
}

type BillingResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Town    string `json:"town"`
}

type RentalResponse struct {
	PickupLocation  string `json:"pickup_location"`
	PickupDate      string `json:"pickup_date"`
	PickupTime      string `json:"pickup_time"`
	DropoffLocation string `json:"dropoff_location"`
	DropoffDate     string `json:"dropoff_date"`
	DropoffTime     string `json:"dropoff_time"`
}

// PaymentResponse never carries the full card number or the CVV.
type PaymentResponse struct {
	Method        string `json:"method,omitempty"`
	CardNumber    string `json:"card_number,omitempty"`
	CardHolder    string `json:"card_holder,omitempty"`
	CardExpiry    string `json:"card_expiry,omitempty"`
	PayPalEmail   string `json:"paypal_email,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

type ConsentResponse struct {
	Terms     bool `json:"terms"`
	Marketing bool `json:"marketing"`
}

type QuoteResponse struct {
	Days      int     `json:"days"`
	DailyRate float64 `json:"daily_rate"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	Display   string  `json:"display"`
}

type DraftResponse struct {
	ID         string               `json:"id"`
	Step       string               `json:"step"`
	Vehicle    DraftVehicleResponse `json:"vehicle"`
	Billing    BillingResponse      `json:"billing"`
	Rental     RentalResponse       `json:"rental"`
	Payment    PaymentResponse      `json:"payment"`
	Consent    ConsentResponse      `json:"consent"`
	Quote      QuoteResponse        `json:"quote"`
	Submitting bool                 `json:"submitting"`
	CreatedAt  int64                `json:"created_at"`
	UpdatedAt  int64                `json:"updated_at"`
}

func FromDraftView(v *commands.DraftView) *DraftResponse {
	payment := v.Payment.Selected()
	return &DraftResponse{
		ID:   v.ID.String(),
		Step: v.Step.String(),
		Vehicle: DraftVehicleResponse{
			ID:        v.Vehicle.ID.String(),
			Name:      v.Vehicle.Name,
			DailyRate: v.Vehicle.DailyRate,
			Locations: nonNil(v.Vehicle.Locations),
		},
		Billing: BillingResponse(v.Billing),
		Rental:  RentalResponse(v.Rental),
		Payment: PaymentResponse{
			Method:        payment.Method.String(),
			CardNumber:    payment.Card.MaskedCardNumber(),
			CardHolder:    payment.Card.Holder,
			CardExpiry:    payment.Card.Expiry,
			PayPalEmail:   payment.PayPal.Email,
			WalletAddress: payment.Crypto.WalletAddress,
		},
		Consent: ConsentResponse(v.Consent),
		Quote: QuoteResponse{
			Days:      v.Quote.Days,
			DailyRate: v.Quote.DailyRate,
			Subtotal:  v.Quote.Subtotal,
			Tax:       v.Quote.Tax,
			Total:     v.Quote.Total,
			Display:   pricing.Format(v.Quote.Total),
		},
		Submitting: v.Submitting,
		CreatedAt:  v.CreatedAt.Unix(),
		UpdatedAt:  v.UpdatedAt.Unix(),
	}
}

type SubmitResponse struct {
	DraftID string           `json:"draft_id"`
	Booking *BookingResponse `json:"booking"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		DraftID: r.DraftID.String(),
		Booking: FromBooking(r.Booking),
	}
}

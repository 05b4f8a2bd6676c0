package response

import (
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/usecase/queries"
)

type BookingResponse struct {
	ID              string  `json:"id"`
	DraftID         string  `json:"draft_id"`
	VehicleID       string  `json:"vehicle_id"`
	UserID          string  `json:"user_id"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	Pickup          string  `json:"pickup"`
	Dropoff         string  `json:"dropoff"`
	Total           float64 `json:"total"`
	Status          string  `json:"status"`
	CreatedAt       int64   `json:"created_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID().String(),
		DraftID:         b.DraftID().String(),
		VehicleID:       b.VehicleID().String(),
		UserID:          b.UserID().String(),
		PickupLocation:  b.PickupLocation(),
		DropoffLocation: b.DropoffLocation(),
		Pickup:          b.Pickup().UTC().Format(time.RFC3339),
		Dropoff:         b.Dropoff().UTC().Format(time.RFC3339),
		Total:           b.Total(),
		Status:          b.Status().String(),
		CreatedAt:       b.CreatedAt().Unix(),
	}
}

type BookingListItemResponse struct {
	ID              string  `json:"id"`
	VehicleID       string  `json:"vehicle_id"`
	VehicleName     string  `json:"vehicle_name"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	Pickup          string  `json:"pickup"`
	Dropoff         string  `json:"dropoff"`
	Total           float64 `json:"total"`
	Status          string  `json:"status"`
	CreatedAt       int64   `json:"created_at"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]*BookingListItemResponse, len(items))}
	for i, it := range items {
		res.Items[i] = &BookingListItemResponse{}
		if err := copyInto(res.Items[i], it); err != nil {
			return nil, err
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

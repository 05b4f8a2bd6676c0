package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPayload = errors.New("invalid booking payload")

// Payload is what the reservation workflow hands to the booking collaborator.
type Payload struct {
	DraftID         uuid.UUID
	VehicleID       uuid.UUID
	UserID          uuid.UUID
	PickupLocation  string
	DropoffLocation string
	Pickup          time.Time
	Dropoff         time.Time
	Total           float64
	Status          Status
}

func (p Payload) Validate() error {
	switch {
	case p.VehicleID == uuid.Nil, p.UserID == uuid.Nil:
		return ErrInvalidPayload
	case p.PickupLocation == "", p.DropoffLocation == "":
		return ErrInvalidPayload
	case !p.Dropoff.After(p.Pickup):
		return ErrInvalidPayload
	case p.Total < 0, !p.Status.IsValid():
		return ErrInvalidPayload
	}
	return nil
}

// PickupISO8601 and DropoffISO8601 are the wire representation of the window.
func (p Payload) PickupISO8601() string  { return p.Pickup.Format(time.RFC3339) }
func (p Payload) DropoffISO8601() string { return p.Dropoff.Format(time.RFC3339) }

// Booking is the persisted result. Only the booking collaborator creates one.
type Booking struct {
	id              uuid.UUID
	draftID         uuid.UUID
	vehicleID       uuid.UUID
	userID          uuid.UUID
	pickupLocation  string
	dropoffLocation string
	pickup          time.Time
	dropoff         time.Time
	total           float64
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func Reconstruct(
	id, draftID, vehicleID, userID uuid.UUID,
	pickupLocation, dropoffLocation string,
	pickup, dropoff time.Time,
	total float64,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		draftID:         draftID,
		vehicleID:       vehicleID,
		userID:          userID,
		pickupLocation:  pickupLocation,
		dropoffLocation: dropoffLocation,
		pickup:          pickup,
		dropoff:         dropoff,
		total:           total,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) DraftID() uuid.UUID      { return b.draftID }
func (b *Booking) VehicleID() uuid.UUID    { return b.vehicleID }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) PickupLocation() string  { return b.pickupLocation }
func (b *Booking) DropoffLocation() string { return b.dropoffLocation }
func (b *Booking) Pickup() time.Time       { return b.pickup }
func (b *Booking) Dropoff() time.Time      { return b.dropoff }
func (b *Booking) Total() float64          { return b.total }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }

package commands

import (
	"context"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Write-side ports. The commands never depend on read-side query types.

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
}

// BookingSubmitter persists a confirmed reservation. Submitting the same
// draft twice returns the booking created the first time.
type BookingSubmitter interface {
	CreateBooking(ctx context.Context, payload booking.Payload) (*booking.Booking, error)
}

// Recorder receives reservation telemetry.
type Recorder interface {
	ObserveSubmit(outcome string, d time.Duration)
	SetDrafts(n int)
}

type NopRecorder struct{}

func (NopRecorder) ObserveSubmit(string, time.Duration) {}
func (NopRecorder) SetDrafts(int)                       {}

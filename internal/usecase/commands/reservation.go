package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/pricing"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationRequired  = errs.New("authentication required")
	ErrSubmissionInProgress    = errs.New("booking submission in progress")
	ErrBookingSubmissionFailed = errs.New("booking submission failed")
	ErrSubmissionTimedOut      = errs.New("booking submission timed out")
)

const (
	SubmitOutcomeSuccess = "success"
	SubmitOutcomeFailure = "failure"
	SubmitOutcomeTimeout = "timeout"
)

// DraftView is a copy of a draft taken under its lock.
type DraftView struct {
	ID         uuid.UUID
	Vehicle    reservation.VehicleSnapshot
	Step       reservation.Step
	Billing    reservation.BillingInfo
	Rental     reservation.RentalWindow
	Payment    reservation.PaymentDetails
	Consent    reservation.Consent
	Quote      pricing.Quote
	Submitting bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SubmitResult struct {
	Booking *booking.Booking
	DraftID uuid.UUID
}

type ReservationSettings struct {
	SubmitTimeout time.Duration
	IdleTTL       time.Duration
}

type ReservationCommands interface {
	Start(ctx context.Context, vehicleID uuid.UUID, prefill reservation.RentalWindow) (*DraftView, error)
	Get(ctx context.Context, draftID uuid.UUID) (*DraftView, error)
	UpdateBilling(ctx context.Context, draftID uuid.UUID, billing reservation.BillingInfo) (*DraftView, error)
	UpdateRental(ctx context.Context, draftID uuid.UUID, rental reservation.RentalWindow) (*DraftView, error)
	UpdatePayment(ctx context.Context, draftID uuid.UUID, payment reservation.PaymentDetails) (*DraftView, error)
	UpdateConsent(ctx context.Context, draftID uuid.UUID, consent reservation.Consent) (*DraftView, error)
	Advance(ctx context.Context, draftID uuid.UUID) (*DraftView, error)
	Back(ctx context.Context, draftID uuid.UUID, to reservation.Step) (*DraftView, error)
	Submit(ctx context.Context, draftID uuid.UUID, userID uuid.UUID) (*SubmitResult, error)
	EvictIdle(now time.Time) int
}

type draftEntry struct {
	mu         sync.Mutex
	draft      *reservation.Draft
	submitting bool
	updatedAt  time.Time
}

type reservationUseCaseImpl struct {
	vehicleRepo VehicleRepository
	submitter   BookingSubmitter
	factory     *reservation.Factory
	clock       clock.Clock
	settings    ReservationSettings
	logger      *slog.Logger
	metrics     Recorder

	mu     sync.RWMutex
	drafts map[uuid.UUID]*draftEntry
}

func NewReservationUseCase(
	vehicleRepo VehicleRepository,
	submitter BookingSubmitter,
	factory *reservation.Factory,
	clock clock.Clock,
	settings ReservationSettings,
	logger *slog.Logger,
	metrics Recorder,
) ReservationCommands {
	if metrics == nil {
		metrics = NopRecorder{}
	}
	return &reservationUseCaseImpl{
		vehicleRepo: vehicleRepo,
		submitter:   submitter,
		factory:     factory,
		clock:       clock,
		settings:    settings,
		logger:      logger,
		metrics:     metrics,
		drafts:      make(map[uuid.UUID]*draftEntry),
	}
}

func (r *reservationUseCaseImpl) Start(ctx context.Context, vehicleID uuid.UUID, prefill reservation.RentalWindow) (*DraftView, error) {
	v, err := r.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	d := r.factory.NewDraft(v, prefill)
	entry := &draftEntry{draft: d, updatedAt: d.CreatedAt()}

	r.mu.Lock()
	r.drafts[d.ID()] = entry
	n := len(r.drafts)
	r.mu.Unlock()

	r.metrics.SetDrafts(n)
	r.logger.Info("Reservation draft started",
		slog.String("draft_id", d.ID().String()),
		slog.String("vehicle_id", vehicleID.String()),
	)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.view(), nil
}

func (r *reservationUseCaseImpl) Get(_ context.Context, draftID uuid.UUID) (*DraftView, error) {
	entry, err := r.entry(draftID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.view(), nil
}

func (r *reservationUseCaseImpl) UpdateBilling(_ context.Context, draftID uuid.UUID, billing reservation.BillingInfo) (*DraftView, error) {
	return r.mutate(draftID, func(d *reservation.Draft) error {
		return d.UpdateBilling(billing)
	})
}

func (r *reservationUseCaseImpl) UpdateRental(_ context.Context, draftID uuid.UUID, rental reservation.RentalWindow) (*DraftView, error) {
	return r.mutate(draftID, func(d *reservation.Draft) error {
		return d.UpdateRental(rental)
	})
}

func (r *reservationUseCaseImpl) UpdatePayment(_ context.Context, draftID uuid.UUID, payment reservation.PaymentDetails) (*DraftView, error) {
	return r.mutate(draftID, func(d *reservation.Draft) error {
		if payment.Method == "" {
			payment.Method = d.Payment().Method
		}
		if payment.Method != "" {
			if err := d.SelectPaymentMethod(payment.Method); err != nil {
				return err
			}
		}
		return d.UpdatePayment(payment)
	})
}

func (r *reservationUseCaseImpl) UpdateConsent(_ context.Context, draftID uuid.UUID, consent reservation.Consent) (*DraftView, error) {
	return r.mutate(draftID, func(d *reservation.Draft) error {
		return d.UpdateConsent(consent)
	})
}

func (r *reservationUseCaseImpl) Advance(_ context.Context, draftID uuid.UUID) (*DraftView, error) {
	return r.mutate(draftID, func(d *reservation.Draft) error {
		_, err := d.Advance(r.clock.Now())
		return err
	})
}

func (r *reservationUseCaseImpl) Back(_ context.Context, draftID uuid.UUID, to reservation.Step) (*DraftView, error) {
	return r.mutate(draftID, func(d *reservation.Draft) error {
		_, err := d.Back(to)
		return err
	})
}

// Submit sends the confirmed draft to the booking submitter. The draft stays
// in the registry on failure so the user can retry, and is dropped once the
// booking exists.
func (r *reservationUseCaseImpl) Submit(ctx context.Context, draftID uuid.UUID, userID uuid.UUID) (*SubmitResult, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	entry, err := r.entry(draftID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	if entry.submitting {
		entry.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	payload, err := entry.draft.Payload(userID)
	if err != nil {
		entry.mu.Unlock()
		if errs.Is(err, reservation.ErrIdentityRequired) {
			return nil, errs.Mark(err, ErrAuthenticationRequired)
		}
		return nil, err
	}
	entry.submitting = true
	entry.mu.Unlock()

	start := r.clock.Now()
	submitCtx, cancel := context.WithTimeout(ctx, r.settings.SubmitTimeout)
	defer cancel()

	created, err := r.submitter.CreateBooking(submitCtx, payload)

	entry.mu.Lock()
	entry.submitting = false
	entry.updatedAt = r.clock.Now()
	entry.mu.Unlock()

	if err != nil {
		outcome := SubmitOutcomeFailure
		err = errs.Mark(errs.Wrap(err, "create booking"), ErrBookingSubmissionFailed)
		if errs.Is(submitCtx.Err(), context.DeadlineExceeded) {
			outcome = SubmitOutcomeTimeout
			err = errs.Mark(err, ErrSubmissionTimedOut)
		}
		r.metrics.ObserveSubmit(outcome, r.clock.Now().Sub(start))
		r.logger.Error("Booking submission failed",
			slog.String("draft_id", draftID.String()),
			slog.String("outcome", outcome),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	r.mu.Lock()
	delete(r.drafts, draftID)
	n := len(r.drafts)
	r.mu.Unlock()

	r.metrics.SetDrafts(n)
	r.metrics.ObserveSubmit(SubmitOutcomeSuccess, r.clock.Now().Sub(start))
	r.logger.Info("Booking submitted",
		slog.String("draft_id", draftID.String()),
		slog.String("booking_id", created.ID().String()),
	)
	return &SubmitResult{Booking: created, DraftID: draftID}, nil
}

// EvictIdle drops drafts untouched for longer than the idle TTL. Drafts with
// a submission in flight are kept.
func (r *reservationUseCaseImpl) EvictIdle(now time.Time) int {
	if r.settings.IdleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	evicted := 0
	for id, entry := range r.drafts {
		entry.mu.Lock()
		idle := !entry.submitting && now.Sub(entry.updatedAt) > r.settings.IdleTTL
		entry.mu.Unlock()
		if idle {
			delete(r.drafts, id)
			evicted++
		}
	}
	n := len(r.drafts)
	r.mu.Unlock()

	r.metrics.SetDrafts(n)
	if evicted > 0 {
		r.logger.Info("Evicted idle reservation drafts", slog.Int("count", evicted))
	}
	return evicted
}

func (r *reservationUseCaseImpl) entry(draftID uuid.UUID) (*draftEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.drafts[draftID]
	if !ok {
		return nil, errs.Mark(errs.Newf("draft %s", draftID), errs.ErrDraftNotFound)
	}
	return entry, nil
}

func (r *reservationUseCaseImpl) mutate(draftID uuid.UUID, fn func(*reservation.Draft) error) (*DraftView, error) {
	entry, err := r.entry(draftID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.submitting {
		return nil, ErrSubmissionInProgress
	}
	entry.updatedAt = r.clock.Now()
	if err := fn(entry.draft); err != nil {
		return nil, err
	}
	return entry.view(), nil
}

// view must be called with e.mu held.
func (e *draftEntry) view() *DraftView {
	d := e.draft
	return &DraftView{
		ID:         d.ID(),
		Vehicle:    d.Vehicle(),
		Step:       d.Step(),
		Billing:    d.Billing(),
		Rental:     d.Rental(),
		Payment:    d.Payment(),
		Consent:    d.Consent(),
		Quote:      d.Quote(),
		Submitting: e.submitting,
		CreatedAt:  d.CreatedAt(),
		UpdatedAt:  e.updatedAt,
	}
}

package catalog

import (
	"context"
	"sync"
	"time"

	"vehicle-rental/internal/domain/vehicle"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Fetcher loads the raw catalog. Hints may narrow the result server-side but
// the engine always re-filters what comes back.
type Fetcher interface {
	FetchVehicles(ctx context.Context, hints vehicle.Hints) ([]*vehicle.Vehicle, error)
}

type Snapshot struct {
	Vehicles  []*vehicle.Vehicle
	Status    Status
	Err       error
	FetchedAt time.Time
	Hints     vehicle.Hints
}

// Store keeps the last fetched catalog of one search session.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore() *Store {
	return &Store{snap: Snapshot{Status: StatusIdle}}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// MarkLoading keeps the current vehicles visible while a fetch is pending.
func (s *Store) MarkLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Status = StatusLoading
}

func (s *Store) Replace(vs []*vehicle.Vehicle, hints vehicle.Hints, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{
		Vehicles:  vs,
		Status:    StatusReady,
		FetchedAt: at,
		Hints:     hints,
	}
}

// Fail drops the catalog; a failed fetch never leaves stale vehicles behind.
func (s *Store) Fail(err error, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{
		Status:    StatusFailed,
		Err:       err,
		FetchedAt: at,
	}
}

// Settle ends a loading phase that did not need a fetch.
func (s *Store) Settle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Status == StatusLoading && s.snap.Err == nil && !s.snap.FetchedAt.IsZero() {
		s.snap.Status = StatusReady
	}
}

// Invalidate forces the next recomputation to fetch again.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.FetchedAt = time.Time{}
}

// Covers reports whether the stored catalog can answer a query with the given
// hints at now. A catalog fetched without hints covers every query.
func (s *Store) Covers(hints vehicle.Hints, now time.Time, ttl time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	if snap.Err != nil || snap.FetchedAt.IsZero() {
		return false
	}
	if ttl > 0 && now.Sub(snap.FetchedAt) >= ttl {
		return false
	}
	return snap.Hints.IsZero() || snap.Hints.Key() == hints.Key()
}

package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/debounce"

	"github.com/google/uuid"
)

// View is the visible result of a search session at one generation.
type View struct {
	SessionID  uuid.UUID
	Vehicles   []*vehicle.Vehicle
	Criteria   filter.Criteria
	Generation uint64
	Status     Status
	Err        string
	Pending    bool
	ComputedAt time.Time
}

type Settings struct {
	Quiet   time.Duration
	TTL     time.Duration
	IdleTTL time.Duration
}

type outcome struct {
	view      View
	fetched   bool
	vehicles  []*vehicle.Vehicle
	hints     vehicle.Hints
	fetchErr  error
	fetchedAt time.Time
	took      time.Duration
}

// Session owns one user's filter criteria. Every criteria change is coalesced
// by the debouncer into a single recomputation against the session's store.
//
// Lock order: mu before the debouncer's lock, the debouncer's lock before
// viewMu. The store lock is always innermost.
type Session struct {
	id       uuid.UUID
	engine   *filter.Engine
	fetcher  Fetcher
	store    *Store
	clock    clock.Clock
	settings Settings
	logger   *slog.Logger
	metrics  Recorder

	debouncer *debounce.Debouncer[outcome]

	mu           sync.Mutex
	criteria     filter.Criteria
	scheduledKey string
	lastActive   time.Time

	viewMu sync.RWMutex
	view   View
}

func newSession(
	id uuid.UUID,
	criteria filter.Criteria,
	engine *filter.Engine,
	fetcher Fetcher,
	clk clock.Clock,
	settings Settings,
	logger *slog.Logger,
	metrics Recorder,
) *Session {
	s := &Session{
		id:         id,
		engine:     engine,
		fetcher:    fetcher,
		store:      NewStore(),
		clock:      clk,
		settings:   settings,
		logger:     logger.With(slog.String("session_id", id.String())),
		metrics:    metrics,
		criteria:   criteria,
		lastActive: clk.Now(),
		view: View{
			SessionID: id,
			Vehicles:  []*vehicle.Vehicle{},
			Criteria:  criteria,
			Status:    StatusIdle,
		},
	}
	s.debouncer = debounce.New(settings.Quiet, clk, s.apply,
		debounce.WithDiscardHook[outcome](func(gen uint64) {
			s.logger.Debug("Discarded stale search result", slog.Uint64("generation", gen))
			s.metrics.IncDiscarded()
		}),
	)

	s.mu.Lock()
	s.scheduleLocked()
	s.mu.Unlock()
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Criteria() filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Update applies mutate to a copy of the criteria. A failing mutation leaves
// the criteria untouched. Criteria equal to the last scheduled ones do not
// trigger another recomputation unless the last fetch failed.
func (s *Session) Update(mutate func(*filter.Criteria) error) (filter.Criteria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = s.clock.Now()

	next := s.criteria
	if err := mutate(&next); err != nil {
		return s.criteria, err
	}
	s.criteria = next

	if next.Key() != s.scheduledKey || s.store.Snapshot().Status == StatusFailed {
		s.scheduleLocked()
	}
	return next, nil
}

// Refresh drops the stored catalog and recomputes the current criteria.
func (s *Session) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Invalidate()
	s.scheduleLocked()
}

// View returns the latest applied result. Pending is set while a newer
// generation has been scheduled but not applied yet.
func (s *Session) View() View {
	latest := s.debouncer.Generation()

	s.viewMu.RLock()
	v := s.view
	s.viewMu.RUnlock()

	v.Pending = v.Generation < latest
	if v.Pending && v.Status != StatusFailed {
		if st := s.store.Snapshot().Status; st == StatusLoading {
			v.Status = st
		}
	}
	return v
}

func (s *Session) Close() {
	s.debouncer.Stop()
}

func (s *Session) scheduleLocked() {
	c := s.criteria
	s.scheduledKey = c.Key()
	if !s.store.Covers(c.Hints(), s.clock.Now(), s.settings.TTL) {
		s.store.MarkLoading()
	}
	s.debouncer.Schedule(s.compute(c))
}

func (s *Session) compute(c filter.Criteria) debounce.Task[outcome] {
	return func(ctx context.Context) (outcome, error) {
		start := s.clock.Now()
		hints := c.Hints()
		out := outcome{hints: hints}

		catalog := s.store.Snapshot().Vehicles
		if !s.store.Covers(hints, start, s.settings.TTL) {
			out.fetched = true
			vs, err := s.fetcher.FetchVehicles(ctx, hints)
			out.fetchedAt = s.clock.Now()
			s.metrics.ObserveFetch(err, out.fetchedAt.Sub(start))
			if err != nil {
				out.fetchErr = errs.Mark(errs.Wrap(err, "fetch vehicles"), errs.ErrCatalogUnavailable)
				out.view = View{
					SessionID:  s.id,
					Vehicles:   []*vehicle.Vehicle{},
					Criteria:   c,
					Status:     StatusFailed,
					Err:        out.fetchErr.Error(),
					ComputedAt: out.fetchedAt,
				}
				out.took = out.fetchedAt.Sub(start)
				return out, nil
			}
			out.vehicles = vs
			catalog = vs
		}

		if err := ctx.Err(); err != nil {
			return out, err
		}

		out.view = View{
			SessionID:  s.id,
			Vehicles:   s.engine.ComputeVisible(catalog, c),
			Criteria:   c,
			Status:     StatusReady,
			ComputedAt: s.clock.Now(),
		}
		out.took = out.view.ComputedAt.Sub(start)
		return out, nil
	}
}

// apply runs under the debouncer's lock for the latest generation only.
func (s *Session) apply(res debounce.Result[outcome]) {
	out := res.Value
	if res.Err != nil {
		s.logger.Warn("Search recomputation aborted", slog.Uint64("generation", res.Generation), slog.String("error", res.Err.Error()))
		s.store.Settle()
		return
	}

	switch {
	case out.fetched && out.fetchErr != nil:
		s.logger.Warn("Catalog fetch failed", slog.String("error", out.fetchErr.Error()))
		s.store.Fail(out.fetchErr, out.fetchedAt)
	case out.fetched:
		s.store.Replace(out.vehicles, out.hints, out.fetchedAt)
	default:
		s.store.Settle()
	}

	view := out.view
	view.Generation = res.Generation

	s.viewMu.Lock()
	s.view = view
	s.viewMu.Unlock()

	s.metrics.ObserveRecompute(view.Status, out.took)
	s.logger.Debug("Applied search result",
		slog.Uint64("generation", res.Generation),
		slog.Int("visible", len(view.Vehicles)),
		slog.String("status", string(view.Status)),
	)
}

package catalog

import (
	"log/slog"
	"sync"
	"time"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

// SearchSessions is the search-as-you-type API consumed by the handlers.
type SearchSessions interface {
	Create(criteria filter.Criteria) View
	Update(id uuid.UUID, mutate func(*filter.Criteria) error) (View, error)
	View(id uuid.UUID) (View, error)
}

// Registry holds the live search sessions. Each session serializes its own
// mutations; the registry lock only guards the map.
type Registry struct {
	engine   *filter.Engine
	fetcher  Fetcher
	clock    clock.Clock
	settings Settings
	logger   *slog.Logger
	metrics  Recorder

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry(
	engine *filter.Engine,
	fetcher Fetcher,
	clk clock.Clock,
	settings Settings,
	logger *slog.Logger,
	metrics Recorder,
) *Registry {
	if metrics == nil {
		metrics = NopRecorder{}
	}
	return &Registry{
		engine:   engine,
		fetcher:  fetcher,
		clock:    clk,
		settings: settings,
		logger:   logger,
		metrics:  metrics,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (r *Registry) Create(criteria filter.Criteria) View {
	id := uuid.New()
	s := newSession(id, criteria, r.engine, r.fetcher, r.clock, r.settings, r.logger, r.metrics)

	r.mu.Lock()
	r.sessions[id] = s
	n := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetSessions(n)
	r.logger.Info("Search session created", slog.String("session_id", id.String()), slog.String("criteria", criteria.String()))
	return s.View()
}

func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("search session %s", id), errs.ErrSearchSessionNotFound)
	}
	return s, nil
}

func (r *Registry) Update(id uuid.UUID, mutate func(*filter.Criteria) error) (View, error) {
	s, err := r.Get(id)
	if err != nil {
		return View{}, err
	}
	if _, err := s.Update(mutate); err != nil {
		return View{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return s.View(), nil
}

func (r *Registry) View(id uuid.UUID) (View, error) {
	s, err := r.Get(id)
	if err != nil {
		return View{}, err
	}
	return s.View(), nil
}

// EvictIdle closes sessions untouched for longer than the idle TTL and
// returns how many were removed.
func (r *Registry) EvictIdle(now time.Time) int {
	if r.settings.IdleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	var evicted []*Session
	for id, s := range r.sessions {
		if now.Sub(s.LastActive()) > r.settings.IdleTTL {
			evicted = append(evicted, s)
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	for _, s := range evicted {
		s.Close()
	}
	r.metrics.SetSessions(n)
	if len(evicted) > 0 {
		r.logger.Info("Evicted idle search sessions", slog.Int("count", len(evicted)))
	}
	return len(evicted)
}

// RefreshAll makes every live session refetch its catalog.
func (r *Registry) RefreshAll() int {
	r.mu.RLock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	for _, s := range sessions {
		s.Refresh()
	}
	return len(sessions)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close stops every session. Used on shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"vehicle-rental/internal/infra/scheduler"
	"vehicle-rental/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	refreshed int
	evictedAt []time.Time
	order     *[]string
}

func (s *stubSessions) RefreshAll() int {
	s.refreshed++
	*s.order = append(*s.order, "refresh")
	return 2
}

func (s *stubSessions) EvictIdle(now time.Time) int {
	s.evictedAt = append(s.evictedAt, now)
	return 1
}

type stubDrafts struct{ evictedAt []time.Time }

func (s *stubDrafts) EvictIdle(now time.Time) int {
	s.evictedAt = append(s.evictedAt, now)
	return 0
}

type stubCache struct {
	err   error
	order *[]string
}

func (s *stubCache) Invalidate(context.Context) error {
	*s.order = append(*s.order, "invalidate")
	return s.err
}

var specs = scheduler.Specs{CatalogRefresh: "0 */5 * * * *", Eviction: "0 * * * * *"}

func TestScheduler_Jobs(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success: refresh invalidates the cache before sessions", func(t *testing.T) {
		var order []string
		sessions := &stubSessions{order: &order}
		s, err := scheduler.New(specs, sessions, &stubDrafts{}, &stubCache{order: &order}, clock.NewMockClock(now), logger)
		require.NoError(t, err)

		s.RefreshCatalog()

		assert.Equal(t, []string{"invalidate", "refresh"}, order)
	})

	t.Run("success: cache failure does not block the refresh", func(t *testing.T) {
		var order []string
		sessions := &stubSessions{order: &order}
		s, err := scheduler.New(specs, sessions, &stubDrafts{}, &stubCache{err: errors.New("redis down"), order: &order}, clock.NewMockClock(now), logger)
		require.NoError(t, err)

		s.RefreshCatalog()

		assert.Equal(t, 1, sessions.refreshed)
	})

	t.Run("success: nil cache is skipped", func(t *testing.T) {
		var order []string
		sessions := &stubSessions{order: &order}
		s, err := scheduler.New(specs, sessions, &stubDrafts{}, nil, clock.NewMockClock(now), logger)
		require.NoError(t, err)

		s.RefreshCatalog()

		assert.Equal(t, []string{"refresh"}, order)
	})

	t.Run("success: eviction uses the clock for both registries", func(t *testing.T) {
		var order []string
		sessions := &stubSessions{order: &order}
		drafts := &stubDrafts{}
		s, err := scheduler.New(specs, sessions, drafts, nil, clock.NewMockClock(now), logger)
		require.NoError(t, err)

		s.EvictIdle()

		assert.Equal(t, []time.Time{now}, sessions.evictedAt)
		assert.Equal(t, []time.Time{now}, drafts.evictedAt)
	})
}

func TestScheduler_Lifecycle(t *testing.T) {
	var order []string
	s, err := scheduler.New(specs, &stubSessions{order: &order}, &stubDrafts{}, nil, clock.NewRealClock(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	s.Start()
	assert.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_InvalidSpec(t *testing.T) {
	var order []string
	_, err := scheduler.New(scheduler.Specs{CatalogRefresh: "every now and then", Eviction: specs.Eviction},
		&stubSessions{order: &order}, &stubDrafts{}, nil, clock.NewRealClock(), slog.New(slog.DiscardHandler))

	assert.Error(t, err)
}

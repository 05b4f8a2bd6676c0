//go:build unit

package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vehicle-rental/internal/infra/metrics"
	"vehicle-rental/internal/usecase/catalog"
	"vehicle-rental/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ catalog.Recorder  = (*metrics.Metrics)(nil)
	_ commands.Recorder = (*metrics.Metrics)(nil)
)

func TestMetrics(t *testing.T) {
	m := metrics.New()

	m.IncDiscarded()
	m.IncDiscarded()
	m.SetSessions(3)
	m.SetDrafts(1)
	m.ObserveRecompute(catalog.StatusReady, 2*time.Millisecond)
	m.ObserveFetch(errors.New("down"), time.Second)
	m.ObserveSubmit(commands.SubmitOutcomeTimeout, 10*time.Second)
	m.ObserveHTTP(http.MethodGet, "/api/vehicles", http.StatusOK, 5*time.Millisecond)

	expected := `
# HELP vehicle_rental_debounce_discarded_total Search results dropped because a newer generation was scheduled
# TYPE vehicle_rental_debounce_discarded_total counter
vehicle_rental_debounce_discarded_total 2
# HELP vehicle_rental_search_sessions Number of live search sessions
# TYPE vehicle_rental_search_sessions gauge
vehicle_rental_search_sessions 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"vehicle_rental_debounce_discarded_total", "vehicle_rental_search_sessions"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `vehicle_rental_booking_submits_total{outcome="timeout"} 1`)
	assert.Contains(t, body, `vehicle_rental_catalog_fetch_duration_seconds_count{result="error"} 1`)
	assert.Contains(t, body, `vehicle_rental_http_request_duration_seconds_count{method="GET",route="/api/vehicles",status="200"} 1`)
}

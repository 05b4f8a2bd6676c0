package metrics

import (
	"net/http"
	"strconv"
	"time"

	"vehicle-rental/internal/usecase/catalog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vehicle_rental"

// Metrics owns its registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry

	recomputeDuration *prometheus.HistogramVec
	fetchDuration     *prometheus.HistogramVec
	debounceDiscarded prometheus.Counter
	searchSessions    prometheus.Gauge

	submitDuration    *prometheus.HistogramVec
	submitsTotal      *prometheus.CounterVec
	reservationDrafts prometheus.Gauge

	httpRequests *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		recomputeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_recompute_duration_seconds",
				Help:      "Duration of debounced search recomputations",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
			},
			[]string{"status"},
		),
		fetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "catalog_fetch_duration_seconds",
				Help:      "Duration of catalog fetches",
			},
			[]string{"result"},
		),
		debounceDiscarded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "debounce_discarded_total",
				Help:      "Search results dropped because a newer generation was scheduled",
			},
		),
		searchSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "search_sessions",
				Help:      "Number of live search sessions",
			},
		),
		submitDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "booking_submit_duration_seconds",
				Help:      "Duration of booking submissions",
			},
			[]string{"outcome"},
		),
		submitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_submits_total",
				Help:      "Total number of booking submissions",
			},
			[]string{"outcome"},
		),
		reservationDrafts: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "reservation_drafts",
				Help:      "Number of open reservation drafts",
			},
		),
		httpRequests: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRecompute(status catalog.Status, d time.Duration) {
	m.recomputeDuration.WithLabelValues(string(status)).Observe(d.Seconds())
}

func (m *Metrics) ObserveFetch(err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.fetchDuration.WithLabelValues(result).Observe(d.Seconds())
}

func (m *Metrics) IncDiscarded() {
	m.debounceDiscarded.Inc()
}

func (m *Metrics) SetSessions(n int) {
	m.searchSessions.Set(float64(n))
}

func (m *Metrics) ObserveSubmit(outcome string, d time.Duration) {
	m.submitsTotal.WithLabelValues(outcome).Inc()
	m.submitDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Metrics) SetDrafts(n int) {
	m.reservationDrafts.Set(float64(n))
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

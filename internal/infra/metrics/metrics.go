// Package metrics owns the Prometheus registry and the collectors recorded by the service.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "acorn"

// Metrics holds the registry and every collector the service records into.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	cacheLookups       *prometheus.CounterVec
	cacheRevalidations *prometheus.CounterVec
	cacheStalePuts     prometheus.Counter

	actionResults  *prometheus.CounterVec
	janitorRemoved prometheus.Counter
	invoiceEvents  *prometheus.CounterVec
}

// New creates a registry with runtime collectors and the service's own metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "view_cache",
			Name:      "lookups_total",
			Help:      "View cache lookups by result.",
		}, []string{"result"}),
		cacheRevalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "view_cache",
			Name:      "revalidations_total",
			Help:      "Named-path revalidations.",
		}, []string{"path"}),
		cacheStalePuts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "view_cache",
			Name:      "stale_puts_dropped_total",
			Help:      "Cache fills discarded because the path was revalidated while they loaded.",
		}),
		actionResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "actions",
			Name:      "results_total",
			Help:      "Form action outcomes by action and result kind.",
		}, []string{"action", "kind"}),
		janitorRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "expired_removed_total",
			Help:      "Expired sessions removed by the janitor.",
		}),
		invoiceEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "invoice_events_total",
			Help:      "Invoice events received on the push endpoint by type and outcome.",
		}, []string{"type", "outcome"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.cacheLookups,
		m.cacheRevalidations,
		m.cacheStalePuts,
		m.actionResults,
		m.janitorRemoved,
		m.invoiceEvents,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RegisterDBStats exports connection pool statistics of db under dbName.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, dbName)); err != nil {
		return errors.Wrap(err, "register db stats collector")
	}

	return nil
}

// RequestStarted marks a request in flight and returns a func that records its completion.
func (m *Metrics) RequestStarted() func(method, route string, status int) {
	start := time.Now()
	m.httpInFlight.Inc()

	return func(method, route string, status int) {
		m.httpInFlight.Dec()

		if route == "" {
			route = "unmatched"
		}
		method = strings.ToUpper(method)

		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// CacheLookup records a view cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// CacheRevalidated records a revalidation of a named path.
func (m *Metrics) CacheRevalidated(path string) {
	m.cacheRevalidations.WithLabelValues(path).Inc()
}

// CacheStalePutDropped records a cache fill rejected by a newer revalidation.
func (m *Metrics) CacheStalePutDropped() {
	m.cacheStalePuts.Inc()
}

// ActionResult records the outcome kind of a form action.
func (m *Metrics) ActionResult(action, kind string) {
	m.actionResults.WithLabelValues(action, kind).Inc()
}

// SessionsRemoved records expired sessions deleted by the janitor.
func (m *Metrics) SessionsRemoved(n int64) {
	if n > 0 {
		m.janitorRemoved.Add(float64(n))
	}
}

// InvoiceEventReceived records a pushed invoice event; outcome is "processed" or "rejected".
func (m *Metrics) InvoiceEventReceived(eventType, outcome string) {
	if eventType == "" {
		eventType = "unknown"
	}
	m.invoiceEvents.WithLabelValues(eventType, outcome).Inc()
}

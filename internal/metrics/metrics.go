// Package metrics defines the Prometheus collectors of the API server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scaffold"

// Metrics groups the collectors of the API server. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	gateDecisions *prometheus.CounterVec
	hashDuration  *prometheus.HistogramVec
	requests      *prometheus.CounterVec
}

// New registers all collectors on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		gateDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "decisions_total",
			Help:      "Authentication gate decisions by outcome and rejection reason",
		}, []string{"outcome", "reason"}),

		hashDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "password",
			Name:      "operation_duration_seconds",
			Help:      "Duration of password hash and verify operations",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation", "result"}),

		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method and status code",
		}, []string{"method", "status"}),
	}
}

// ObserveGateDecision counts one gate decision. reason is empty for
// forwarded requests.
func (m *Metrics) ObserveGateDecision(outcome, reason string) {
	if m == nil {
		return
	}
	m.gateDecisions.WithLabelValues(outcome, reason).Inc()
}

// ObservePasswordOperation records the duration of a hash or verify call.
func (m *Metrics) ObservePasswordOperation(operation, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.hashDuration.WithLabelValues(operation, result).Observe(d.Seconds())
}

// ObserveRequest counts one served HTTP request.
func (m *Metrics) ObserveRequest(method, status string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPInFlight        prometheus.Gauge

	// Interaction metrics
	InteractionsTotal *prometheus.CounterVec
	ViewsTotal        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		HTTPInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests being served",
			},
		),
		InteractionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interactions_total",
				Help: "Interaction mutations by type and outcome",
			},
			[]string{"interaction", "outcome"},
		),
		ViewsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "views_total",
				Help: "Recorded views by entity kind, split by whether they were counted",
			},
			[]string{"entity_kind", "counted"},
		),
	}
}

// Interaction records one interaction mutation.
func (m *Metrics) Interaction(interaction, outcome string) {
	if m == nil {
		return
	}
	m.InteractionsTotal.WithLabelValues(interaction, outcome).Inc()
}

// View records one view event.
func (m *Metrics) View(entityKind string, counted bool) {
	if m == nil {
		return
	}
	label := "false"
	if counted {
		label = "true"
	}
	m.ViewsTotal.WithLabelValues(entityKind, label).Inc()
}

// Package metrics wraps a private Prometheus registry with the collectors used by the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the registry and predefined collectors.
// All recording methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec   // method, path, status
	HTTPRequestDuration *prometheus.HistogramVec // method, path
	SimulationsTotal    *prometheus.CounterVec   // outcome: sampled, no_samples, rejected
	PayoffPoints        prometheus.Histogram
	SuggestionsTotal    *prometheus.CounterVec // option_type
}

// NewMetrics creates a registry with Go runtime and process collectors plus the service metrics
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = m.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	m.HTTPRequestDuration = m.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	m.SimulationsTotal = m.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulations_total",
		Help:      "Payoff simulations by outcome",
	}, []string{"outcome"})

	m.PayoffPoints = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payoff_points",
		Help:      "Number of sampled points per payoff curve",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
	})
	reg.MustRegister(m.PayoffPoints)

	m.SuggestionsTotal = m.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adjustment_suggestions_total",
		Help:      "Hedging suggestions returned",
	}, []string{"option_type"})

	return m
}

// NewCounterVec creates and registers a counter vector
func (m *Metrics) NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(opts, labelNames)
	m.registry.MustRegister(cv)
	return cv
}

// NewHistogramVec creates and registers a histogram vector
func (m *Metrics) NewHistogramVec(opts prometheus.HistogramOpts, labelNames []string) *prometheus.HistogramVec {
	hv := prometheus.NewHistogramVec(opts, labelNames)
	m.registry.MustRegister(hv)
	return hv
}

// ObserveSimulation records one simulation and its curve size
func (m *Metrics) ObserveSimulation(points int) {
	if m == nil {
		return
	}
	outcome := "sampled"
	if points == 0 {
		outcome = "no_samples"
	}
	m.SimulationsTotal.WithLabelValues(outcome).Inc()
	m.PayoffPoints.Observe(float64(points))
}

// ObserveRejectedSimulation records a simulation refused for its range or overflow
func (m *Metrics) ObserveRejectedSimulation() {
	if m == nil {
		return
	}
	m.SimulationsTotal.WithLabelValues("rejected").Inc()
}

// ObserveSuggestion records one suggestion for the given option type
func (m *Metrics) ObserveSuggestion(optionType string) {
	if m == nil {
		return
	}
	m.SuggestionsTotal.WithLabelValues(optionType).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

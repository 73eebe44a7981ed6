// Package metrics holds the Prometheus collectors of the evaluation service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	Computations        *prometheus.CounterVec
	Duration            *prometheus.HistogramVec
	EntropyFallbacks    prometheus.Counter
	ConsistencyRejected prometheus.Counter
}

// New registers every collector on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecoeval_computations_total",
			Help: "Evaluation requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ecoeval_computation_duration_seconds",
			Help:    "Time spent computing one evaluation request.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"operation"}),
		EntropyFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecoeval_entropy_fallback_total",
			Help: "Entropy runs where every column saturated and equal weights were assigned.",
		}),
		ConsistencyRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecoeval_consistency_rejected_total",
			Help: "Judgment matrices whose consistency ratio reached the threshold.",
		}),
	}
	m.registry.MustRegister(
		m.Computations, m.Duration, m.EntropyFallbacks, m.ConsistencyRejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records one finished computation.
func (m *Metrics) Observe(operation string, start time.Time, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.Computations.WithLabelValues(operation, outcome).Inc()
	m.Duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

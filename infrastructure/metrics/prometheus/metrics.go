// ABOUTME: Prometheus implementation of the engine metrics
// ABOUTME: Counts provider calls, search phases, decisions and cache lookups; served at /metrics

package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "poi_translation"

// Metrics implements interfaces.Metrics with Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	providerCalls    *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	searchPhases     *prometheus.CounterVec
	decisions        *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on a fresh registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Source calls by source and outcome",
		}, []string{"source", "outcome"}),
		providerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_duration_ms",
			Help:      "Source call duration in milliseconds",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2000, 5000, 10000},
		}, []string{"source"}),
		searchPhases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_decisions_total",
			Help:      "Progressive search decisions by phase and status",
		}, []string{"phase", "status"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Final translation decisions by status and manual review",
		}, []string{"status", "manual_review"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_lookups_total",
			Help:      "Search cache lookups by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.providerCalls,
		m.providerDuration,
		m.searchPhases,
		m.decisions,
		m.cacheLookups,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveProviderCall records one source call
func (m *Metrics) ObserveProviderCall(source, outcome string, duration time.Duration) {
	m.providerCalls.WithLabelValues(source, outcome).Inc()
	m.providerDuration.WithLabelValues(source).Observe(float64(duration.Milliseconds()))
}

// ObserveSearchPhase records the phase that produced a search decision
func (m *Metrics) ObserveSearchPhase(phase int, status string) {
	label := "none"
	switch phase {
	case 1:
		label = "1"
	case 2:
		label = "2"
	}
	m.searchPhases.WithLabelValues(label, status).Inc()
}

// ObserveDecision records a final decision
func (m *Metrics) ObserveDecision(status string, needsManualReview bool) {
	review := "false"
	if needsManualReview {
		review = "true"
	}
	m.decisions.WithLabelValues(status, review).Inc()
}

// ObserveCacheLookup records a cache hit or miss
func (m *Metrics) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

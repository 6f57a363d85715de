package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	cacheHits          *prometheus.CounterVec
	cacheMisses        *prometheus.CounterVec
	cacheInvalidations *prometheus.CounterVec
	expenseOperations  *prometheus.CounterVec
	authEvents         *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits per cached view",
			},
			[]string{"view"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses per cached view",
			},
			[]string{"view"},
		),
		cacheInvalidations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_invalidations_total",
				Help: "Total number of cache invalidations per view group",
			},
			[]string{"view"},
		),
		expenseOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_operations_total",
				Help: "Total number of expense mutations by operation and status",
			},
			[]string{"operation", "status"},
		),
		authEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events by type",
			},
			[]string{"event"},
		),
	}
}

func (m *PrometheusMetrics) RecordCacheHit(view string) {
	m.cacheHits.WithLabelValues(view).Inc()
}

func (m *PrometheusMetrics) RecordCacheMiss(view string) {
	m.cacheMisses.WithLabelValues(view).Inc()
}

func (m *PrometheusMetrics) RecordCacheInvalidation(view string) {
	m.cacheInvalidations.WithLabelValues(view).Inc()
}

func (m *PrometheusMetrics) RecordExpenseOperation(operation, status string) {
	m.expenseOperations.WithLabelValues(operation, status).Inc()
}

func (m *PrometheusMetrics) RecordAuthEvent(event string) {
	m.authEvents.WithLabelValues(event).Inc()
}

// NoopMetrics is a MetricsRecorderInterface that records nothing. Used in
// tests so parallel suites do not fight over prometheus registration.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) RecordCacheHit(string)                {}
func (m *NoopMetrics) RecordCacheMiss(string)               {}
func (m *NoopMetrics) RecordCacheInvalidation(string)       {}
func (m *NoopMetrics) RecordExpenseOperation(string, string) {}
func (m *NoopMetrics) RecordAuthEvent(string)               {}

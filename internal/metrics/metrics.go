package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Query pipeline metrics
	QueriesTotal         *prometheus.CounterVec
	QueryDurationSeconds *prometheus.HistogramVec
	QueryConfidence      *prometheus.HistogramVec

	// Knowledge store metrics
	KnowledgeLookupsTotal *prometheus.CounterVec

	// Response cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		QueriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_queries_total",
				Help: "Total number of processed queries by intent and status",
			},
			[]string{"intent", "status"}, // status: success, store_error
		),

		QueryDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_query_duration_seconds",
				Help:    "Query processing duration in seconds by intent",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"intent"},
		),

		QueryConfidence: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_query_confidence",
				Help:    "Classifier confidence distribution by intent",
				Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.75, 1},
			},
			[]string{"intent"},
		),

		KnowledgeLookupsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_knowledge_lookups_total",
				Help: "Total knowledge store lookups by entity and outcome",
			},
			[]string{"entity", "outcome"}, // outcome: hit, miss, error
		),

		CacheHitsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_cache_hits_total",
				Help: "Total number of response cache hits by entity",
			},
			[]string{"entity"},
		),

		CacheMissesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_cache_misses_total",
				Help: "Total number of response cache misses by entity",
			},
			[]string{"entity"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_http_errors_total",
				Help: "Total HTTP errors by status class and route",
			},
			[]string{"status", "route"},
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_rate_limiter_dropped_total",
				Help: "Total requests dropped by the rate limiter",
			},
			[]string{"limiter"},
		),
	}

	return m
}

// RecordQuery records a processed query with its outcome.
func (m *Metrics) RecordQuery(intent, status string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(intent, status).Inc()
	m.QueryDurationSeconds.WithLabelValues(intent).Observe(durationSeconds)
}

// RecordConfidence records the classifier confidence for an intent.
func (m *Metrics) RecordConfidence(intent string, confidence float64) {
	if m == nil {
		return
	}
	m.QueryConfidence.WithLabelValues(intent).Observe(confidence)
}

// RecordKnowledgeLookup records a knowledge store lookup outcome.
func (m *Metrics) RecordKnowledgeLookup(entity, outcome string) {
	if m == nil {
		return
	}
	m.KnowledgeLookupsTotal.WithLabelValues(entity, outcome).Inc()
}

// RecordCacheHit records a response cache hit.
func (m *Metrics) RecordCacheHit(entity string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(entity).Inc()
}

// RecordCacheMiss records a response cache miss.
func (m *Metrics) RecordCacheMiss(entity string) {
	if m == nil {
		return
	}
	m.CacheMissesTotal.WithLabelValues(entity).Inc()
}

// RecordHTTPError records an HTTP error response.
func (m *Metrics) RecordHTTPError(status, route string) {
	if m == nil {
		return
	}
	m.HTTPErrorsTotal.WithLabelValues(status, route).Inc()
}

// RecordRateLimiterDrop records a request dropped by a rate limiter.
func (m *Metrics) RecordRateLimiterDrop(limiter string) {
	if m == nil {
		return
	}
	m.RateLimiterDropped.WithLabelValues(limiter).Inc()
}

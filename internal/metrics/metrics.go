package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the admin API
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
	CacheErrorsTotal *prometheus.CounterVec
	CacheClearsTotal *prometheus.CounterVec

	// Business Metrics
	ModerationActionsTotal *prometheus.CounterVec
	RateLimitedTotal       prometheus.Counter
}

// NewMetricsRegistry registers every metric on reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsorlink_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sponsorlink_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sponsorlink_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsorlink_cache_hits_total",
				Help: "Total response cache hits by route",
			},
			[]string{"endpoint"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsorlink_cache_misses_total",
				Help: "Total response cache misses by route",
			},
			[]string{"endpoint"},
		),
		CacheErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsorlink_cache_errors_total",
				Help: "Response cache backend errors by operation",
			},
			[]string{"operation"},
		),
		CacheClearsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsorlink_cache_clears_total",
				Help: "Full cache invalidations by result",
			},
			[]string{"result"},
		),

		ModerationActionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsorlink_moderation_actions_total",
				Help: "Committed moderation actions by entity and action",
			},
			[]string{"entity", "action"},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sponsorlink_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
	}
}

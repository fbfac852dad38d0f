// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartchef_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartchef_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CatalogLoads counts recipe catalog reads by source:
	// database, static or fallback-static.
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartchef_catalog_loads_total",
			Help: "Recipe catalog loads by source",
		},
		[]string{"source"},
	)

	MatchRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartchef_match_requests_total",
			Help: "Total number of recipe match requests",
		},
	)

	MatchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smartchef_match_results",
			Help:    "Number of recipes returned per match request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	// RecognitionRequests counts ingredient recognition outcomes:
	// ok, empty, malformed, error, unavailable.
	RecognitionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartchef_recognition_requests_total",
			Help: "Ingredient recognition requests by outcome",
		},
		[]string{"outcome"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "smartchef_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartchef_rate_limit_hits_total",
			Help: "Requests rejected by a rate limiter",
		},
		[]string{"limiter"},
	)
)

// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Gateway API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of gateway API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Gateway API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active gateway API requests",
		},
	)

	// Upstream (remote Analogue Memory backend) Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to the remote catalog backend",
		},
		[]string{"method", "status_code"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Remote catalog backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items in the current catalog snapshot",
		},
	)

	CatalogCategories = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_categories",
			Help: "Number of remote categories in the current catalog snapshot",
		},
	)

	CatalogRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_refresh_total",
			Help: "Total number of catalog refresh attempts by outcome",
		},
		[]string{"source"}, // "remote", "mock", "error"
	)

	CatalogRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_refresh_duration_seconds",
			Help:    "Duration of catalog refreshes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogLastRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_refresh_timestamp_seconds",
			Help: "Unix timestamp of the last successful catalog refresh",
		},
	)

	// Collection Metrics
	CollectionSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "collection_items",
			Help: "Number of items in the personal collection",
		},
	)

	CollectionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_operations_total",
			Help: "Total number of collection mutations",
		},
		[]string{"operation"}, // "add", "remove"
	)

	CollectionPersistErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "collection_persist_errors_total",
			Help: "Total number of failed collection snapshot writes",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records a gateway API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamRequest records a request to the remote backend.
// statusCode is "error" when no response was received.
func RecordUpstreamRequest(method, statusCode string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(method, statusCode).Inc()
	UpstreamRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordCatalogRefresh records a catalog refresh. source is "remote" or
// "mock" on success; err non-nil records an "error" outcome.
func RecordCatalogRefresh(source string, items, categories int, duration time.Duration, err error) {
	CatalogRefreshDuration.Observe(duration.Seconds())
	if err != nil {
		CatalogRefreshTotal.WithLabelValues("error").Inc()
		return
	}
	CatalogRefreshTotal.WithLabelValues(source).Inc()
	CatalogItems.Set(float64(items))
	CatalogCategories.Set(float64(categories))
	CatalogLastRefresh.Set(float64(time.Now().Unix()))
}

// RecordCollectionChange records a collection mutation and the resulting size.
func RecordCollectionChange(operation string, size int) {
	CollectionOperations.WithLabelValues(operation).Inc()
	CollectionSize.Set(float64(size))
}

// RecordCacheLookup records a hit or miss for cacheType.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package metrics

import (
	"errors"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Recommendation engine outcomes and latency
// - Title resolution cache efficiency
// - Startup artifact loading

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}, // Lookups are in-memory
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Engine Metrics
	EngineOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_operations_total",
			Help: "Total number of engine operations by outcome",
		},
		[]string{"operation", "outcome"}, // outcome: "ok", "not_found", "invalid", "error"
	)

	EngineOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_operation_duration_seconds",
			Help:    "Engine operation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"operation"},
	)

	RecommendationItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_items_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 7, 10, 25},
		},
	)

	TitleMatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_title_match_score",
			Help:    "Fuzzy score (0-100) of accepted title resolutions",
			Buckets: []float64{60, 65, 70, 75, 80, 85, 90, 95, 100},
		},
	)

	// Title Resolution Cache Metrics
	ResolverCacheHits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "resolver_cache_hits",
			Help: "Title resolution cache hits since startup",
		},
	)

	ResolverCacheMisses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "resolver_cache_misses",
			Help: "Title resolution cache misses since startup",
		},
	)

	ResolverCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "resolver_cache_entries",
			Help: "Current number of cached title resolutions",
		},
	)

	// Artifact Metrics
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	SimilarityDimension = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_matrix_dimension",
			Help: "Row count of the loaded similarity matrix",
		},
	)

	ArtifactLoadDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "artifact_load_duration_seconds",
			Help: "Time taken to load each startup artifact",
		},
		[]string{"artifact"}, // "dataset", "similarity"
	)

	ArtifactLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artifact_load_errors_total",
			Help: "Total number of artifact load failures",
		},
		[]string{"artifact"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// Engine operation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// RecordAPIRequest records an API request metric
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

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordEngineOperation records an engine call and its outcome
func RecordEngineOperation(operation, outcome string, duration time.Duration) {
	EngineOperationsTotal.WithLabelValues(operation, outcome).Inc()
	EngineOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRecommendation records a successful recommendation's size and match score
func RecordRecommendation(items, matchScore int) {
	RecommendationItems.Observe(float64(items))
	TitleMatchScore.Observe(float64(matchScore))
}

// UpdateResolverCache publishes the resolver cache counters
func UpdateResolverCache(hits, misses int64, size int) {
	ResolverCacheHits.Set(float64(hits))
	ResolverCacheMisses.Set(float64(misses))
	ResolverCacheSize.Set(float64(size))
}

// RecordArtifactLoad records how long an artifact took to load, or counts the failure
func RecordArtifactLoad(artifact string, duration time.Duration, err error) {
	if err != nil {
		ArtifactLoadErrors.WithLabelValues(artifact).Inc()
		return
	}
	ArtifactLoadDuration.WithLabelValues(artifact).Set(duration.Seconds())
}

// SetArtifactSizes publishes the catalog row count and matrix dimension
func SetArtifactSizes(catalogRows, matrixDim int) {
	CatalogSize.Set(float64(catalogRows))
	SimilarityDimension.Set(float64(matrixDim))
}

// SetAppInfo publishes the build version
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// StartUptimeTracker updates AppUptime every interval until stop is closed.
func StartUptimeTracker(start time.Time, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	AppUptime.Set(time.Since(start).Seconds())
	for {
		select {
		case <-ticker.C:
			AppUptime.Set(time.Since(start).Seconds())
		case <-stop:
			return
		}
	}
}

// Outcome classifies an engine error into an outcome label. notFound and
// invalid are the caller's sentinel errors.
func Outcome(err, notFound, invalid error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, notFound):
		return OutcomeNotFound
	case errors.Is(err, invalid):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

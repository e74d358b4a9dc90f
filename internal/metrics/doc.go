// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered with the default registry through promauto and exposed
at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint (chi route pattern), status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by httprate (counter)
    Labels: endpoint

Engine Metrics:
  - recommend_operations_total: Engine calls by outcome (counter)
    Labels: operation (recommend, detail, popular, list), outcome (ok, not_found, invalid, error)
  - recommend_operation_duration_seconds: Engine call latency (histogram)
  - recommend_items_returned: Recommendations per successful request (histogram)
  - recommend_title_match_score: Accepted fuzzy match scores (histogram)

Title Resolution Cache:
  - resolver_cache_hits, resolver_cache_misses, resolver_cache_entries (gauges)

Artifacts:
  - catalog_movies, similarity_matrix_dimension (gauges)
  - artifact_load_duration_seconds (gauge) and artifact_load_errors_total (counter)
    Labels: artifact (dataset, similarity)

System:
  - app_info{version, go_version} (gauge, always 1)
  - app_uptime_seconds (gauge)

# Usage

	start := time.Now()
	res, err := engine.Recommend(ctx, title, limit)
	metrics.RecordEngineOperation("recommend", metrics.Outcome(err, recommend.ErrNotFound, recommend.ErrInvalidParameter), time.Since(start))

# Thread Safety

All metric operations are safe for concurrent use.
*/
package metrics

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cineapi/internal/metrics"
)

func newMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/movies/{title}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "title") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	router := newMetricsRouter()
	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/movies/{title}", "200")
	before := testutil.ToFloat64(counter)

	for _, title := range []string{"Avatar", "Spectre", "Titanic"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/"+title, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status %d", title, rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("Expected 3 requests under the route pattern, got %v", got)
	}
}

func TestPrometheusMetrics_CapturesStatusCode(t *testing.T) {
	router := newMetricsRouter()
	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/movies/{title}", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/missing", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected one 404 sample, got %v", got)
	}
}

func TestPrometheusMetrics_UnmatchedRoute(t *testing.T) {
	router := newMetricsRouter()
	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected unmatched request to be counted once, got %v", got)
	}
}

func TestPrometheusMetrics_ActiveRequestsBalanced(t *testing.T) {
	before := testutil.ToFloat64(metrics.APIActiveRequests)

	var during float64
	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(metrics.APIActiveRequests)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if during != before+1 {
		t.Errorf("Expected active requests %v during handling, got %v", before+1, during)
	}
	if after := testutil.ToFloat64(metrics.APIActiveRequests); after != before {
		t.Errorf("Expected active requests back to %v, got %v", before, after)
	}
}

func TestRoutePattern_NoRouteContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/popular", nil)
	if got := RoutePattern(req); got != unmatchedRoute {
		t.Errorf("RoutePattern() = %q, want %q", got, unmatchedRoute)
	}
}

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package middleware provides HTTP middleware components for the API server.

All middleware has the standard func(http.Handler) http.Handler shape so it
can be installed with chi's Router.Use.

Key Components:

  - RequestID: request and correlation IDs for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern
  - Compression: gzip response bodies (klauspost/compress)

Usage:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

CORS, rate limiting and security headers are configured by the api package
because they depend on server configuration.
*/
package middleware

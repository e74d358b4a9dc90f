// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package api provides the HTTP REST API for CineAPI.

The handlers are a thin layer over recommend.Engine: they parse and validate
parameters, call the engine, and wrap the result in the models.APIResponse
envelope.

Routes:

	GET /                                  welcome message
	GET /api/v1/movies?limit=-1            id/title pairs in catalog order
	GET /api/v1/movies/{title}             every movie carrying the fuzzy-matched title
	GET /api/v1/recommendations/{title}    similar movies, ?limit=1..10 (default 5)
	GET /api/v1/popular                    ?sortby=score|title|release_year&limit=10
	GET /api/v1/health/live                liveness probe
	GET /api/v1/health/ready               readiness probe with catalog size
	GET /metrics                           Prometheus exposition
	GET /swagger/*                         OpenAPI UI

The four movie routes are also served without the /api/v1 prefix, in the
shape the service had before versioning: the data payload alone, and
{"detail": "..."} for errors. Both route sets share one rate limit budget
and produce the same ETag for the same payload.

The recommendation limit counts the matched movie itself, so limit=5 returns
at most four recommendations. Existing clients depend on this.

Error Mapping:

	recommend.ErrNotFound          404 NOT_FOUND
	recommend.ErrInvalidParameter  400 VALIDATION_ERROR (also bad query parameters)
	recommend.ErrDataIntegrity     500 DATA_INTEGRITY_ERROR
	rate limited                   429 RATE_LIMIT_EXCEEDED
	anything else                  500 INTERNAL_ERROR

Middleware Stack (outermost first):

	middleware.RequestID, chimiddleware.RealIP, RequestLogger,
	chimiddleware.Recoverer, CORS, middleware.PrometheusMetrics
	movie routes: RateLimit, APISecurityHeaders, middleware.Compression
	unversioned movie routes add BarePayloads

Usage Example:

	engine, _ := recommend.NewEngine(cat, matrix, recommend.DefaultConfig(), logging.WithComponent("recommend"))
	handler := api.NewHandler(engine, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	http.ListenAndServe(":8000", router.SetupChi())
*/
package api

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tomtom215/cineapi/docs" // registers the OpenAPI document with swag
	"github.com/tomtom215/cineapi/internal/middleware"
	"github.com/tomtom215/cineapi/internal/models"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil ChiMiddleware uses the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)         // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(RequestLogger())              // Per-request debug log
	r.Use(chimiddleware.Recoverer)      // Recover from panics
	r.Use(router.chiMiddleware.CORS())  // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics) // Labelled by route pattern

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeMethod, "Method not allowed", nil)
	})

	r.Get("/", router.handler.Welcome)

	// ========================
	// Health Endpoints
	// ========================
	// Not rate limited so probes never see 429
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Movie Endpoints
	// ========================
	// One limiter instance so both route sets draw on the same budget
	rateLimit := router.chiMiddleware.RateLimit()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit)
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression) // promhttp compresses /metrics itself

		router.movieRoutes(r)
	})

	// Unversioned paths keep the original response shapes: bare payloads
	// and {"detail": ...} errors.
	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)
		r.Use(BarePayloads())

		router.movieRoutes(r)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

func (router *Router) movieRoutes(r chi.Router) {
	r.Get("/movies", router.handler.ListMovies)
	r.Get("/movies/{title}", router.handler.MovieDetail)
	r.Get("/recommendations/{title}", router.handler.Recommendations)
	r.Get("/popular", router.handler.Popular)
}

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cineapi/internal/catalog"
	"github.com/tomtom215/cineapi/internal/config"
	"github.com/tomtom215/cineapi/internal/recommend"
)

// MovieService is the part of recommend.Engine the handlers use.
type MovieService interface {
	Recommend(ctx context.Context, query string, limit int) (*recommend.RecommendationResult, error)
	Detail(ctx context.Context, query string) (*recommend.DetailResult, error)
	Popular(ctx context.Context, field string, limit int) ([]catalog.TitleRef, error)
	ListTitles(ctx context.Context, limit int) ([]catalog.TitleRef, error)
	Stats() recommend.Stats
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response envelope, error mapping, parameter parsing
//   - handlers_movies.go: welcome, listing, detail, recommendations, popular
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	engine    MovieService
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(engine, cfg, version)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(engine MovieService, cfg *config.Config, version string) *Handler {
	return &Handler{
		engine:    engine,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

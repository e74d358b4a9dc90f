// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/cineapi/internal/catalog"
	"github.com/tomtom215/cineapi/internal/config"
	"github.com/tomtom215/cineapi/internal/database"
	"github.com/tomtom215/cineapi/internal/logging"
	"github.com/tomtom215/cineapi/internal/metrics"
	"github.com/tomtom215/cineapi/internal/recommend"
	"github.com/tomtom215/cineapi/internal/similarity"
)

// recommendConfig maps the koanf settings onto the engine's configuration.
func recommendConfig(cfg *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		MatchThreshold:    cfg.MatchThreshold,
		DefaultLimit:      cfg.DefaultLimit,
		MaxLimit:          cfg.MaxLimit,
		ResolverCacheSize: cfg.ResolverCacheSize,
		ResolverCacheTTL:  cfg.ResolverCacheTTL,
	}
}

// loadEngine reads the dataset and the similarity matrix and builds the
// recommendation engine. Both artifacts are loaded exactly once; a failure
// here stops startup.
func loadEngine(ctx context.Context, cfg *config.Config) (*recommend.Engine, error) {
	start := time.Now()
	movies, err := database.LoadMovies(ctx, &cfg.Database, cfg.Data.DatasetPath)
	metrics.RecordArtifactLoad("dataset", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", cfg.Data.DatasetPath, err)
	}

	cat, err := catalog.New(movies)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	start = time.Now()
	matrix, err := similarity.Load(cfg.Data.SimilarityPath)
	metrics.RecordArtifactLoad("similarity", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load similarity matrix %s: %w", cfg.Data.SimilarityPath, err)
	}
	logging.Info().
		Str("path", cfg.Data.SimilarityPath).
		Int("dimension", matrix.Size()).
		Dur("duration", time.Since(start)).
		Msg("Similarity matrix loaded")

	engine, err := recommend.NewEngine(cat, matrix, recommendConfig(&cfg.Recommend), logging.WithComponent("recommend"))
	if err != nil {
		return nil, err
	}

	metrics.SetArtifactSizes(cat.Len(), matrix.Size())
	return engine, nil
}

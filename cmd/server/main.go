// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cineapi/internal/api"
	"github.com/tomtom215/cineapi/internal/config"
	"github.com/tomtom215/cineapi/internal/logging"
	"github.com/tomtom215/cineapi/internal/metrics"
	"github.com/tomtom215/cineapi/internal/supervisor"
	"github.com/tomtom215/cineapi/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const (
	uptimeInterval   = 15 * time.Second
	statsLogInterval = 15 * time.Minute
	shutdownTimeout  = 10 * time.Second
)

func main() {
	startTime := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("dataset", cfg.Data.DatasetPath).
		Str("similarity", cfg.Data.SimilarityPath).
		Msg("Starting CineAPI")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("Wildcard CORS origin configured in production")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine, err := loadEngine(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load movie data")
	}
	metrics.SetAppInfo(version)

	handler := api.NewHandler(engine, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddTelemetryService(services.NewUptimeService(startTime, uptimeInterval))
	tree.AddTelemetryService(services.NewStatsLogService(engine, statsLogInterval, logging.WithComponent("stats")))
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Dur("uptime", time.Since(startTime)).Msg("CineAPI stopped")
}

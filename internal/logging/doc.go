// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

// Package logging provides centralized zerolog-based structured logging for CineAPI.
//
// JSON output is used in production and console output in development. A
// global logger is configured once from main; components derive tagged child
// loggers with WithComponent and request handlers use Ctx to pick up the
// request ID placed in the context by the HTTP middleware.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("movies", n).Msg("Dataset loaded")
//	logging.Error().Err(err).Msg("Failed to load similarity matrix")
//	logging.Ctx(ctx).Debug().Str("query", q).Msg("Resolving title")
//
// # Configuration
//
// Environment Variables (read by the config package):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # slog Integration
//
// The supervisor library logs through slog. NewSlogLogger returns an
// slog.Logger whose records are written by zerolog:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

// Package recommend implements content-based movie recommendations.
//
// # Architecture
//
// The Engine composes three read-only components built once at startup:
//
//   - catalog.Catalog: the row-ordered movie table
//   - similarity.Matrix: the N×N precomputed item-to-item similarity scores
//   - fuzzy.Resolver: maps free-text queries onto catalog titles
//
// A recommendation lookup runs:
//
//	query -> fuzzy match -> first row with that title -> similarity row ->
//	stable descending rank -> drop self -> project rows
//
// # Row Alignment
//
// Catalog row i and matrix row/column i describe the same movie. NewEngine
// refuses to build when the catalog length and matrix dimension differ, so a
// mismatched pair of artifacts fails at startup instead of on first use.
//
// # Result Size
//
// Recommend keeps the long-standing API contract where the limit counts the
// queried movie itself: limit=5 yields at most 4 recommendations. The queried
// row is removed by index, never by position, so a tie that ranks another row
// above it cannot leak the queried movie into the results.
//
// # Determinism
//
// Equal similarity scores keep ascending row order and NaN scores rank as
// negative infinity, so repeated calls against the same artifacts return
// identical results.
//
// # Errors
//
// Every error returned by Engine methods matches exactly one of ErrNotFound,
// ErrInvalidParameter or ErrDataIntegrity under errors.Is. Context
// cancellation errors are returned unwrapped.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, matrix, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    log.Fatal().Err(err).Msg("artifacts disagree")
//	}
//	res, err := engine.Recommend(ctx, "the dark knight", 5)
package recommend

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

// Package database reads the movie dataset artifact through an in-memory
// DuckDB instance.
//
// DuckDB handles CSV dialect detection, quoting, gzip and Parquet decoding.
// The file is staged into a table, its columns are matched to Movie fields by
// name (case-insensitive, with a few aliases such as title for
// original_title), and rows are scanned back in file order. Row order matters:
// row i of the dataset is row and column i of the similarity matrix.
//
// Column mapping:
//   - id (or movie_id): required, BIGINT
//   - original_title (or title): required
//   - cast, director, keywords, genres: optional text, NULL becomes ""
//   - runtime, release_year: optional integers, NULL or unparseable becomes nil
//   - vote_average (or score): optional DOUBLE
//   - release_year falls back to year(release_date) when only the date is present
//
// The database is used only during startup:
//
//	movies, err := database.LoadMovies(ctx, &cfg.Database, cfg.Data.DatasetPath)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load dataset")
//	}
package database

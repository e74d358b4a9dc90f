// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package database

import (
	"errors"
	"io"
)

var (
	// ErrUnsupportedFormat is returned for dataset files that are neither CSV nor Parquet.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrMissingColumn is returned when a required dataset column is absent.
	ErrMissingColumn = errors.New("required dataset column missing")

	// ErrInvalidRow is returned when a dataset row cannot be converted to a movie.
	ErrInvalidRow = errors.New("invalid dataset row")
)

// closeQuietly closes a resource and explicitly ignores any error.
// Use this for cleanup in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}

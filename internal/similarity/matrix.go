// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

// Package similarity holds the precomputed item-to-item similarity matrix.
//
// Entry (i, j) scores catalog row i against catalog row j. The matrix is
// loaded once at startup and never mutated, so concurrent readers need no
// locking.
package similarity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArtifact is returned when an artifact cannot be decoded into a
	// square matrix.
	ErrInvalidArtifact = errors.New("invalid similarity artifact")

	// ErrIndexOutOfRange is returned for a row or column outside [0, Size()).
	ErrIndexOutOfRange = errors.New("similarity index out of range")
)

// Matrix is a dense N×N matrix stored row-major.
type Matrix struct {
	n    int
	data []float64
}

// New wraps row-major data as an n×n matrix. data is not copied.
func New(n int, data []float64) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative dimension %d", ErrInvalidArtifact, n)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: %d values cannot form a %dx%d matrix", ErrInvalidArtifact, len(data), n, n)
	}
	return &Matrix{n: n, data: data}, nil
}

// FromRows copies a slice of rows into a Matrix. Every row must have
// len(rows) entries.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidArtifact, i, len(row), n)
		}
		data = append(data, row...)
	}
	return New(n, data)
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// Row returns the similarity vector of row i against every row.
// The returned slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("%w: row %d not in [0, %d)", ErrIndexOutOfRange, i, m.n)
	}
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n], nil
}

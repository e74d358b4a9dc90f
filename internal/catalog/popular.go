// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrUnknownSortField is returned by Popular for a field outside SortFields.
	ErrUnknownSortField = errors.New("unknown sort field")

	// ErrInvalidLimit is returned by Popular for a limit below one.
	ErrInvalidLimit = errors.New("limit must be at least 1")
)

// SortField names a column the popularity ranking can order by.
type SortField string

// Accepted sort fields. "score" and "title" are aliases for the
// vote_average and original_title columns.
const (
	SortByScore       SortField = "score"
	SortByTitle       SortField = "title"
	SortByReleaseYear SortField = "release_year"
)

// SortFields lists every accepted SortField, in documentation order.
var SortFields = []SortField{SortByScore, SortByTitle, SortByReleaseYear}

// Column returns the dataset column a sort field resolves to.
func (f SortField) Column() (string, error) {
	switch f {
	case SortByScore:
		return "vote_average", nil
	case SortByTitle:
		return "original_title", nil
	case SortByReleaseYear:
		return "release_year", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortField, string(f))
	}
}

// ParseSortField converts user input into a SortField.
func ParseSortField(s string) (SortField, error) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	if _, err := f.Column(); err != nil {
		return "", err
	}
	return f, nil
}

// Popular ranks the catalog by field, descending, and returns the top limit
// rows.
//
// The sort is stable: rows with equal values keep catalog order. Rows missing
// the sort value rank after every row that has one.
func (c *Catalog) Popular(field SortField, limit int) ([]TitleRef, error) {
	if _, err := field.Column(); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	order := make([]int, len(c.movies))
	for i := range order {
		order[i] = i
	}

	less := c.descending(field)
	sort.SliceStable(order, func(a, b int) bool {
		return less(order[a], order[b])
	})

	if limit > len(order) {
		limit = len(order)
	}

	refs := make([]TitleRef, limit)
	for i := 0; i < limit; i++ {
		m := c.movies[order[i]]
		refs[i] = TitleRef{ID: m.ID, Title: m.Title}
	}
	return refs, nil
}

// descending returns a strict "ranks before" relation over row indexes.
func (c *Catalog) descending(field SortField) func(i, j int) bool {
	switch field {
	case SortByScore:
		return func(i, j int) bool {
			return floatBefore(c.movies[i].VoteAverage, c.movies[j].VoteAverage)
		}
	case SortByReleaseYear:
		return func(i, j int) bool {
			return intBefore(c.movies[i].ReleaseYear, c.movies[j].ReleaseYear)
		}
	default:
		return func(i, j int) bool {
			return c.movies[i].Title > c.movies[j].Title
		}
	}
}

// floatBefore treats NaN as missing.
func floatBefore(a, b *float64) bool {
	switch {
	case a == nil || math.IsNaN(*a):
		return false
	case b == nil || math.IsNaN(*b):
		return true
	default:
		return *a > *b
	}
}

func intBefore(a, b *int) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}

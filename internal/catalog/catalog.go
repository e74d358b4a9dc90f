// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

// Package catalog holds the in-memory movie dataset.
//
// A Catalog is an ordered, immutable sequence of Movie rows indexed 0..N-1.
// Row order is significant: position i in the catalog is row and column i of
// the similarity matrix, so a Catalog is never re-sorted after construction.
// All methods are safe for concurrent use because nothing is mutated after New
// returns.
package catalog

import (
	"errors"
	"fmt"

	"github.com/tomtom215/cineapi/internal/fuzzy"
)

// Unbounded is the limit value that means "return every row".
// Any negative limit is treated the same way.
const Unbounded = -1

var (
	// ErrTitleNotFound is returned when no row carries the requested title.
	ErrTitleNotFound = errors.New("title not found")

	// ErrIndexOutOfRange is returned for a row index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("row index out of range")

	// ErrDuplicateID is returned by New when two rows share an identifier.
	ErrDuplicateID = errors.New("duplicate movie id")

	// ErrEmptyTitle is returned by New when a row has a blank title.
	ErrEmptyTitle = errors.New("empty movie title")
)

// Movie is one row of the dataset.
//
// Optional numeric columns are pointers so that a missing value (NULL in the
// source file) is distinguishable from zero.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"original_title"`
	Cast        string   `json:"cast,omitempty"`
	Director    string   `json:"director,omitempty"`
	Keywords    string   `json:"keywords,omitempty"`
	Genres      string   `json:"genres,omitempty"`
	Runtime     *int     `json:"runtime,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
	ReleaseYear *int     `json:"release_year,omitempty"`
}

// TitleRef is the (id, title) projection used by listings.
type TitleRef struct {
	ID    int64  `json:"id"`
	Title string `json:"original_title"`
}

// Catalog is the immutable, row-ordered movie table.
type Catalog struct {
	movies []Movie

	// titles[i] is movies[i].Title, kept as a flat slice for the resolver
	titles []string

	// byTitle maps a normalized title to every row carrying it, in row order
	byTitle map[string][]int
}

// NormalizeTitle returns the key used for exact title lookups. It is the
// same key the fuzzy resolver checks before scoring, so a query that finds
// a row here always resolves to that row.
func NormalizeTitle(title string) string {
	return fuzzy.ExactKey(title)
}

// New builds a Catalog from rows in their artifact order.
// The slice is copied; callers may reuse it.
func New(movies []Movie) (*Catalog, error) {
	c := &Catalog{
		movies:  make([]Movie, len(movies)),
		titles:  make([]string, len(movies)),
		byTitle: make(map[string][]int, len(movies)),
	}
	copy(c.movies, movies)

	seen := make(map[int64]int, len(movies))
	for i := range c.movies {
		m := &c.movies[i]
		if prev, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("%w: id %d at rows %d and %d", ErrDuplicateID, m.ID, prev, i)
		}
		seen[m.ID] = i

		key := NormalizeTitle(m.Title)
		if key == "" {
			return nil, fmt.Errorf("%w: row %d (id %d)", ErrEmptyTitle, i, m.ID)
		}
		c.titles[i] = m.Title
		c.byTitle[key] = append(c.byTitle[key], i)
	}

	return c, nil
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Titles returns every title in row order.
// The returned slice is shared and must not be modified.
func (c *Catalog) Titles() []string {
	return c.titles
}

// ListTitles returns the first limit rows as (id, title) pairs in catalog
// order. A negative limit (see Unbounded) returns every row.
func (c *Catalog) ListTitles(limit int) []TitleRef {
	n := len(c.movies)
	if limit >= 0 && limit < n {
		n = limit
	}

	refs := make([]TitleRef, n)
	for i := 0; i < n; i++ {
		refs[i] = TitleRef{ID: c.movies[i].ID, Title: c.movies[i].Title}
	}
	return refs
}

// FindByExactTitle returns every row whose normalized title equals the
// normalized argument, in row order. The result is empty when none match.
func (c *Catalog) FindByExactTitle(title string) []Movie {
	rows := c.byTitle[NormalizeTitle(title)]
	out := make([]Movie, len(rows))
	for i, idx := range rows {
		out[i] = c.movies[idx]
	}
	return out
}

// RowIndexOf returns the position of the first row carrying title.
func (c *Catalog) RowIndexOf(title string) (int, error) {
	rows := c.byTitle[NormalizeTitle(title)]
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrTitleNotFound, title)
	}
	return rows[0], nil
}

// RecordAt returns the row at index.
func (c *Catalog) RecordAt(index int) (Movie, error) {
	if index < 0 || index >= len(c.movies) {
		return Movie{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.movies))
	}
	return c.movies[index], nil
}

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package recommend

import (
	"errors"

	"github.com/tomtom215/cineapi/internal/catalog"
)

var (
	// ErrNotFound means the query matched no title closely enough.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter means a limit or sort field is outside its accepted range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDataIntegrity means the catalog and similarity matrix disagree.
	ErrDataIntegrity = errors.New("data integrity error")
)

// Recommendation is one ranked result.
type Recommendation struct {
	Movie catalog.Movie

	// Similarity is the matrix score against the queried row.
	Similarity float64
}

// RecommendationResult is the outcome of Engine.Recommend.
type RecommendationResult struct {
	// Query is the caller's input, unmodified.
	Query string

	// MatchedTitle is the catalog title the query resolved to.
	MatchedTitle string

	// MatchScore is the 0-100 fuzzy score of MatchedTitle against Query.
	MatchScore int

	// RowIndex is the catalog row used as the similarity source.
	RowIndex int

	// Items are ranked by descending similarity.
	Items []Recommendation
}

// DetailResult is the outcome of Engine.Detail.
type DetailResult struct {
	Query        string
	MatchedTitle string
	MatchScore   int

	// Movies holds every row carrying MatchedTitle, in catalog order.
	Movies []catalog.Movie
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	CatalogSize     int
	MatrixDimension int

	Recommendations int64
	Details         int64
	NotFound        int64

	ResolverCacheHits   int64
	ResolverCacheMisses int64
	ResolverCacheSize   int
}

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package validation

import "fmt"

// MaxTitleLength bounds title path parameters.
const MaxTitleLength = 500

// ListMoviesRequest holds the parameters of GET /api/v1/movies.
// A limit of -1 lists the whole catalog.
type ListMoviesRequest struct {
	Limit int `query:"limit" validate:"min=-1"`
}

// MovieDetailRequest holds the parameters of GET /api/v1/movies/{title}.
type MovieDetailRequest struct {
	Title string `path:"title" validate:"notblank,max=500"`
}

// RecommendationsRequest holds the parameters of
// GET /api/v1/recommendations/{title}. The upper bound on Limit is
// configurable and enforced by the engine.
type RecommendationsRequest struct {
	Title string `path:"title" validate:"notblank,max=500"`
	Limit int    `query:"limit" validate:"min=1"`
}

// PopularRequest holds the parameters of GET /api/v1/popular.
type PopularRequest struct {
	SortBy string `query:"sortby" validate:"oneof=score title release_year"`
	Limit  int    `query:"limit" validate:"min=1"`
}

// NotANumber reports a query parameter that could not be parsed as an integer.
func NotANumber(field, raw string) *RequestValidationError {
	return &RequestValidationError{
		errors: []ValidationError{
			{
				field:   field,
				tag:     "numeric",
				value:   raw,
				message: fmt.Sprintf(errorMessageTemplates["numeric"], field),
			},
		},
	}
}

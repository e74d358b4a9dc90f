// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

// Package validation provides request validation using go-playground/validator v10.
//
// A single validator instance is built on first use and shared by every
// handler. Field names in messages come from the `query` or `path` struct
// tag, so a failure reads "limit must be at least 1" rather than naming the
// Go field.
//
// # Request Types
//
//   - ListMoviesRequest: limit >= -1 (-1 lists everything)
//   - MovieDetailRequest: non-blank title, at most 500 characters
//   - RecommendationsRequest: non-blank title, limit >= 1
//   - PopularRequest: sortby in {score, title, release_year}, limit >= 1
//
// # Usage
//
//	req := validation.PopularRequest{SortBy: sortBy, Limit: limit}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// Every failure maps to the VALIDATION_ERROR code.
//
// # Custom Validators
//
//   - notblank: rejects strings that are empty after trimming whitespace
package validation

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package models defines the JSON shapes of the HTTP API.

Every /api/v1 endpoint wraps its payload in APIResponse. The payload types
(MovieListResponse, MovieDetailResponse, RecommendationsResponse,
PopularResponse, HealthStatus) are built from engine results by the New*
constructors so handlers never assemble maps by hand.

Listings and recommendations carry {id, original_title}; the popularity
ranking carries {id, title}. Detail responses return full catalog rows.
*/
package models

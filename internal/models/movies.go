// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package models

import (
	"github.com/tomtom215/cineapi/internal/catalog"
	"github.com/tomtom215/cineapi/internal/recommend"
)

// WelcomeResponse is returned by GET /.
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to CineAPI!"`
}

// MovieRef identifies a movie in listings and recommendations.
type MovieRef struct {
	ID            int64  `json:"id" example:"19995"`
	OriginalTitle string `json:"original_title" example:"avatar"`
}

// MovieListResponse is returned by GET /api/v1/movies.
type MovieListResponse struct {
	Movies []MovieRef `json:"movies"`
}

// MovieDetailResponse is returned by GET /api/v1/movies/{title}.
// Movie holds every catalog row that carries the matched title.
type MovieDetailResponse struct {
	Query        string          `json:"query" example:"avatr"`
	MatchedTitle string          `json:"matched_title" example:"avatar"`
	MatchScore   int             `json:"match_score" example:"91"`
	Movie        []catalog.Movie `json:"movie"`
}

// RecommendationsResponse is returned by GET /api/v1/recommendations/{title}.
type RecommendationsResponse struct {
	Query           string     `json:"query" example:"the dark knight"`
	MatchedTitle    string     `json:"matched_title" example:"the dark knight"`
	MatchScore      int        `json:"match_score" example:"100"`
	Recommendations []MovieRef `json:"recommendations"`
}

// PopularMovie is one row of the popularity ranking.
type PopularMovie struct {
	ID    int64  `json:"id" example:"278"`
	Title string `json:"title" example:"the shawshank redemption"`
}

// PopularResponse is returned by GET /api/v1/popular.
type PopularResponse struct {
	SortBy string         `json:"sortby" example:"score"`
	Movies []PopularMovie `json:"movies"`
}

// NewMovieListResponse projects title refs for the movies listing.
func NewMovieListResponse(refs []catalog.TitleRef) MovieListResponse {
	movies := make([]MovieRef, len(refs))
	for i, ref := range refs {
		movies[i] = MovieRef{ID: ref.ID, OriginalTitle: ref.Title}
	}
	return MovieListResponse{Movies: movies}
}

// NewMovieDetailResponse converts an engine detail result.
func NewMovieDetailResponse(res *recommend.DetailResult) MovieDetailResponse {
	return MovieDetailResponse{
		Query:        res.Query,
		MatchedTitle: res.MatchedTitle,
		MatchScore:   res.MatchScore,
		Movie:        res.Movies,
	}
}

// NewRecommendationsResponse converts an engine recommendation result.
// Ranking order is preserved.
func NewRecommendationsResponse(res *recommend.RecommendationResult) RecommendationsResponse {
	items := make([]MovieRef, len(res.Items))
	for i, item := range res.Items {
		items[i] = MovieRef{ID: item.Movie.ID, OriginalTitle: item.Movie.Title}
	}
	return RecommendationsResponse{
		Query:           res.Query,
		MatchedTitle:    res.MatchedTitle,
		MatchScore:      res.MatchScore,
		Recommendations: items,
	}
}

// NewPopularResponse projects ranked title refs.
func NewPopularResponse(sortBy string, refs []catalog.TitleRef) PopularResponse {
	movies := make([]PopularMovie, len(refs))
	for i, ref := range refs {
		movies[i] = PopularMovie{ID: ref.ID, Title: ref.Title}
	}
	return PopularResponse{SortBy: sortBy, Movies: movies}
}

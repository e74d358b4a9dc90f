// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cineapi/internal/catalog"
	"github.com/tomtom215/cineapi/internal/logging"
	"github.com/tomtom215/cineapi/internal/models"
	"github.com/tomtom215/cineapi/internal/validation"
)

// Welcome handles GET /
//
// @Summary Welcome message
// @Tags Core
// @Produce json
// @Success 200 {object} models.WelcomeResponse
// @Router / [get]
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.WelcomeResponse{Message: "Welcome to CineAPI!"})
}

// ListMovies handles GET /api/v1/movies
//
// @Summary List movies
// @Description Returns id and title pairs in catalog order. limit=-1 returns the whole catalog.
// @Tags Movies
// @Produce json
// @Param limit query int false "Maximum number of movies, -1 for all" default(-1) minimum(-1)
// @Success 200 {object} models.APIResponse{data=models.MovieListResponse}
// @Failure 400 {object} models.APIResponse "Invalid limit"
// @Router /api/v1/movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, apiErr := queryInt(r, "limit", h.config.API.ListDefaultLimit)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	req := validation.ListMoviesRequest{Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	refs, err := h.engine.ListTitles(r.Context(), req.Limit)
	if err != nil {
		respondEngineError(w, r, "", err)
		return
	}

	respondSuccess(w, r, models.NewMovieListResponse(refs), start)
}

// MovieDetail handles GET /api/v1/movies/{title}
//
// @Summary Get movie details
// @Description Fuzzy matches the title against the catalog and returns every movie carrying the matched title.
// @Tags Movies
// @Produce json
// @Param title path string true "Movie title, matched case-insensitively with typo tolerance"
// @Success 200 {object} models.APIResponse{data=models.MovieDetailResponse}
// @Failure 400 {object} models.APIResponse "Invalid title"
// @Failure 404 {object} models.APIResponse "No title scored at or above the match threshold"
// @Router /api/v1/movies/{title} [get]
func (h *Handler) MovieDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.MovieDetailRequest{Title: titleParam(r)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	res, err := h.engine.Detail(r.Context(), req.Title)
	if err != nil {
		respondEngineError(w, r, req.Title, err)
		return
	}

	respondSuccess(w, r, models.NewMovieDetailResponse(res), start)
}

// Recommendations handles GET /api/v1/recommendations/{title}
//
// @Summary Get similar movies
// @Description Resolves the title by fuzzy match and ranks the catalog by content similarity. The matched movie counts toward limit, so limit=5 returns at most 4 recommendations.
// @Tags Recommendations
// @Produce json
// @Param title path string true "Movie title"
// @Param limit query int false "Result slots including the matched movie" default(5) minimum(1) maximum(10)
// @Success 200 {object} models.APIResponse{data=models.RecommendationsResponse}
// @Failure 400 {object} models.APIResponse "Invalid title or limit"
// @Failure 404 {object} models.APIResponse "No title scored at or above the match threshold"
// @Failure 500 {object} models.APIResponse "Catalog and similarity matrix disagree"
// @Router /api/v1/recommendations/{title} [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, apiErr := queryInt(r, "limit", h.config.Recommend.DefaultLimit)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	req := validation.RecommendationsRequest{Title: titleParam(r), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	res, err := h.engine.Recommend(r.Context(), req.Title, req.Limit)
	if err != nil {
		respondEngineError(w, r, req.Title, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("query", sanitizeLogValue(req.Title)).
		Str("matched_title", res.MatchedTitle).
		Int("results", len(res.Items)).
		Msg("Recommendations served")

	respondSuccess(w, r, models.NewRecommendationsResponse(res), start)
}

// Popular handles GET /api/v1/popular
//
// @Summary Get popular movies
// @Description Ranks the catalog by the chosen field, descending, and returns the top limit movies. Ties keep catalog order and missing values rank last.
// @Tags Movies
// @Produce json
// @Param sortby query string false "Ranking field" Enums(score, title, release_year) default(score)
// @Param limit query int false "Number of movies" default(10) minimum(1)
// @Success 200 {object} models.APIResponse{data=models.PopularResponse}
// @Failure 400 {object} models.APIResponse "Invalid sortby or limit"
// @Router /api/v1/popular [get]
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, apiErr := queryInt(r, "limit", h.config.API.PopularDefaultLimit)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	req := validation.PopularRequest{
		SortBy: queryString(r, "sortby", string(catalog.SortByScore)),
		Limit:  limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	refs, err := h.engine.Popular(r.Context(), req.SortBy, req.Limit)
	if err != nil {
		respondEngineError(w, r, req.SortBy, err)
		return
	}

	respondSuccess(w, r, models.NewPopularResponse(req.SortBy, refs), start)
}

// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cineapi/internal/catalog"
	"github.com/tomtom215/cineapi/internal/config"
	"github.com/tomtom215/cineapi/internal/models"
	"github.com/tomtom215/cineapi/internal/recommend"
	"github.com/tomtom215/cineapi/internal/similarity"
)

func f64(v float64) *float64 { return &v }

// newTestEngine builds a six-movie engine. Row 2 ("Alien") ties with row 0
// ("Heat") at 1.0, the same score as its self-similarity.
func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	cat, err := catalog.New([]catalog.Movie{
		{ID: 10, Title: "Heat", VoteAverage: f64(7.9)},
		{ID: 20, Title: "Batman", VoteAverage: f64(7.0)},
		{ID: 30, Title: "Alien", VoteAverage: f64(8.5)},
		{ID: 40, Title: "Batman", VoteAverage: f64(6.2)},
		{ID: 50, Title: "Aliens", VoteAverage: f64(8.4)},
		{ID: 60, Title: "Se7en", VoteAverage: f64(8.6)},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	m, err := similarity.FromRows([][]float64{
		{1, 0.2, 1.0, 0.1, 0.3, 0.0},
		{0.2, 1, 0.5, 0.9, 0.5, 0.1},
		{1.0, 0.5, 1, 0.3, 0.8, 0.0},
		{0.1, 0.9, 0.3, 1, 0.2, 0.1},
		{0.3, 0.5, 0.8, 0.2, 1, 0.4},
		{0.0, 0.1, 0.0, 0.1, 0.4, 1},
	})
	if err != nil {
		t.Fatalf("similarity.FromRows() error = %v", err)
	}

	engine, err := recommend.NewEngine(cat, m, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("recommend.NewEngine() error = %v", err)
	}
	return engine
}

func testConfig() *config.Config {
	return &config.Config{
		Recommend: config.RecommendConfig{DefaultLimit: 5, MaxLimit: 10},
		API:       config.APIConfig{PopularDefaultLimit: 10, ListDefaultLimit: -1},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"http://localhost:3000"},
			RateLimitDisabled: true,
		},
	}
}

// newTestServer serves the full router over a fixture engine.
func newTestServer(t *testing.T, svc MovieService) http.Handler {
	t.Helper()
	cfg := testConfig()
	handler := NewHandler(svc, cfg, "test")
	return NewRouter(handler, NewChiMiddlewareFromConfig(&cfg.Security)).SetupChi()
}

// envelope decodes an APIResponse whose data is of type T.
type envelope[T any] struct {
	Status   string           `json:"status"`
	Data     T                `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func doGet[T any](t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope[T]) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("GET %s: invalid JSON %q: %v", target, rec.Body.String(), err)
	}
	return rec, body
}

func refIDs(refs []models.MovieRef) []int64 {
	ids := make([]int64, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWelcome(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != `{"message":"Welcome to CineAPI!"}` {
		t.Errorf("body = %s", got)
	}
}

func TestListMovies(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	tests := []struct {
		name   string
		target string
		want   []int64
	}{
		{"default lists all", "/api/v1/movies", []int64{10, 20, 30, 40, 50, 60}},
		{"explicit unbounded", "/api/v1/movies?limit=-1", []int64{10, 20, 30, 40, 50, 60}},
		{"first three in catalog order", "/api/v1/movies?limit=3", []int64{10, 20, 30}},
		{"zero", "/api/v1/movies?limit=0", []int64{}},
		{"beyond catalog", "/api/v1/movies?limit=100", []int64{10, 20, 30, 40, 50, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doGet[models.MovieListResponse](t, srv, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			if body.Status != models.StatusSuccess {
				t.Errorf("status field = %q", body.Status)
			}
			if got := refIDs(body.Data.Movies); !equalIDs(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListMovies_InvalidLimit(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	for _, target := range []string{"/api/v1/movies?limit=-2", "/api/v1/movies?limit=all"} {
		rec, body := doGet[any](t, srv, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s: status = %d, want 400", target, rec.Code)
		}
		if body.Error == nil || body.Error.Code != models.ErrCodeValidation {
			t.Errorf("GET %s: error = %+v, want VALIDATION_ERROR", target, body.Error)
		}
	}
}

func TestMovieDetail(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	rec, body := doGet[models.MovieDetailResponse](t, srv, "/api/v1/movies/btman")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if body.Data.MatchedTitle != "Batman" {
		t.Errorf("matched_title = %q, want Batman", body.Data.MatchedTitle)
	}
	if len(body.Data.Movie) != 2 || body.Data.Movie[0].ID != 20 || body.Data.Movie[1].ID != 40 {
		t.Errorf("movies = %+v, want ids [20 40]", body.Data.Movie)
	}
}

func TestMovieDetail_EscapedTitle(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	rec, body := doGet[models.MovieDetailResponse](t, srv, "/api/v1/movies/se7en%20")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if body.Data.MatchedTitle != "Se7en" || body.Data.Query != "se7en " {
		t.Errorf("query = %q, matched = %q", body.Data.Query, body.Data.MatchedTitle)
	}
}

func TestMovieDetail_NotFound(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	rec, body := doGet[any](t, srv, "/api/v1/movies/qqqqqqqqqq")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body.Status != models.StatusError || body.Error == nil || body.Error.Code != models.ErrCodeNotFound {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("errors should not be cached, got %q", rec.Header().Get("Cache-Control"))
	}
}

func TestRecommendations(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	tests := []struct {
		name   string
		target string
		want   []int64
	}{
		// Heat ties with Alien's self score; self is still excluded
		{"default limit keeps off-by-one", "/api/v1/recommendations/Alien", []int64{10, 50, 20, 40}},
		{"limit 3", "/api/v1/recommendations/alien?limit=3", []int64{10, 50}},
		{"limit 1 is empty", "/api/v1/recommendations/alien?limit=1", []int64{}},
		{"max limit", "/api/v1/recommendations/alien?limit=10", []int64{10, 50, 20, 40, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doGet[models.RecommendationsResponse](t, srv, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if body.Data.MatchedTitle != "Alien" {
				t.Errorf("matched_title = %q", body.Data.MatchedTitle)
			}
			got := refIDs(body.Data.Recommendations)
			if !equalIDs(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
			for _, id := range got {
				if id == 30 {
					t.Error("recommendations include the queried movie")
				}
			}
		})
	}
}

func TestRecommendations_Errors(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"no match", "/api/v1/recommendations/zzzzzzzzzzzz", http.StatusNotFound, models.ErrCodeNotFound},
		{"limit zero", "/api/v1/recommendations/alien?limit=0", http.StatusBadRequest, models.ErrCodeValidation},
		{"limit above max", "/api/v1/recommendations/alien?limit=11", http.StatusBadRequest, models.ErrCodeValidation},
		{"limit not a number", "/api/v1/recommendations/alien?limit=five", http.StatusBadRequest, models.ErrCodeValidation},
		{"blank title", "/api/v1/recommendations/%20%20", http.StatusBadRequest, models.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doGet[any](t, srv, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if body.Error == nil || body.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", body.Error, tt.wantCode)
			}
		})
	}
}

func TestRecommendations_Deterministic(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	_, first := doGet[models.RecommendationsResponse](t, srv, "/api/v1/recommendations/heat?limit=6")
	for i := 0; i < 5; i++ {
		_, again := doGet[models.RecommendationsResponse](t, srv, "/api/v1/recommendations/heat?limit=6")
		if !equalIDs(refIDs(first.Data.Recommendations), refIDs(again.Data.Recommendations)) {
			t.Fatalf("run %d differs: %v vs %v", i, refIDs(first.Data.Recommendations), refIDs(again.Data.Recommendations))
		}
	}
}

func TestPopular(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	tests := []struct {
		name   string
		target string
		want   []int64
	}{
		{"default is score", "/api/v1/popular?limit=3", []int64{60, 30, 50}},
		{"title descending", "/api/v1/popular?sortby=title&limit=2", []int64{60, 10}},
		{"default limit", "/api/v1/popular", []int64{60, 30, 50, 10, 20, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doGet[models.PopularResponse](t, srv, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			got := make([]int64, len(body.Data.Movies))
			for i, m := range body.Data.Movies {
				got[i] = m.ID
			}
			if !equalIDs(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPopular_InvalidParams(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	for _, target := range []string{
		"/api/v1/popular?sortby=budget",
		"/api/v1/popular?limit=0",
		"/api/v1/popular?limit=1.5",
	} {
		rec, body := doGet[any](t, srv, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s: status = %d, want 400", target, rec.Code)
		}
		if body.Error == nil || body.Error.Code != models.ErrCodeValidation {
			t.Errorf("GET %s: error = %+v", target, body.Error)
		}
	}
}

// stubService returns a fixed error from every engine call.
type stubService struct {
	err   error
	stats recommend.Stats
}

func (s *stubService) Recommend(context.Context, string, int) (*recommend.RecommendationResult, error) {
	return nil, s.err
}

func (s *stubService) Detail(context.Context, string) (*recommend.DetailResult, error) {
	return nil, s.err
}

func (s *stubService) Popular(context.Context, string, int) ([]catalog.TitleRef, error) {
	return nil, s.err
}

func (s *stubService) ListTitles(context.Context, int) ([]catalog.TitleRef, error) {
	return nil, s.err
}

func (s *stubService) Stats() recommend.Stats { return s.stats }

func TestEngineErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("%w: below threshold", recommend.ErrNotFound), http.StatusNotFound, models.ErrCodeNotFound},
		{"invalid", fmt.Errorf("%w: limit", recommend.ErrInvalidParameter), http.StatusBadRequest, models.ErrCodeValidation},
		{"integrity", fmt.Errorf("%w: row 7", recommend.ErrDataIntegrity), http.StatusInternalServerError, models.ErrCodeDataIntegrity},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable, models.ErrCodeUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError, models.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &stubService{err: tt.err})
			rec, body := doGet[any](t, srv, "/api/v1/recommendations/alien")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if body.Error == nil || body.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", body.Error, tt.wantCode)
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := doGet[models.HealthStatus](t, srv, "/api/v1/health/live")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body.Data.Status != "alive" || body.Data.Version != "test" {
		t.Errorf("unexpected health: %+v", body.Data)
	}
}

func TestHealthReady(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	rec, body := doGet[models.HealthStatus](t, srv, "/api/v1/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if body.Data.CatalogSize != 6 || body.Data.MatrixDimension != 6 {
		t.Errorf("unexpected sizes: %+v", body.Data)
	}
}

func TestHealthReady_NotReady(t *testing.T) {
	tests := []struct {
		name string
		svc  MovieService
	}{
		{"no engine", nil},
		{"empty catalog", &stubService{}},
		{"misaligned", &stubService{stats: recommend.Stats{CatalogSize: 10, MatrixDimension: 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.svc)
			rec, body := doGet[any](t, srv, "/api/v1/health/ready")
			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("status = %d, want 503", rec.Code)
			}
			if body.Error == nil || body.Error.Code != models.ErrCodeUnavailable {
				t.Errorf("error = %+v", body.Error)
			}
		})
	}
}

func TestRespondSuccess_Metadata(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	before := time.Now().UTC().Add(-time.Second)
	respondSuccess(rec, req, map[string]int{"n": 1}, time.Now())

	var body envelope[map[string]int]
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Metadata.Timestamp.Before(before) {
		t.Errorf("timestamp %v is stale", body.Metadata.Timestamp)
	}
	if body.Data["n"] != 1 {
		t.Errorf("data = %v", body.Data)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("expected ETag on success")
	}
}

func TestRespondJSON_NotModified(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 should have no body, got %q", rec.Body.String())
	}
}

func TestEnvelopedRoute_ETagIgnoresMetadata(t *testing.T) {
	srv := newTestServer(t, newTestEngine(t))
	const target = "/api/v1/movies?limit=3"

	first := httptest.NewRecorder()
	srv.ServeHTTP(first, httptest.NewRequest(http.MethodGet, target, nil))
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", first.Code)
	}
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag")
	}

	time.Sleep(2 * time.Millisecond)
	second := httptest.NewRecorder()
	srv.ServeHTTP(second, httptest.NewRequest(http.MethodGet, target, nil))
	if got := second.Header().Get("ETag"); got != etag {
		t.Errorf("ETag changed between identical requests: %s then %s", etag, got)
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 should have no body, got %q", rec.Body.String())
	}

	other := httptest.NewRecorder()
	srv.ServeHTTP(other, httptest.NewRequest(http.MethodGet, "/api/v1/movies?limit=2", nil))
	if other.Header().Get("ETag") == etag {
		t.Error("different payloads must not share an ETag")
	}
}

func TestEtagMatches(t *testing.T) {
	const etag = `"abc"`
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{`"abc"`, true},
		{`W/"abc"`, true},
		{`"x", "abc"`, true},
		{"*", true},
		{`"abcd"`, false},
	}

	for _, tt := range tests {
		if got := etagMatches(tt.header, etag); got != tt.want {
			t.Errorf("etagMatches(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"avatar", "avatar"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"amélie", "amélie"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

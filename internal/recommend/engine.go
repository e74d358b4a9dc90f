// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cineapi/internal/catalog"
	"github.com/tomtom215/cineapi/internal/fuzzy"
	"github.com/tomtom215/cineapi/internal/metrics"
	"github.com/tomtom215/cineapi/internal/similarity"
)

// Engine answers recommendation, detail, popularity and listing queries
// against one immutable catalog/matrix pair. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog  *catalog.Catalog
	matrix   *similarity.Matrix
	resolver *fuzzy.Resolver

	recommendations atomic.Int64
	details         atomic.Int64
	notFound        atomic.Int64
}

// NewEngine validates that cat and matrix describe the same rows and builds
// the title resolver. A size mismatch returns ErrDataIntegrity.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, matrix *similarity.Matrix, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil || matrix == nil {
		return nil, fmt.Errorf("%w: catalog and similarity matrix are required", ErrDataIntegrity)
	}
	if cat.Len() != matrix.Size() {
		return nil, fmt.Errorf("%w: catalog has %d rows but similarity matrix is %dx%d",
			ErrDataIntegrity, cat.Len(), matrix.Size(), matrix.Size())
	}

	resolver, err := fuzzy.NewResolver(cat.Titles(), cfg.resolverConfig())
	if err != nil {
		return nil, fmt.Errorf("build title resolver: %w", err)
	}

	e := &Engine{
		config:   cfg,
		logger:   logger,
		catalog:  cat,
		matrix:   matrix,
		resolver: resolver,
	}

	e.logger.Info().
		Int("rows", cat.Len()).
		Int("match_threshold", cfg.MatchThreshold).
		Int("max_limit", cfg.MaxLimit).
		Msg("Recommendation engine ready")

	return e, nil
}

// Recommend resolves query to a catalog row and returns the rows most similar
// to it, ranked by descending score. limit counts the queried row, so at most
// limit-1 items are returned.
func (e *Engine) Recommend(ctx context.Context, query string, limit int) (res *RecommendationResult, err error) {
	defer e.observe("recommend", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit < 1 || limit > e.config.MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d, got %d", ErrInvalidParameter, e.config.MaxLimit, limit)
	}
	e.recommendations.Add(1)

	match, err := e.resolve(query)
	if err != nil {
		return nil, err
	}

	rowIdx, err := e.catalog.RowIndexOf(match.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: resolved title %q has no row: %w", ErrDataIntegrity, match.Title, err)
	}

	row, err := e.matrix.Row(rowIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataIntegrity, err)
	}

	ranked := topK(row, limit-1, rowIdx)

	items := make([]Recommendation, 0, len(ranked))
	for _, idx := range ranked {
		movie, err := e.catalog.RecordAt(idx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataIntegrity, err)
		}
		items = append(items, Recommendation{Movie: movie, Similarity: row[idx]})
	}

	e.logger.Debug().
		Str("query", query).
		Str("matched_title", match.Title).
		Int("score", match.Score).
		Int("row", rowIdx).
		Int("results", len(items)).
		Msg("Recommendations computed")
	metrics.RecordRecommendation(len(items), match.Score)

	return &RecommendationResult{
		Query:        query,
		MatchedTitle: match.Title,
		MatchScore:   match.Score,
		RowIndex:     rowIdx,
		Items:        items,
	}, nil
}

// Detail resolves query and returns every row carrying the matched title.
func (e *Engine) Detail(ctx context.Context, query string) (res *DetailResult, err error) {
	defer e.observe("detail", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.details.Add(1)

	match, err := e.resolve(query)
	if err != nil {
		return nil, err
	}

	movies := e.catalog.FindByExactTitle(match.Title)
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: no rows titled %q", ErrNotFound, match.Title)
	}

	return &DetailResult{
		Query:        query,
		MatchedTitle: match.Title,
		MatchScore:   match.Score,
		Movies:       movies,
	}, nil
}

// Popular ranks the catalog by field ("score", "title" or "release_year"),
// descending, and returns the top limit rows.
func (e *Engine) Popular(ctx context.Context, field string, limit int) (refs []catalog.TitleRef, err error) {
	defer e.observe("popular", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sortField, err := catalog.ParseSortField(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	refs, err = e.catalog.Popular(sortField, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return refs, nil
}

// ListTitles returns the first limit rows in catalog order; catalog.Unbounded
// returns every row. Limits below catalog.Unbounded are rejected.
func (e *Engine) ListTitles(ctx context.Context, limit int) (refs []catalog.TitleRef, err error) {
	defer e.observe("list", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit < catalog.Unbounded {
		return nil, fmt.Errorf("%w: limit must be >= %d, got %d", ErrInvalidParameter, catalog.Unbounded, limit)
	}
	return e.catalog.ListTitles(limit), nil
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	cs := e.resolver.CacheStats()
	return Stats{
		CatalogSize:         e.catalog.Len(),
		MatrixDimension:     e.matrix.Size(),
		Recommendations:     e.recommendations.Load(),
		Details:             e.details.Load(),
		NotFound:            e.notFound.Load(),
		ResolverCacheHits:   cs.Hits,
		ResolverCacheMisses: cs.Misses,
		ResolverCacheSize:   cs.Size,
	}
}

// SweepResolverCache drops expired title resolutions and returns how many
// were removed.
func (e *Engine) SweepResolverCache() int {
	n := e.resolver.SweepCache()
	cs := e.resolver.CacheStats()
	metrics.UpdateResolverCache(cs.Hits, cs.Misses, cs.Size)
	return n
}

// observe records the outcome of one engine call and refreshes the
// resolver cache gauges.
func (e *Engine) observe(operation string, start time.Time, errp *error) {
	metrics.RecordEngineOperation(operation, metrics.Outcome(*errp, ErrNotFound, ErrInvalidParameter), time.Since(start))

	cs := e.resolver.CacheStats()
	metrics.UpdateResolverCache(cs.Hits, cs.Misses, cs.Size)
}

func (e *Engine) resolve(query string) (fuzzy.Match, error) {
	match, err := e.resolver.Resolve(query)
	if err != nil {
		if errors.Is(err, fuzzy.ErrNoMatch) {
			e.notFound.Add(1)
			return fuzzy.Match{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return fuzzy.Match{}, err
	}
	return match, nil
}

// topK returns up to k row indexes with the highest scores, excluding skip.
// Higher scores rank first, equal scores keep ascending index order and NaN
// ranks as negative infinity.
func topK(scores []float64, k, skip int) []int {
	if k <= 0 {
		return []int{}
	}

	out := make([]int, 0, k+1)
	for i, s := range scores {
		if i == skip {
			continue
		}
		key := rankKey(s)

		// Position after every kept entry that ranks at least as high
		pos := len(out)
		for pos > 0 && key > rankKey(scores[out[pos-1]]) {
			pos--
		}
		if pos >= k {
			continue
		}

		out = append(out, 0)
		copy(out[pos+1:], out[pos:])
		out[pos] = i
		if len(out) > k {
			out = out[:k]
		}
	}
	return out
}

func rankKey(s float64) float64 {
	if math.IsNaN(s) {
		return math.Inf(-1)
	}
	return s
}

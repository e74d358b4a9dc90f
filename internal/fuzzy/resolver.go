// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

// Package fuzzy maps free-text queries onto canonical catalog titles.
//
// A query equal to a title ignoring case and surrounding space resolves to
// that title directly. Otherwise scoring is a normalized Levenshtein ratio on a 0-100 scale. The best
// candidate wins when it reaches the acceptance threshold; when several
// candidates share the best score, the one earliest in candidate order wins.
package fuzzy

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/cineapi/internal/cache"
)

// DefaultThreshold is the minimum accepted score, inclusive.
const DefaultThreshold = 60

// ErrNoMatch is returned when no candidate reaches the threshold.
var ErrNoMatch = errors.New("no title matched the query")

// Match is the winning candidate for a query.
type Match struct {
	// Title is the candidate as supplied, in its original case.
	Title string

	// Index is the candidate's position in the candidate list.
	Index int

	// Score is the 0-100 ratio against the query.
	Score int
}

// ExactKey is the case-insensitive form under which a query counts as an
// exact title hit. Punctuation and accents are kept, so "spider man" and
// "spider-man" are different keys.
func ExactKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// exactIndex maps each non-empty ExactKey to the first candidate carrying it.
func exactIndex(candidates []string) map[string]int {
	idx := make(map[string]int, len(candidates))
	for i, c := range candidates {
		key := ExactKey(c)
		if key == "" {
			continue
		}
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// Resolve returns the candidate whose ExactKey equals the query's, or else
// the best fuzzy match. It is the uncached form of Resolver.Resolve.
func Resolve(query string, candidates []string, threshold int) (Match, error) {
	if i, ok := exactIndex(candidates)[ExactKey(query)]; ok {
		return Match{Title: candidates[i], Index: i, Score: MaxScore}, nil
	}

	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = Normalize(c)
	}
	return best(Normalize(query), candidates, normalized, threshold)
}

func best(query string, candidates, normalized []string, threshold int) (Match, error) {
	if query == "" {
		return Match{}, fmt.Errorf("%w: query has no letters or digits", ErrNoMatch)
	}

	top := Match{Index: -1, Score: -1}
	for i, cand := range normalized {
		score := Ratio(query, cand)
		// strict > keeps the first of equal scores
		if score > top.Score {
			top = Match{Title: candidates[i], Index: i, Score: score}
			if score == MaxScore {
				break
			}
		}
	}

	if top.Index < 0 || top.Score < threshold {
		return Match{}, fmt.Errorf("%w: %q (best score %d, threshold %d)", ErrNoMatch, query, max(top.Score, 0), threshold)
	}
	return top, nil
}

// Config controls a Resolver.
type Config struct {
	// Threshold is the minimum accepted score (0-100, inclusive).
	Threshold int

	// CacheSize is the number of resolved queries kept; zero disables caching.
	CacheSize int

	// CacheTTL bounds how long a resolution stays cached.
	CacheTTL time.Duration
}

// DefaultConfig returns the production resolver settings.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		CacheSize: 4096,
		CacheTTL:  10 * time.Minute,
	}
}

// resolution is a cached outcome; misses are cached too.
type resolution struct {
	match Match
	found bool
}

// Resolver resolves queries against a fixed candidate list.
// Candidate normalization happens once at construction. It is safe for
// concurrent use.
type Resolver struct {
	candidates []string
	normalized []string
	exact      map[string]int
	threshold  int
	cache      *cache.LRUCache[resolution]
}

// NewResolver creates a Resolver over candidates. The slice is not copied
// and must not be modified afterwards.
func NewResolver(candidates []string, cfg Config) (*Resolver, error) {
	if cfg.Threshold < 0 || cfg.Threshold > MaxScore {
		return nil, fmt.Errorf("threshold must be within [0, %d], got %d", MaxScore, cfg.Threshold)
	}

	r := &Resolver{
		candidates: candidates,
		normalized: make([]string, len(candidates)),
		exact:      exactIndex(candidates),
		threshold:  cfg.Threshold,
	}
	for i, c := range candidates {
		r.normalized[i] = Normalize(c)
	}
	if cfg.CacheSize > 0 {
		r.cache = cache.NewLRUCache[resolution](cfg.CacheSize, cfg.CacheTTL)
	}
	return r, nil
}

// Resolve returns the exact title hit for query when there is one, otherwise
// the best-scoring candidate, or ErrNoMatch. Only fuzzy outcomes are cached.
func (r *Resolver) Resolve(query string) (Match, error) {
	if i, ok := r.exact[ExactKey(query)]; ok {
		return Match{Title: r.candidates[i], Index: i, Score: MaxScore}, nil
	}

	key := Normalize(query)

	if r.cache != nil {
		if res, ok := r.cache.Get(key); ok {
			if !res.found {
				return Match{}, fmt.Errorf("%w: %q", ErrNoMatch, key)
			}
			return res.match, nil
		}
	}

	m, err := best(key, r.candidates, r.normalized, r.threshold)
	if r.cache != nil {
		r.cache.Add(key, resolution{match: m, found: err == nil})
	}
	return m, err
}

// SweepCache drops expired resolutions and returns how many were removed.
func (r *Resolver) SweepCache() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.CleanupExpired()
}

// CacheStats reports resolution cache counters. The zero value is returned
// when caching is disabled.
func (r *Resolver) CacheStats() cache.Stats {
	if r.cache == nil {
		return cache.Stats{}
	}
	return r.cache.Stats()
}

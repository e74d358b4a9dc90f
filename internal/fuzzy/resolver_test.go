// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package fuzzy

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Amélie", "amelie"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"  THE  Matrix ", "the matrix"},
		{"Léon: The Professional", "leon the professional"},
		{"Брат", "брат"},
		{"2001: A Space Odyssey", "2001 a space odyssey"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"batman", "batman", 100},
		{"btman", "batman", 83},
		{"kitten", "sitting", 57},
		{"abcde", "abcxy", 60},
		{"zzzzzz", "batman", 0},
		{"", "", 0},
		{"", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.a, tt.b))
			assert.Equal(t, tt.want, Ratio(tt.b, tt.a), "ratio must be symmetric")
		})
	}
}

func TestExactKey(t *testing.T) {
	assert.Equal(t, "the dark knight", ExactKey("  The DARK Knight "))
	assert.Equal(t, "amélie", ExactKey("AMÉLIE"))
	assert.NotEqual(t, ExactKey("spider man"), ExactKey("Spider-Man"))
}

func TestResolve_ExactKeyBeatsNormalizedTie(t *testing.T) {
	m, err := Resolve("spider man", []string{"Spider-Man", "Spider Man"}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, Match{Title: "Spider Man", Index: 1, Score: 100}, m)

	m, err = Resolve("Amelie", []string{"Amélie", "Amelie"}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Index)

	m, err = Resolve("Amélie", []string{"Amélie", "Amelie"}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Index)
}

func TestResolve_DuplicateExactTitleFirstWins(t *testing.T) {
	m, err := Resolve("HEAT", []string{"alien", "Heat", "heat"}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Index)
}

func TestResolve_PunctuationOnlyNeverMatches(t *testing.T) {
	_, err := Resolve("!!!", []string{"???", "batman"}, DefaultThreshold)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Resolve("", []string{"...", "batman"}, 0)
	assert.ErrorIs(t, err, ErrNoMatch, "an empty query has nothing to score")

	_, err = Resolve("  ", []string{"   ", "batman"}, 0)
	assert.ErrorIs(t, err, ErrNoMatch, "blank titles are never exact hits")
}

func TestResolve_ExactMatch(t *testing.T) {
	candidates := []string{"Heat", "The Dark Knight", "Alien"}

	m, err := Resolve("the DARK knight", candidates, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, Match{Title: "The Dark Knight", Index: 1, Score: 100}, m)
}

func TestResolve_TieBreakFirstWins(t *testing.T) {
	m, err := Resolve("btman", []string{"heat", "batman", "batman"}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, 83, m.Score)
}

func TestResolve_Threshold(t *testing.T) {
	candidates := []string{"abcxy"}

	m, err := Resolve("abcde", candidates, 60)
	require.NoError(t, err, "score equal to the threshold is accepted")
	assert.Equal(t, 60, m.Score)

	_, err = Resolve("abcde", candidates, 61)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Resolve("kitten", []string{"sitting"}, DefaultThreshold)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolve_EmptyCandidates(t *testing.T) {
	_, err := Resolve("anything", nil, DefaultThreshold)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolve_PicksBestNotFirstAboveThreshold(t *testing.T) {
	m, err := Resolve("alien", []string{"aliens", "alien"}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Index)
}

func TestNewResolver_RejectsBadThreshold(t *testing.T) {
	for _, threshold := range []int{-1, 101} {
		_, err := NewResolver([]string{"a"}, Config{Threshold: threshold})
		assert.Error(t, err, "threshold %d", threshold)
	}
}

func TestResolver_CachesHitsAndMisses(t *testing.T) {
	r, err := NewResolver([]string{"heat", "batman"}, DefaultConfig())
	require.NoError(t, err)

	first, err := r.Resolve("Btman")
	require.NoError(t, err)
	second, err := r.Resolve("btman ")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = r.Resolve("zzzzzzzz")
	assert.ErrorIs(t, err, ErrNoMatch)
	_, err = r.Resolve("ZZZZZZZZ")
	assert.ErrorIs(t, err, ErrNoMatch)

	stats := r.CacheStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 2, stats.Size)
}

func TestResolver_NoCache(t *testing.T) {
	r, err := NewResolver([]string{"heat"}, Config{Threshold: DefaultThreshold})
	require.NoError(t, err)

	m, err := r.Resolve("HEAT")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Index)
	assert.Zero(t, r.CacheStats())
	assert.Zero(t, r.SweepCache())
}

func TestResolver_ExactHitBypassesCache(t *testing.T) {
	r, err := NewResolver([]string{"Spider-Man", "Spider Man"}, DefaultConfig())
	require.NoError(t, err)

	m, err := r.Resolve("SPIDER MAN")
	require.NoError(t, err)
	assert.Equal(t, 1, m.Index)

	m, err = r.Resolve("spider-man")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Index)

	assert.Zero(t, r.CacheStats().Size)
}

func TestResolver_SweepCacheDropsExpired(t *testing.T) {
	r, err := NewResolver([]string{"heat", "batman"}, Config{
		Threshold: DefaultThreshold,
		CacheSize: 8,
		CacheTTL:  time.Millisecond,
	})
	require.NoError(t, err)

	_, err = r.Resolve("btman")
	require.NoError(t, err)
	_, err = r.Resolve("zzzzzz")
	require.ErrorIs(t, err, ErrNoMatch)
	require.Equal(t, 2, r.CacheStats().Size)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, r.SweepCache())
	assert.Zero(t, r.CacheStats().Size)
	assert.Zero(t, r.SweepCache())
}

func TestResolver_Concurrent(t *testing.T) {
	r, err := NewResolver([]string{"heat", "batman", "alien", "amélie"}, DefaultConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := r.Resolve("amelie")
			assert.NoError(t, err)
			assert.Equal(t, 3, m.Index)
		}()
	}
	wg.Wait()
}

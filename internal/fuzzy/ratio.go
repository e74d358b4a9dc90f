// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package fuzzy

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// MaxScore is the score of two identical normalized strings.
const MaxScore = 100

// Ratio scores two already-normalized strings on a 0-100 scale:
//
//	round(100 * (1 - distance(a, b) / max(len(a), len(b))))
//
// Lengths and distance are counted in runes. An empty string scores 0
// against anything, itself included.
func Ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return MaxScore
	}

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))

	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(MaxScore * (1 - float64(dist)/float64(longest))))
}

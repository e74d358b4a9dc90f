// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a title or query for scoring.
//
// "Amélie" -> "amelie".
// "Spider-Man: No Way Home" -> "spider man no way home".
// "  THE  Matrix " -> "the matrix".
//
// Combining marks are dropped after NFD decomposition, so accented letters
// fold to their base letter. Letters of any script are kept.
func Normalize(s string) string {
	folded, _, err := transform.String(foldChain(), s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	// Collapse runs of separators
	return strings.Join(strings.Fields(b.String()), " ")
}

// foldChain returns a fresh transformer; transform.Chain is not safe for
// concurrent use.
func foldChain() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

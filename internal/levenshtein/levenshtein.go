// Copyright 2025 The OPA Authors
// SPDX-License-Identifier: Apache-2.0

// Package levenshtein suggests spellings for mistyped keywords.
package levenshtein

import (
	"iter"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ClosestStrings returns the candidates with the smallest edit distance to a,
// provided that distance is at most minDistance. Comparison is case
// insensitive.
func ClosestStrings(minDistance int, a string, candidates iter.Seq[string]) []string {
	a = strings.ToLower(a)
	closestStrings := []string{}
	for c := range candidates {
		levDist := levenshtein.ComputeDistance(a, strings.ToLower(c))
		switch {
		case levDist < minDistance:
			closestStrings = []string{c}
			minDistance = levDist
		case levDist == minDistance:
			closestStrings = append(closestStrings, c)
		}
	}
	slices.Sort(closestStrings)
	return slices.Compact(closestStrings)
}

// Suggest returns the closest candidate to a, or the empty string when a
// matches a candidate exactly or no candidate is close enough. At most two
// edits are tolerated, and no more than one per two characters of a.
func Suggest(a string, candidates []string) string {
	if slices.Contains(candidates, a) {
		return ""
	}
	maxEdits := min(2, len(a)/2)
	if maxEdits == 0 {
		return ""
	}
	closest := ClosestStrings(maxEdits, a, slices.Values(candidates))
	if len(closest) == 0 {
		return ""
	}
	return closest[0]
}

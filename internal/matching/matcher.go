// Package matching scores recipes against a pantry and ranks them.
//
// Everything in this package is pure: functions read their inputs, allocate
// their own outputs and keep no state between calls, so concurrent callers
// need no coordination.
package matching

import (
	"math"
	"strings"
)

// MatchResult is the outcome of matching a pantry against one recipe's
// ingredient list.
type MatchResult struct {
	// Matched holds the distinct pantry entries (lowercased) that satisfied
	// at least one recipe phrase, in the order they first matched.
	Matched []string
	// Missing holds the recipe phrases no pantry entry satisfied, in recipe order.
	Missing []string
	// Satisfied counts the recipe phrases that were satisfied.
	Satisfied int
	Score     int
}

// NormalizePantry lowercases and trims pantry entries, dropping blanks and
// duplicates while keeping the first occurrence order.
func NormalizePantry(pantry []string) []string {
	out := make([]string, 0, len(pantry))
	seen := make(map[string]struct{}, len(pantry))
	for _, p := range pantry {
		n := strings.ToLower(strings.TrimSpace(p))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// MatchIngredients decides which recipe phrases the pantry satisfies.
//
// A phrase is satisfied when a pantry entry is a substring of it or it is a
// substring of a pantry entry, compared in lowercase. Quantities and units
// inside a phrase earn no partial credit.
func MatchIngredients(pantry []string, recipeIngredients []string) MatchResult {
	return matchNormalized(NormalizePantry(pantry), recipeIngredients)
}

func matchNormalized(pantry []string, recipeIngredients []string) MatchResult {
	res := MatchResult{
		Matched: []string{},
		Missing: []string{},
	}
	used := make(map[string]struct{}, len(pantry))

	for _, phrase := range recipeIngredients {
		lower := strings.ToLower(phrase)
		satisfied := false
		for _, p := range pantry {
			if !strings.Contains(lower, p) && !strings.Contains(p, lower) {
				continue
			}
			satisfied = true
			if _, ok := used[p]; !ok {
				used[p] = struct{}{}
				res.Matched = append(res.Matched, p)
			}
		}
		if satisfied {
			res.Satisfied++
		} else {
			res.Missing = append(res.Missing, phrase)
		}
	}

	res.Score = Score(res.Satisfied, len(recipeIngredients))
	return res
}

// Score converts satisfied/total into a rounded percentage in [0, 100].
// A recipe without ingredients scores 0.
func Score(satisfied, total int) int {
	if total <= 0 || satisfied <= 0 {
		return 0
	}
	s := int(math.Round(100 * float64(satisfied) / float64(total)))
	if s > 100 {
		return 100
	}
	return s
}

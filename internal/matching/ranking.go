package matching

import (
	"sort"

	"github.com/pageza/pantry-match/backend/internal/model"
)

// RankRecipes scores every catalog recipe against the pantry, keeps those
// passing the filters and orders them by filters.SortBy.
//
// Recipes with a zero score are kept; dropping them is left to the caller.
// Equal sort keys are ordered by ascending recipe id, so the output is fully
// determined by the inputs. The catalog is not modified.
func RankRecipes(pantry []string, catalog []model.Recipe, filters FilterConfig) []model.RecipeMatch {
	normalized := NormalizePantry(pantry)

	matches := make([]model.RecipeMatch, 0, len(catalog))
	for _, recipe := range catalog {
		if !filters.Accepts(recipe) {
			continue
		}
		res := matchNormalized(normalized, recipe.Ingredients)
		matches = append(matches, model.RecipeMatch{
			Recipe:             recipe,
			MatchScore:         res.Score,
			MatchedIngredients: res.Matched,
			MissingIngredients: res.Missing,
		})
	}

	sort.SliceStable(matches, less(matches, filters.SortBy))
	return matches
}

func less(m []model.RecipeMatch, by SortOption) func(i, j int) bool {
	return func(i, j int) bool {
		a, b := m[i], m[j]
		switch by {
		case SortByTime:
			if a.CookingTime != b.CookingTime {
				return a.CookingTime < b.CookingTime
			}
		case SortByDifficulty:
			if ra, rb := a.Difficulty.Rank(), b.Difficulty.Rank(); ra != rb {
				return ra < rb
			}
		default:
			if a.MatchScore != b.MatchScore {
				return a.MatchScore > b.MatchScore
			}
		}
		return a.ID < b.ID
	}
}

// ApplyMinScore drops matches scoring below min. It is a caller-side
// threshold layered on top of RankRecipes and keeps the input order.
func ApplyMinScore(matches []model.RecipeMatch, min int) []model.RecipeMatch {
	if min <= 0 {
		return matches
	}
	out := make([]model.RecipeMatch, 0, len(matches))
	for _, m := range matches {
		if m.MatchScore >= min {
			out = append(out, m)
		}
	}
	return out
}

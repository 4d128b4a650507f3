package model

// RecipeMatch is a recipe scored against one pantry. It is built per search
// and never stored.
type RecipeMatch struct {
	Recipe
	MatchScore         int      `json:"matchScore"`
	MatchedIngredients []string `json:"matchedIngredients"`
	MissingIngredients []string `json:"missingIngredients"`
}

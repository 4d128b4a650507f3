package types

import "github.com/pageza/pantry-match/backend/internal/model"

// SearchRecipesRequest represents the request body for ranking recipes
// against a pantry
type SearchRecipesRequest struct {
	Pantry         []string `json:"pantry" binding:"required"`
	DietaryFilters []string `json:"dietaryFilters"`
	MaxTime        *int     `json:"maxTime"`
	Difficulty     string   `json:"difficulty"`
	SortBy         string   `json:"sortBy"`
	MinScore       int      `json:"minScore" binding:"min=0,max=100"`
}

// SearchRecipesResponse is the ranked result of a search
type SearchRecipesResponse struct {
	Recipes []model.RecipeMatch `json:"recipes"`
	Count   int                 `json:"count"`
	SortBy  string              `json:"sortBy"`
}

// ListRecipesResponse wraps the full catalog
type ListRecipesResponse struct {
	Recipes []model.Recipe `json:"recipes"`
	Count   int            `json:"count"`
}

// DetectIngredientsRequest carries a base64 image, optionally as a data URL
type DetectIngredientsRequest struct {
	Image string `json:"image" binding:"required"`
}

// DetectIngredientsResponse lists the pantry entries found in an image
type DetectIngredientsResponse struct {
	Ingredients     []string `json:"ingredients"`
	Source          string   `json:"source"`
	DetectionFailed bool     `json:"detectionFailed"`
}

// SuggestIngredientsResponse holds autocomplete candidates
type SuggestIngredientsResponse struct {
	Suggestions []string `json:"suggestions"`
}

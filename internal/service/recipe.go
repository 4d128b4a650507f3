package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/pantry-match/backend/internal/catalog"
	"github.com/pageza/pantry-match/backend/internal/matching"
	"github.com/pageza/pantry-match/backend/internal/metrics"
	"github.com/pageza/pantry-match/backend/internal/model"
	"github.com/pageza/pantry-match/backend/internal/types"
)

var (
	// ErrEmptyPantry is returned when a search has no usable ingredients
	ErrEmptyPantry = errors.New("pantry must contain at least one ingredient")
	// ErrRecipeNotFound is returned for unknown recipe ids
	ErrRecipeNotFound = catalog.ErrNotFound
)

// RecipeService handles recipe lookup and pantry ranking
type RecipeService struct {
	catalog RecipeCatalog
	logger  *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(recipes RecipeCatalog, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		catalog: recipes,
		logger:  logger,
	}
}

// SearchRecipes validates the filters and ranks the catalog against the pantry.
// Filter problems come back as *matching.ConfigError.
func (s *RecipeService) SearchRecipes(ctx context.Context, req *types.SearchRecipesRequest) (*types.SearchRecipesResponse, error) {
	pantry := matching.NormalizePantry(req.Pantry)
	if len(pantry) == 0 {
		return nil, ErrEmptyPantry
	}
	if req.MinScore < 0 || req.MinScore > 100 {
		return nil, &matching.ConfigError{Field: "minScore", Message: fmt.Sprintf("must be between 0 and 100, got %d", req.MinScore)}
	}

	filters, err := matching.NewFilterConfig(req.DietaryFilters, req.MaxTime, req.Difficulty, req.SortBy)
	if err != nil {
		return nil, err
	}

	matches := matching.RankRecipes(pantry, s.catalog.All(), filters)
	matches = matching.ApplyMinScore(matches, req.MinScore)

	metrics.RecipeSearches.WithLabelValues(string(filters.SortBy)).Inc()
	metrics.RecipeSearchResults.Observe(float64(len(matches)))

	s.logger.Debug("recipes ranked",
		zap.Int("pantry_size", len(pantry)),
		zap.String("sort_by", string(filters.SortBy)),
		zap.Int("results", len(matches)),
	)

	return &types.SearchRecipesResponse{
		Recipes: matches,
		Count:   len(matches),
		SortBy:  string(filters.SortBy),
	}, nil
}

// ListRecipes returns the whole catalog in catalog order
func (s *RecipeService) ListRecipes(ctx context.Context) []model.Recipe {
	return s.catalog.All()
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id int) (model.Recipe, error) {
	return s.catalog.Get(id)
}

// SuggestIngredients autocompletes a pantry entry from the catalog vocabulary
func (s *RecipeService) SuggestIngredients(ctx context.Context, query string, exclude []string) []string {
	return s.catalog.Suggest(query, exclude, catalog.DefaultSuggestLimit)
}

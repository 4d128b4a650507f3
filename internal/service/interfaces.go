package service

import (
	"context"

	"github.com/pageza/pantry-match/backend/internal/model"
	"github.com/pageza/pantry-match/backend/internal/types"
)

// RecipeCatalog is the read-only recipe store the services rank against
type RecipeCatalog interface {
	All() []model.Recipe
	Get(id int) (model.Recipe, error)
	Len() int
	Suggest(query string, exclude []string, limit int) []string
}

// Detector recognizes food concepts in a base64 encoded image
type Detector interface {
	Detect(ctx context.Context, imageBase64 string) ([]Concept, error)
}

// ImageArchive stores uploaded images and returns where they were put
type ImageArchive interface {
	Archive(ctx context.Context, data []byte, contentType string) (string, error)
}

// IRecipeService defines the interface for recipe lookup and ranking
type IRecipeService interface {
	SearchRecipes(ctx context.Context, req *types.SearchRecipesRequest) (*types.SearchRecipesResponse, error)
	ListRecipes(ctx context.Context) []model.Recipe
	GetRecipe(ctx context.Context, id int) (model.Recipe, error)
	SuggestIngredients(ctx context.Context, query string, exclude []string) []string
}

// IDetectionService defines the interface for turning photos into pantry entries
type IDetectionService interface {
	DetectIngredients(ctx context.Context, image string) (*DetectionResult, error)
}

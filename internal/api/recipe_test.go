package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantry-match/backend/internal/model"
	"github.com/pageza/pantry-match/backend/internal/types"
)

func TestSearchRecipes(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/search", gin.H{
		"pantry": []string{"tomato", "cheese"},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[types.SearchRecipesResponse](t, w)
	assert.Equal(t, "match", resp.SortBy)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Recipes, 3)

	// 1: 2/3, 3: 1/3, 2: 1/4
	assert.Equal(t, []int{1, 3, 2}, []int{resp.Recipes[0].ID, resp.Recipes[1].ID, resp.Recipes[2].ID})
	assert.Equal(t, 67, resp.Recipes[0].MatchScore)
	assert.Equal(t, []string{"tomato", "cheese"}, resp.Recipes[0].MatchedIngredients)
	assert.Equal(t, []string{"basil"}, resp.Recipes[0].MissingIngredients)
}

func TestSearchRecipesResponseShape(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/search", gin.H{
		"pantry":         []string{"egg"},
		"dietaryFilters": []string{"vegetarian"},
		"maxTime":        15,
		"difficulty":     "easy",
		"sortBy":         "time",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[map[string]any](t, w)
	recipes := body["recipes"].([]any)
	require.Len(t, recipes, 2)
	first := recipes[0].(map[string]any)
	for _, key := range []string{"id", "title", "ingredients", "instructions", "cookingTime", "difficulty", "dietary", "servings", "matchScore", "matchedIngredients", "missingIngredients"} {
		assert.Contains(t, first, key)
	}
}

func TestSearchRecipesValidation(t *testing.T) {
	router := setupTestRouter(t, nil)

	tests := []struct {
		name  string
		body  any
		code  int
		error string
	}{
		{"malformed json", `{"pantry": [`, http.StatusBadRequest, "invalid_request"},
		{"missing pantry", gin.H{}, http.StatusBadRequest, "invalid_request"},
		{"empty pantry", gin.H{"pantry": []string{}}, http.StatusBadRequest, "empty_pantry"},
		{"unknown dietary filter", gin.H{"pantry": []string{"egg"}, "dietaryFilters": []string{"paleo"}}, http.StatusBadRequest, "invalid_filter"},
		{"negative max time", gin.H{"pantry": []string{"egg"}, "maxTime": -5}, http.StatusBadRequest, "invalid_filter"},
		{"unknown difficulty", gin.H{"pantry": []string{"egg"}, "difficulty": "impossible"}, http.StatusBadRequest, "invalid_filter"},
		{"unknown sort", gin.H{"pantry": []string{"egg"}, "sortBy": "calories"}, http.StatusBadRequest, "invalid_filter"},
		{"min score out of range", gin.H{"pantry": []string{"egg"}, "minScore": 150}, http.StatusBadRequest, "invalid_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/search", tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.error, decode[map[string]any](t, w)["error"])
		})
	}
}

func TestListRecipes(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[types.ListRecipesResponse](t, w)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, "Caprese Salad", resp.Recipes[0].Title)
}

func TestGetRecipe(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipe := decode[model.Recipe](t, w)
	assert.Equal(t, "Vegan Chili", recipe.Title)
	assert.Equal(t, model.DifficultyMedium, recipe.Difficulty)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

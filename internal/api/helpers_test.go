package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantry-match/backend/internal/catalog"
	"github.com/pageza/pantry-match/backend/internal/model"
	"github.com/pageza/pantry-match/backend/internal/service"
)

type stubDetection struct {
	result *service.DetectionResult
	err    error
	image  string
}

func (s *stubDetection) DetectIngredients(ctx context.Context, image string) (*service.DetectionResult, error) {
	s.image = image
	return s.result, s.err
}

func testRecipes(t *testing.T) *service.RecipeService {
	t.Helper()
	c, err := catalog.New([]model.Recipe{
		{ID: 1, Title: "Caprese Salad", Ingredients: model.StringArray{"2 tomatoes", "mozzarella cheese", "basil"}, CookingTime: 10, Difficulty: model.DifficultyEasy, Dietary: model.StringArray{"vegetarian", "gluten-free"}, Servings: 2},
		{ID: 2, Title: "Vegan Chili", Ingredients: model.StringArray{"kidney beans", "tomato", "onion", "chili powder"}, CookingTime: 45, Difficulty: model.DifficultyMedium, Dietary: model.StringArray{"vegetarian", "vegan", "gluten-free"}, Servings: 4},
		{ID: 3, Title: "Cheese Omelette", Ingredients: model.StringArray{"3 eggs", "cheddar cheese", "butter"}, CookingTime: 10, Difficulty: model.DifficultyEasy, Dietary: model.StringArray{"vegetarian"}, Servings: 1},
	})
	require.NoError(t, err)
	return service.NewRecipeService(c, nil)
}

func setupTestRouter(t *testing.T, detection service.IDetectionService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recipes := testRecipes(t)
	router := gin.New()
	v1 := router.Group("/api/v1")
	NewRecipeHandler(recipes).RegisterRoutes(v1)
	NewIngredientHandler(recipes, detection, nil).RegisterRoutes(v1)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

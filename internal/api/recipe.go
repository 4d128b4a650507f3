package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-match/backend/internal/service"
	"github.com/pageza/pantry-match/backend/internal/types"
)

type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/search", h.SearchRecipes)
	}
}

// SearchRecipes ranks the catalog against the posted pantry
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	var req types.SearchRecipesRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.recipes.SearchRecipes(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes := h.recipes.ListRecipes(c.Request.Context())
	c.JSON(http.StatusOK, types.ListRecipesResponse{
		Recipes: recipes,
		Count:   len(recipes),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Recipe id must be an integer"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

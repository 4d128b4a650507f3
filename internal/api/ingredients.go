package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-match/backend/internal/middleware"
	"github.com/pageza/pantry-match/backend/internal/service"
	"github.com/pageza/pantry-match/backend/internal/types"
)

// maxDetectBodyBytes leaves room for base64 overhead and a data URL prefix
// on top of service.MaxImageBytes.
const maxDetectBodyBytes = service.MaxImageBytes*4/3 + 4096

type IngredientHandler struct {
	recipes     service.IRecipeService
	detection   service.IDetectionService
	rateLimiter *middleware.RateLimiter
}

// NewIngredientHandler creates the ingredient handler. rateLimiter may be nil
// to leave detection unlimited.
func NewIngredientHandler(recipes service.IRecipeService, detection service.IDetectionService, rateLimiter *middleware.RateLimiter) *IngredientHandler {
	return &IngredientHandler{
		recipes:     recipes,
		detection:   detection,
		rateLimiter: rateLimiter,
	}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("/suggest", h.SuggestIngredients)
		if h.rateLimiter != nil {
			ingredients.POST("/detect", h.rateLimiter.Middleware(), h.DetectIngredients)
		} else {
			ingredients.POST("/detect", h.DetectIngredients)
		}
	}
}

// DetectIngredients reads a photo and returns the pantry entries seen in it.
// A failed vision call still answers 200 with detectionFailed set.
func (h *IngredientHandler) DetectIngredients(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDetectBodyBytes)

	var req types.DetectIngredientsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.detection.DetectIngredients(c.Request.Context(), req.Image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DetectIngredientsResponse{
		Ingredients:     result.Ingredients,
		Source:          result.Source,
		DetectionFailed: result.Failed,
	})
}

// SuggestIngredients autocompletes ?q= against the catalog, skipping
// entries already listed in ?exclude= (repeated or comma separated).
func (h *IngredientHandler) SuggestIngredients(c *gin.Context) {
	var exclude []string
	for _, v := range c.QueryArray("exclude") {
		exclude = append(exclude, strings.Split(v, ",")...)
	}

	suggestions := h.recipes.SuggestIngredients(c.Request.Context(), c.Query("q"), exclude)
	c.JSON(http.StatusOK, types.SuggestIngredientsResponse{Suggestions: suggestions})
}

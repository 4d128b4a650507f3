package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/pantry-match/backend/internal/database"
	"github.com/pageza/pantry-match/backend/internal/matching"
	"github.com/pageza/pantry-match/backend/internal/service"
)

const Version = "v1.0.0"

// HealthHandler reports whether the API and its optional backends are up
type HealthHandler struct {
	db      *gorm.DB
	redis   *redis.Client
	recipes int
}

// NewHealthHandler creates a health handler. db and redisClient may be nil
// when those backends are not configured.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, recipes int) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, recipes: recipes}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if h.db != nil {
		if err := database.HealthCheck(ctx, h.db); err != nil {
			checks["database"] = err.Error()
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"message": "Pantry recipe API is running",
		"version": Version,
		"recipes": h.recipes,
		"checks":  checks,
	})
}

// respondError maps service errors onto HTTP responses
func respondError(c *gin.Context, err error) {
	var cfgErr *matching.ConfigError
	var maxBytes *http.MaxBytesError

	switch {
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_filter",
			"field":   cfgErr.Field,
			"message": cfgErr.Message,
		})
	case errors.Is(err, service.ErrEmptyPantry):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty_pantry", "message": err.Error()})
	case errors.Is(err, service.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image", "message": err.Error()})
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Recipe not found"})
	case errors.As(err, &maxBytes):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload_too_large", "message": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "Internal Server Error"})
	}
}

// bindJSON decodes the body and answers 400 on failure
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			respondError(c, err)
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return false
	}
	return true
}

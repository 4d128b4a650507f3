package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/pantry-match/backend/config"
	"github.com/pageza/pantry-match/backend/internal/api"
	"github.com/pageza/pantry-match/backend/internal/middleware"
	"github.com/pageza/pantry-match/backend/internal/service"
)

// Dependencies are the wired services the routes are served from. DB and
// Redis are nil when not configured.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Recipes   service.IRecipeService
	Detection service.IDetectionService
	DB        *gorm.DB
	Redis     *redis.Client
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.Config.CORSAllowedOrigins),
	)
	router.NoRoute(middleware.NotFound())
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, middleware.ErrorResponse{Error: "method_not_allowed"})
	})

	// Health check endpoints
	health := api.NewHealthHandler(deps.DB, deps.Redis, len(deps.Recipes.ListRecipes(context.Background())))
	router.GET("/health", health.HealthCheck)
	router.GET("/api/health", health.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var detectLimiter *middleware.RateLimiter
	if deps.Redis != nil && deps.Config.DetectRateLimit > 0 {
		detectLimiter = middleware.NewDetectRateLimiter(deps.Redis, deps.Config.DetectRateLimit, deps.Logger)
	} else {
		deps.Logger.Info("ingredient detection is not rate limited")
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	api.NewRecipeHandler(deps.Recipes).RegisterRoutes(v1)
	api.NewIngredientHandler(deps.Recipes, deps.Detection, detectLimiter).RegisterRoutes(v1)

	return router
}

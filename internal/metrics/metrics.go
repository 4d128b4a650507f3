package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecipeSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_searches_total",
			Help: "Total number of recipe searches by sort order",
		},
		[]string{"sort_by"},
	)

	RecipeSearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_search_results",
			Help:    "Number of recipes returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	IngredientDetections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingredient_detections_total",
			Help: "Total number of ingredient detections by result source",
		},
		[]string{"source"},
	)

	IngredientDetectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingredient_detection_duration_seconds",
			Help:    "Duration of ingredient detection calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

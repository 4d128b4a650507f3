package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/pantry-match/backend/internal/matching"
	"github.com/pageza/pantry-match/backend/internal/metrics"
)

// Detection result sources
const (
	SourceClarifai = "clarifai"
	SourceDemo     = "demo"
	SourceError    = "error"
)

// DemoIngredients are returned when no vision API key is configured
var DemoIngredients = []string{"tomato", "cheese", "lettuce", "onion"}

// DetectionResult is what a photo contributed to the pantry. Failed is set
// when the vision call did not succeed; Ingredients is then empty.
type DetectionResult struct {
	Ingredients []string
	Source      string
	Failed      bool
	ArchivedAt  string
}

// DetectionConfig tunes the vision call
type DetectionConfig struct {
	MinConfidence float64
	Timeout       time.Duration
}

// DetectionService turns uploaded photos into pantry entries
type DetectionService struct {
	detector Detector
	archive  ImageArchive
	config   DetectionConfig
	logger   *zap.Logger
}

// NewDetectionService creates a DetectionService. A nil detector selects
// demo mode; a nil archive disables archiving.
func NewDetectionService(detector Detector, archive ImageArchive, cfg DetectionConfig, logger *zap.Logger) *DetectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &DetectionService{
		detector: detector,
		archive:  archive,
		config:   cfg,
		logger:   logger,
	}
}

// DetectIngredients validates the image and maps confident concepts to
// ingredient names. The only error returned is ErrInvalidImage; vision
// failures are reported through DetectionResult.Failed.
func (s *DetectionService) DetectIngredients(ctx context.Context, image string) (*DetectionResult, error) {
	img, err := DecodeImage(image)
	if err != nil {
		return nil, err
	}

	result := &DetectionResult{}
	if s.archive != nil {
		result.ArchivedAt = s.archiveImage(ctx, img)
	}

	if s.detector == nil {
		s.logger.Warn("CLARIFAI_API_KEY not set, returning demo ingredients")
		result.Ingredients = append([]string{}, DemoIngredients...)
		result.Source = SourceDemo
		metrics.IngredientDetections.WithLabelValues(SourceDemo).Inc()
		return result, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	concepts, err := s.detector.Detect(callCtx, img.Base64)
	metrics.IngredientDetectionDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.logger.Error("ingredient detection failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		result.Ingredients = []string{}
		result.Source = SourceError
		result.Failed = true
		metrics.IngredientDetections.WithLabelValues(SourceError).Inc()
		return result, nil
	}

	labels := make([]string, 0, len(concepts))
	for _, c := range concepts {
		if c.Value > s.config.MinConfidence {
			labels = append(labels, c.Name)
		}
	}

	result.Ingredients = matching.MapFoodConcepts(labels)
	result.Source = SourceClarifai
	metrics.IngredientDetections.WithLabelValues(SourceClarifai).Inc()

	s.logger.Info("ingredients detected",
		zap.Int("concepts", len(concepts)),
		zap.Int("confident", len(labels)),
		zap.Strings("ingredients", result.Ingredients),
	)
	return result, nil
}

func (s *DetectionService) archiveImage(ctx context.Context, img *Image) string {
	archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	location, err := s.archive.Archive(archiveCtx, img.Data, img.ContentType)
	if err != nil {
		s.logger.Warn("failed to archive uploaded image", zap.Error(err))
		return ""
	}
	return location
}

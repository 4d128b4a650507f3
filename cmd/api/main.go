package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/pantry-match/backend/config"
	"github.com/pageza/pantry-match/backend/internal/catalog"
	"github.com/pageza/pantry-match/backend/internal/database"
	"github.com/pageza/pantry-match/backend/internal/logger"
	"github.com/pageza/pantry-match/backend/internal/router"
	"github.com/pageza/pantry-match/backend/internal/server"
	"github.com/pageza/pantry-match/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if cfg.Environment.ReleaseMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
	zapLogger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.New(ctx, cfg.DatabaseURL, zapLogger)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				zapLogger.Warn("Failed to close database", zap.Error(err))
			}
		}()
	}

	recipes, err := catalog.Load(catalog.Source(cfg.CatalogSource), cfg.CatalogPath, db)
	if err != nil {
		return err
	}
	zapLogger.Info("Recipe catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("recipes", recipes.Len()),
	)

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(ctx, cfg, zapLogger)
		if err != nil {
			zapLogger.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var detector service.Detector
	if cfg.DemoDetection() {
		zapLogger.Warn("CLARIFAI_API_KEY not set, ingredient detection returns demo ingredients")
	} else {
		detector = service.NewClarifaiDetector(cfg.ClarifaiAPIKey, cfg.ClarifaiAPIURL, nil)
	}

	var archive service.ImageArchive
	if cfg.ArchiveEnabled() {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			zapLogger.Warn("S3 unavailable, uploaded images will not be archived", zap.Error(err))
		} else {
			archive = service.NewS3Archive(s3Config)
		}
	}

	engine := router.SetupRouter(router.Dependencies{
		Config:  cfg,
		Logger:  zapLogger,
		Recipes: service.NewRecipeService(recipes, zapLogger),
		Detection: service.NewDetectionService(detector, archive, service.DetectionConfig{
			MinConfidence: cfg.DetectionMinConfidence,
			Timeout:       cfg.DetectionTimeout,
		}, zapLogger),
		DB:    db,
		Redis: redisClient,
	})

	return server.New(cfg, engine, zapLogger).Run(ctx)
}

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/pantry-match/backend/internal/catalog"
	"github.com/pageza/pantry-match/backend/internal/database"
	"github.com/pageza/pantry-match/backend/internal/logger"
)

func main() {
	file := flag.String("file", "", "Catalog file to seed from (.json or .yaml); defaults to the built-in catalog")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	zapLogger := logger.Must(os.Getenv("LOG_LEVEL"), "console")
	defer func() { _ = zapLogger.Sync() }()

	var (
		recipes *catalog.Catalog
		err     error
	)
	if *file != "" {
		recipes, err = catalog.LoadFile(*file)
	} else {
		recipes, err = catalog.Embedded()
	}
	if err != nil {
		zapLogger.Fatal("Failed to load catalog", zap.Error(err))
	}

	ctx := context.Background()
	db, err := database.New(ctx, dsn, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.UpsertRecipes(ctx, db, recipes.All()); err != nil {
		zapLogger.Fatal("Failed to seed recipes", zap.Error(err))
	}
	zapLogger.Info("Seeded recipes", zap.Int("count", recipes.Len()))
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/pantry-match/backend/internal/database"
	"github.com/pageza/pantry-match/backend/internal/logger"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "", "Migrations directory (defaults to MIGRATIONS_DIR or ./migrations)")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	migrationsDir := *dir
	if migrationsDir == "" {
		migrationsDir = os.Getenv("MIGRATIONS_DIR")
	}
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	zapLogger := logger.Must(os.Getenv("LOG_LEVEL"), "console")
	defer func() { _ = zapLogger.Sync() }()

	ctx := context.Background()
	db, err := database.OpenSQL(ctx, dsn)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *rollback {
		name, err := database.RollbackLast(ctx, db, migrationsDir, zapLogger)
		if errors.Is(err, database.ErrNothingToRollback) {
			zapLogger.Info("No migrations to rollback")
			return
		}
		if err != nil {
			zapLogger.Fatal("Rollback failed", zap.Error(err))
		}
		zapLogger.Info("Rolled back migration", zap.String("name", name))
		return
	}

	applied, err := database.RunMigrations(ctx, db, migrationsDir, zapLogger)
	if err != nil {
		zapLogger.Fatal("Migration failed", zap.Error(err))
	}
	zapLogger.Info("Migrations complete", zap.Strings("applied", applied))
}

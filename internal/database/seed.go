package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/pantry-match/backend/internal/model"
)

// UpsertRecipes inserts recipes, replacing rows that already use the same id
func UpsertRecipes(ctx context.Context, db *gorm.DB, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).CreateInBatches(recipes, 100).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recipes: %w", err)
	}
	return nil
}

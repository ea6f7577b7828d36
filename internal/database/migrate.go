package database

import (
	"gorm.io/gorm"

	"github.com/tastetrail/backend/internal/model"
)

// Migrate brings the schema up to date for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.SavedRecipe{},
		&model.Recipe{},
		&model.Review{},
		&model.Collection{},
		&model.MealPlan{},
	)
}

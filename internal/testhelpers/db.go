package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastetrail/backend/internal/model"
)

// TestJWTSecret signs tokens in tests.
const TestJWTSecret = "test-secret"

// TestPassword is the plaintext password of every user created by CreateTestUser.
const TestPassword = "password123"

// SetupTestDB opens an in-memory SQLite database with the full schema.
// SQLite cannot evaluate the PostgreSQL column defaults, so the tables
// are created with explicit DDL instead of AutoMigrate.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	schema := `
	CREATE TABLE users (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		dietary_preferences TEXT NOT NULL DEFAULT '[]',
		allergies TEXT NOT NULL DEFAULT '[]',
		cuisine_preferences TEXT NOT NULL DEFAULT '[]'
	);

	CREATE TABLE saved_recipes (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		user_id TEXT NOT NULL,
		recipe_id TEXT NOT NULL,
		UNIQUE (user_id, recipe_id)
	);

	CREATE TABLE recipes (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		image_url TEXT,
		prep_time INTEGER NOT NULL,
		servings INTEGER NOT NULL,
		difficulty TEXT NOT NULL DEFAULT 'Easy',
		cuisine TEXT NOT NULL,
		dietary_tags TEXT NOT NULL DEFAULT '[]',
		ingredients TEXT NOT NULL DEFAULT '[]',
		instructions TEXT NOT NULL DEFAULT '[]',
		calories REAL,
		protein REAL,
		carbs REAL,
		fat REAL,
		average_rating REAL NOT NULL DEFAULT 0,
		created_by TEXT
	);

	CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		recipe_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL,
		photo_url TEXT,
		UNIQUE (recipe_id, user_id)
	);

	CREATE TABLE collections (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		recipe_ids TEXT NOT NULL DEFAULT '[]'
	);

	CREATE TABLE meal_plans (
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT 'My Meal Plan',
		week_start_date DATE NOT NULL,
		meals TEXT NOT NULL DEFAULT '{}'
	);`

	require.NoError(t, db.Exec(schema).Error, "failed to create test schema")
	return db
}

// CreateTestUser inserts a user whose password is TestPassword.
func CreateTestUser(t *testing.T, db *gorm.DB, name, email, role string) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestRecipe inserts a minimal valid recipe and returns it.
func CreateTestRecipe(t *testing.T, db *gorm.DB, title string, ingredients []model.Ingredient) *model.Recipe {
	t.Helper()

	recipe := &model.Recipe{
		Title:        title,
		Description:  "test recipe",
		PrepTime:     20,
		Servings:     2,
		Difficulty:   model.DifficultyEasy,
		Cuisine:      "International",
		DietaryTags:  model.JSONBStringArray{},
		Ingredients:  model.JSONBIngredients(ingredients),
		Instructions: model.JSONBStringArray{"step one", "step two"},
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

package types

import (
	"time"

	"github.com/tastetrail/backend/internal/model"
)

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name               string   `json:"name" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	Password           string   `json:"password" binding:"required,min=6"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
	CuisinePreferences []string `json:"cuisine_preferences"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the optional profile fields; nil means
// leave the stored value unchanged.
type UpdateProfileRequest struct {
	Name               *string   `json:"name"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
	Allergies          *[]string `json:"allergies"`
	CuisinePreferences *[]string `json:"cuisine_preferences"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description" binding:"required"`
	Image        string             `json:"image" binding:"required"`
	PrepTime     int                `json:"prep_time" binding:"required,gt=0"`
	Servings     int                `json:"servings" binding:"required,gt=0"`
	Difficulty   string             `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Cuisine      string             `json:"cuisine" binding:"required"`
	DietaryTags  []string           `json:"dietary_tags"`
	Ingredients  []model.Ingredient `json:"ingredients" binding:"required,dive"`
	Instructions []string           `json:"instructions" binding:"required"`
	Calories     float64            `json:"calories"`
	Protein      float64            `json:"protein"`
	Carbs        float64            `json:"carbs"`
	Fat          float64            `json:"fat"`
}

// UpdateRecipeRequest carries partial recipe fields for an admin update.
type UpdateRecipeRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Image        *string             `json:"image"`
	PrepTime     *int                `json:"prep_time" binding:"omitempty,gt=0"`
	Servings     *int                `json:"servings" binding:"omitempty,gt=0"`
	Difficulty   *string             `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Cuisine      *string             `json:"cuisine"`
	DietaryTags  *[]string           `json:"dietary_tags"`
	Ingredients  *[]model.Ingredient `json:"ingredients" binding:"omitempty,dive"`
	Instructions *[]string           `json:"instructions"`
	Calories     *float64            `json:"calories"`
	Protein      *float64            `json:"protein"`
	Carbs        *float64            `json:"carbs"`
	Fat          *float64            `json:"fat"`
}

// RecipeFilter narrows the public recipe listing.
type RecipeFilter struct {
	Search     string `form:"search"`
	Diet       string `form:"diet"`
	Cuisine    string `form:"cuisine"`
	MaxTime    int    `form:"maxTime"`
	Difficulty string `form:"difficulty"`
}

// CreateReviewRequest represents the request body for adding a review
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
	Photo   string `json:"photo"`
}

// CreateCollectionRequest represents the request body for creating a collection
type CreateCollectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCollectionRequest renames a collection.
type UpdateCollectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateMealPlanRequest represents the request body for creating a meal plan
type CreateMealPlanRequest struct {
	Name          string          `json:"name"`
	WeekStartDate time.Time       `json:"week_start_date" binding:"required"`
	Meals         model.MealSlots `json:"meals"`
}

// UpdateMealPlanRequest carries partial meal plan fields. A non-nil
// Meals replaces the whole slot map.
type UpdateMealPlanRequest struct {
	Name          *string          `json:"name"`
	WeekStartDate *time.Time       `json:"week_start_date"`
	Meals         *model.MealSlots `json:"meals"`
}

// ShoppingListRequest represents the request body for shopping list generation
type ShoppingListRequest struct {
	RecipeIDs []string `json:"recipeIds" binding:"required,min=1"`
}

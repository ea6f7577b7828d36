package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe difficulty levels
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// IngredientCategories is the closed set of shopping-list categories.
var IngredientCategories = []string{
	"Grains", "Proteins", "Vegetables", "Fruits", "Dairy",
	"Oils", "Condiments", "Spices", "Others",
}

// DietaryTags is the closed set of recipe dietary tags.
var DietaryTags = []string{
	"vegan", "vegetarian", "gluten-free", "dairy-free", "low-carb", "keto", "paleo",
}

// Ingredient is one entry of a recipe's ingredient list. Amount is a
// free-text string taken verbatim from the recipe author; the shopping
// list never parses it.
type Ingredient struct {
	Name     string `json:"name" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// Validate checks that the ingredient category is one of the enumerated set.
func (i Ingredient) Validate() error {
	for _, c := range IngredientCategories {
		if i.Category == c {
			return nil
		}
	}
	return fmt.Errorf("invalid ingredient category %q", i.Category)
}

type Recipe struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
	Title         string           `gorm:"size:255;not null" json:"title"`
	Description   string           `gorm:"type:text;not null" json:"description"`
	ImageURL      string           `gorm:"size:255" json:"image"`
	PrepTime      int              `gorm:"not null" json:"prep_time"`
	Servings      int              `gorm:"not null" json:"servings"`
	Difficulty    string           `gorm:"size:20;not null;default:'Easy'" json:"difficulty"`
	Cuisine       string           `gorm:"size:100;not null" json:"cuisine"`
	DietaryTags   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_tags"`
	Ingredients   JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Calories      float64          `gorm:"type:float" json:"calories"`
	Protein       float64          `gorm:"type:float" json:"protein"`
	Carbs         float64          `gorm:"type:float" json:"carbs"`
	Fat           float64          `gorm:"type:float" json:"fat"`
	AverageRating float64          `gorm:"type:float;not null;default:0" json:"average_rating"`
	CreatedBy     uuid.UUID        `gorm:"type:uuid" json:"created_by"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

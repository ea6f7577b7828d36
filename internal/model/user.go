package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DietaryPreferences lists the supported dietary preference values.
var DietaryPreferences = []string{
	"Vegan", "Vegetarian", "Gluten-Free", "Dairy-Free", "Keto", "Paleo", "Low-Carb",
}

// CuisinePreferences lists the supported cuisine preference values.
var CuisinePreferences = []string{
	"Italian", "Mexican", "Chinese", "Indian", "Thai", "Mediterranean", "American", "Japanese",
}

type User struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"-"`
	Name               string           `gorm:"size:255;not null" json:"name"`
	Email              string           `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash       string           `gorm:"not null" json:"-"`
	Role               string           `gorm:"size:20;not null;default:'user'" json:"role"`
	DietaryPreferences JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_preferences"`
	Allergies          JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergies"`
	CuisinePreferences JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"cuisine_preferences"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SavedRecipe marks a recipe as saved by a user. The save-recipe toggle
// flips rows in and out of this table.
type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_recipes_user_recipe,priority:1" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_recipes_user_recipe,priority:2" json:"recipe_id"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}

func (s *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

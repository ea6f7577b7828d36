package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection is a user-owned, ordered list of recipe ids. A recipe id
// appears at most once; ordering is insertion order.
type Collection struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string           `gorm:"size:255;not null" json:"name"`
	RecipeIDs JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"recipes"`
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AddRecipe appends a recipe id, reporting false when it is already present.
func (c *Collection) AddRecipe(recipeID uuid.UUID) bool {
	id := recipeID.String()
	if c.RecipeIDs.Contains(id) {
		return false
	}
	c.RecipeIDs = append(c.RecipeIDs, id)
	return true
}

// RemoveRecipe filters a recipe id out of the list. Removing an absent
// id is a silent no-op.
func (c *Collection) RemoveRecipe(recipeID uuid.UUID) {
	id := recipeID.String()
	filtered := make(JSONBStringArray, 0, len(c.RecipeIDs))
	for _, v := range c.RecipeIDs {
		if v != id {
			filtered = append(filtered, v)
		}
	}
	c.RecipeIDs = filtered
}

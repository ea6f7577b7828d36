package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCollectionAddRecipe(t *testing.T) {
	c := Collection{Name: "Weeknight Dinners"}
	recipeID := uuid.New()

	assert.True(t, c.AddRecipe(recipeID))
	assert.Len(t, c.RecipeIDs, 1)

	// Duplicate adds are rejected.
	assert.False(t, c.AddRecipe(recipeID))
	assert.Len(t, c.RecipeIDs, 1)

	other := uuid.New()
	assert.True(t, c.AddRecipe(other))
	assert.Equal(t, JSONBStringArray{recipeID.String(), other.String()}, c.RecipeIDs)
}

func TestCollectionRemoveRecipe(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	c := Collection{RecipeIDs: JSONBStringArray{first.String(), second.String()}}

	c.RemoveRecipe(first)
	assert.Equal(t, JSONBStringArray{second.String()}, c.RecipeIDs)

	// Removing an absent recipe is a silent no-op.
	c.RemoveRecipe(uuid.New())
	assert.Equal(t, JSONBStringArray{second.String()}, c.RecipeIDs)
}

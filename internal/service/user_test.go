package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/testhelpers"
	"github.com/tastetrail/backend/internal/types"
)

func TestUpdateProfilePartialMerge(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewUserService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)

	diet := []string{"Vegan", "Gluten-Free"}
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		DietaryPreferences: &diet,
	})
	require.NoError(t, err)
	assert.Equal(t, model.JSONBStringArray{"Vegan", "Gluten-Free"}, updated.DietaryPreferences)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Alice", updated.Name)

	name := "Alicia"
	updated, err = svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, model.JSONBStringArray{"Vegan", "Gluten-Free"}, updated.DietaryPreferences)
}

func TestToggleSavedRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewUserService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, "Buddha Bowl", nil)

	saved, err := svc.ToggleSavedRecipe(context.Background(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	ids, err := svc.SavedRecipeIDs(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{recipe.ID}, ids)

	// Toggling again removes the save.
	saved, err = svc.ToggleSavedRecipe(context.Background(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	ids, err = svc.SavedRecipeIDs(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSavedRecipesOrder(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewUserService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)

	first := testhelpers.CreateTestRecipe(t, db, "First", nil)
	second := testhelpers.CreateTestRecipe(t, db, "Second", nil)

	_, err := svc.ToggleSavedRecipe(context.Background(), user.ID, first.ID)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.ToggleSavedRecipe(context.Background(), user.ID, second.ID)
	require.NoError(t, err)

	recipes, err := svc.SavedRecipes(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Second", recipes[0].Title)
	assert.Equal(t, "First", recipes[1].Title)
}

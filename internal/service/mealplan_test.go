package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/testhelpers"
	"github.com/tastetrail/backend/internal/types"
)

func weekOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMealPlanLifecycle(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealPlanService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, "Buddha Bowl", nil)

	meals := model.MealSlots{}
	meals.Set(model.SlotKey{Day: model.Monday, MealType: model.Dinner}, recipe.ID)

	created, err := svc.CreateMealPlan(context.Background(), user.ID, &types.CreateMealPlanRequest{
		Name:          "Week One",
		WeekStartDate: weekOf(2026, time.March, 2),
		Meals:         meals,
	})
	require.NoError(t, err)
	got, ok := created.Meals.Get(model.SlotKey{Day: model.Monday, MealType: model.Dinner})
	require.True(t, ok)
	assert.Equal(t, recipe.ID, got)

	loaded, err := svc.GetMealPlan(context.Background(), created.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Week One", loaded.Name)
	got, ok = loaded.Meals.Get(model.SlotKey{Day: model.Monday, MealType: model.Dinner})
	require.True(t, ok)
	assert.Equal(t, recipe.ID, got)

	require.NoError(t, svc.DeleteMealPlan(context.Background(), created.ID, user.ID))
	_, err = svc.GetMealPlan(context.Background(), created.ID, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateMealPlanDefaults(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealPlanService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)

	created, err := svc.CreateMealPlan(context.Background(), user.ID, &types.CreateMealPlanRequest{
		WeekStartDate: weekOf(2026, time.March, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "My Meal Plan", created.Name)
	assert.NotNil(t, created.Meals)
	assert.Empty(t, created.Meals)
}

func TestUpdateMealPlanReplacesSlotMap(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealPlanService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	oldRecipe := testhelpers.CreateTestRecipe(t, db, "Old", nil)
	newRecipe := testhelpers.CreateTestRecipe(t, db, "New", nil)

	dinner := model.SlotKey{Day: model.Monday, MealType: model.Dinner}
	lunch := model.SlotKey{Day: model.Tuesday, MealType: model.Lunch}

	meals := model.MealSlots{}
	meals.Set(dinner, oldRecipe.ID)
	meals.Set(lunch, oldRecipe.ID)

	created, err := svc.CreateMealPlan(context.Background(), user.ID, &types.CreateMealPlanRequest{
		WeekStartDate: weekOf(2026, time.March, 2),
		Meals:         meals,
	})
	require.NoError(t, err)

	// The replacement map overwrites the dinner slot and clears lunch.
	replacement := model.MealSlots{}
	replacement.Set(dinner, newRecipe.ID)

	updated, err := svc.UpdateMealPlan(context.Background(), created.ID, user.ID, &types.UpdateMealPlanRequest{
		Meals: &replacement,
	})
	require.NoError(t, err)

	got, ok := updated.Meals.Get(dinner)
	require.True(t, ok)
	assert.Equal(t, newRecipe.ID, got)
	_, ok = updated.Meals.Get(lunch)
	assert.False(t, ok)
}

func TestMealPlanOwnershipEnforced(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealPlanService(db)
	owner := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	intruder := testhelpers.CreateTestUser(t, db, "Mallory", "mallory@example.com", model.RoleUser)

	created, err := svc.CreateMealPlan(context.Background(), owner.ID, &types.CreateMealPlanRequest{
		WeekStartDate: weekOf(2026, time.March, 2),
	})
	require.NoError(t, err)

	_, err = svc.GetMealPlan(context.Background(), created.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, svc.DeleteMealPlan(context.Background(), created.ID, intruder.ID), ErrForbidden)
}

func TestListMealPlansMostRecentWeekFirst(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealPlanService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)

	_, err := svc.CreateMealPlan(context.Background(), user.ID, &types.CreateMealPlanRequest{
		Name:          "Earlier",
		WeekStartDate: weekOf(2026, time.March, 2),
	})
	require.NoError(t, err)
	_, err = svc.CreateMealPlan(context.Background(), user.ID, &types.CreateMealPlanRequest{
		Name:          "Later",
		WeekStartDate: weekOf(2026, time.March, 9),
	})
	require.NoError(t, err)

	plans, err := svc.ListMealPlans(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Later", plans[0].Name)
	assert.Equal(t, "Earlier", plans[1].Name)
}

package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/testhelpers"
	"github.com/tastetrail/backend/internal/types"
)

func TestMealPlanEndpoints(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, "Buddha Bowl", nil)
	token := tokenFor(t, db, "alice@example.com")

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/mealplans", token, gin.H{
		"name":            "Week One",
		"week_start_date": "2026-03-02T00:00:00Z",
		"meals": gin.H{
			"Monday-Dinner": recipe.ID.String(),
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var plan model.MealPlan
	decodeData(t, resp, &plan)
	got, ok := plan.Meals.Get(model.SlotKey{Day: model.Monday, MealType: model.Dinner})
	require.True(t, ok)
	assert.Equal(t, recipe.ID, got)
	base := "/api/v1/mealplans/" + plan.ID.String()

	// A malformed slot key never reaches storage.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/mealplans", token, gin.H{
		"week_start_date": "2026-03-02T00:00:00Z",
		"meals": gin.H{
			"Someday-Dinner": recipe.ID.String(),
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Updating with a new map replaces every slot.
	w, resp = doRequest(t, router, http.MethodPut, base, token, gin.H{
		"meals": gin.H{
			"Tuesday-Lunch": recipe.ID.String(),
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &plan)
	_, ok = plan.Meals.Get(model.SlotKey{Day: model.Monday, MealType: model.Dinner})
	assert.False(t, ok)
	_, ok = plan.Meals.Get(model.SlotKey{Day: model.Tuesday, MealType: model.Lunch})
	assert.True(t, ok)

	w, resp = doRequest(t, router, http.MethodGet, "/api/v1/mealplans", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []model.MealPlan
	decodeData(t, resp, &plans)
	assert.Len(t, plans, 1)

	w, _ = doRequest(t, router, http.MethodDelete, base, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doRequest(t, router, http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateShoppingListEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	token := tokenFor(t, db, "alice@example.com")

	bowl := testhelpers.CreateTestRecipe(t, db, "Buddha Bowl", []model.Ingredient{
		{Name: "Quinoa", Amount: "1 cup", Category: "Grains"},
		{Name: "Tahini", Amount: "2 tbsp", Category: "Condiments"},
	})
	salad := testhelpers.CreateTestRecipe(t, db, "Salad", []model.Ingredient{
		{Name: "tahini", Amount: "1 tbsp", Category: "Condiments"},
	})

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/mealplans/shopping-list/generate", token, gin.H{
		"recipeIds": []string{bowl.ID.String(), salad.ID.String()},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var list types.ShoppingList
	decodeData(t, resp, &list)
	require.Len(t, list["Condiments"], 1)
	assert.Equal(t, "Tahini", list["Condiments"][0].Name)
	assert.Equal(t, []string{"2 tbsp", "1 tbsp"}, list["Condiments"][0].Amounts)

	// Binding rejects an empty id list.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/mealplans/shopping-list/generate", token, gin.H{
		"recipeIds": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/mealplans/shopping-list/generate", token, gin.H{
		"recipeIds": []string{"not-a-uuid"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The generator sits behind auth like the rest of the group.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/mealplans/shopping-list/generate", "", gin.H{
		"recipeIds": []string{bowl.ID.String()},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/testhelpers"
)

func validRecipeBody() gin.H {
	return gin.H{
		"title":       "Vegan Buddha Bowl",
		"description": "quinoa and chickpeas",
		"image":       "https://example.com/bowl.jpg",
		"prep_time":   30,
		"servings":    2,
		"difficulty":  "Easy",
		"cuisine":     "International",
		"dietary_tags": []string{"vegan"},
		"ingredients": []gin.H{
			{"name": "Quinoa", "amount": "1 cup", "category": "Grains"},
		},
		"instructions": []string{"cook quinoa", "assemble bowl"},
	}
}

func TestListRecipesEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateTestRecipe(t, db, "Buddha Bowl", nil)
	testhelpers.CreateTestRecipe(t, db, "Beef Stew", nil)

	w, resp := doRequest(t, router, http.MethodGet, "/api/v1/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)

	var recipes []model.Recipe
	decodeData(t, resp, &recipes)
	assert.Len(t, recipes, 2)

	w, resp = doRequest(t, router, http.MethodGet, "/api/v1/recipes?search=buddha", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *resp.Count)
}

func TestGetRecipeEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	recipe := testhelpers.CreateTestRecipe(t, db, "Buddha Bowl", nil)

	w, resp := doRequest(t, router, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Recipe
	decodeData(t, resp, &got)
	assert.Equal(t, recipe.ID, got.ID)

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/recipes/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/recipes/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRecipeRequiresAdmin(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	testhelpers.CreateTestUser(t, db, "Root", "admin@example.com", model.RoleAdmin)

	// Anonymous callers are rejected outright.
	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/recipes", "", validRecipeBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Ordinary users cannot touch the catalog.
	userToken := tokenFor(t, db, "alice@example.com")
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/recipes", userToken, validRecipeBody())
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := tokenFor(t, db, "admin@example.com")
	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/recipes", adminToken, validRecipeBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Recipe
	decodeData(t, resp, &created)
	assert.Equal(t, "Vegan Buddha Bowl", created.Title)
	assert.NotEmpty(t, created.ID)
}

func TestCreateRecipeValidation(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "Root", "admin@example.com", model.RoleAdmin)
	adminToken := tokenFor(t, db, "admin@example.com")

	body := validRecipeBody()
	delete(body, "title")
	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/recipes", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = validRecipeBody()
	body["difficulty"] = "Impossible"
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/recipes", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = validRecipeBody()
	body["ingredients"] = []gin.H{{"name": "Mystery", "amount": "1", "category": "Cereal"}}
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/recipes", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteRecipeEndpoints(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	testhelpers.CreateTestUser(t, db, "Root", "admin@example.com", model.RoleAdmin)
	recipe := testhelpers.CreateTestRecipe(t, db, "Original", nil)

	userToken := tokenFor(t, db, "alice@example.com")
	adminToken := tokenFor(t, db, "admin@example.com")

	w, _ := doRequest(t, router, http.MethodPut, "/api/v1/recipes/"+recipe.ID.String(), userToken, gin.H{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp := doRequest(t, router, http.MethodPut, "/api/v1/recipes/"+recipe.ID.String(), adminToken, gin.H{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Recipe
	decodeData(t, resp, &updated)
	assert.Equal(t, "Renamed", updated.Title)

	w, _ = doRequest(t, router, http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewEndpoints(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, "Rated", nil)
	token := tokenFor(t, db, "alice@example.com")

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/recipes/"+recipe.ID.String()+"/reviews", token, gin.H{
		"rating":  5,
		"comment": "excellent",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var review model.Review
	decodeData(t, resp, &review)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Alice", review.UserName)

	// One review per user per recipe.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/recipes/"+recipe.ID.String()+"/reviews", token, gin.H{
		"rating":  1,
		"comment": "changed my mind",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rating outside 1..5 fails binding.
	other := testhelpers.CreateTestRecipe(t, db, "Other", nil)
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/recipes/"+other.ID.String()+"/reviews", token, gin.H{
		"rating":  6,
		"comment": "off the chart",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Reviews are publicly readable.
	w, resp = doRequest(t, router, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String()+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []model.Review
	decodeData(t, resp, &reviews)
	require.Len(t, reviews, 1)
}

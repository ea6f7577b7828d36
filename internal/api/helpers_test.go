package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tastetrail/backend/internal/service"
	"github.com/tastetrail/backend/internal/testhelpers"
)

// envelope mirrors types.APIResponse for decoding test responses.
type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)

	authService := service.NewAuthService(db, testhelpers.TestJWTSecret)
	userService := service.NewUserService(db)
	recipeService := service.NewRecipeService(db)
	collectionService := service.NewCollectionService(db)
	mealPlanService := service.NewMealPlanService(db)
	shoppingListService := service.NewShoppingListService(db)

	router := gin.New()
	v1 := router.Group("/api/v1")

	NewAuthHandler(authService, nil).RegisterRoutes(v1)
	NewUserHandler(userService, authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, authService, nil).RegisterRoutes(v1)
	NewCollectionHandler(collectionService, authService).RegisterRoutes(v1)
	NewMealPlanHandler(mealPlanService, shoppingListService, authService).RegisterRoutes(v1)

	return router, db
}

// tokenFor logs an existing test user in and returns a signed token.
func tokenFor(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	authService := service.NewAuthService(db, testhelpers.TestJWTSecret)
	token, _, err := authService.Login(email, testhelpers.TestPassword)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func decodeData(t *testing.T, resp envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

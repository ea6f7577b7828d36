package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastetrail/backend/internal/middleware"
	"github.com/tastetrail/backend/internal/service"
	"github.com/tastetrail/backend/internal/types"
)

// UserHandler serves profile and saved-recipe endpoints.
type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(h.authService))
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile", h.UpdateProfile)
		users.POST("/save-recipe/:recipeId", h.ToggleSaveRecipe)
		users.GET("/saved-recipes", h.GetSavedRecipes)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, user)
}

func (h *UserHandler) ToggleSaveRecipe(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if _, err := h.userService.ToggleSavedRecipe(c.Request.Context(), claims.UserID, recipeID); err != nil {
		failFromService(c, err)
		return
	}

	ids, err := h.userService.SavedRecipeIDs(c.Request.Context(), claims.UserID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, ids)
}

func (h *UserHandler) GetSavedRecipes(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	recipes, err := h.userService.SavedRecipes(c.Request.Context(), claims.UserID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, recipes)
}

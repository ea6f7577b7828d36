package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastetrail/backend/internal/middleware"
	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/service"
	"github.com/tastetrail/backend/internal/types"
)

// RecipeHandler serves the public catalog, admin mutations and reviews.
type RecipeHandler struct {
	recipeService *service.RecipeService
	authService   *service.AuthService
	rateLimiter   *middleware.RateLimiter
}

func NewRecipeHandler(recipeService *service.RecipeService, authService *service.AuthService, rateLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		rateLimiter:   rateLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)
	admin := middleware.AdminRequired()

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", auth, admin, h.CreateRecipe)
		recipes.PUT("/:id", auth, admin, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, admin, h.DeleteRecipe)

		recipes.GET("/:id/reviews", h.ListReviews)
		if h.rateLimiter != nil {
			recipes.POST("/:id/reviews", auth, h.rateLimiter.ByUser(), h.AddReview)
		} else {
			recipes.POST("/:id/reviews", auth, h.AddReview)
		}
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var filter types.RecipeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, http.StatusBadRequest, "invalid filter parameters")
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), &filter)
	if err != nil {
		failFromService(c, err)
		return
	}

	respondList(c, http.StatusOK, len(recipes), recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	recipe := &model.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.Image,
		PrepTime:     req.PrepTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Cuisine:      req.Cuisine,
		DietaryTags:  model.JSONBStringArray(req.DietaryTags),
		Ingredients:  model.JSONBIngredients(req.Ingredients),
		Instructions: model.JSONBStringArray(req.Instructions),
		Calories:     req.Calories,
		Protein:      req.Protein,
		Carbs:        req.Carbs,
		Fat:          req.Fat,
		CreatedBy:    claims.UserID,
	}

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	respond(c, http.StatusCreated, created)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{})
}

func (h *RecipeHandler) ListReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	reviews, err := h.recipeService.ListReviews(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, reviews)
}

func (h *RecipeHandler) AddReview(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	review, err := h.recipeService.AddReview(c.Request.Context(), id, claims, &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusCreated, review)
}

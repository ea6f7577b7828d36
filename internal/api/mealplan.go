package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastetrail/backend/internal/middleware"
	"github.com/tastetrail/backend/internal/service"
	"github.com/tastetrail/backend/internal/types"
)

// MealPlanHandler serves the owner-scoped meal plan endpoints and
// shopping-list generation.
type MealPlanHandler struct {
	mealPlanService     *service.MealPlanService
	shoppingListService *service.ShoppingListService
	authService         *service.AuthService
}

func NewMealPlanHandler(mealPlanService *service.MealPlanService, shoppingListService *service.ShoppingListService, authService *service.AuthService) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanService:     mealPlanService,
		shoppingListService: shoppingListService,
		authService:         authService,
	}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	mealplans := router.Group("/mealplans")
	mealplans.Use(middleware.AuthMiddleware(h.authService))
	{
		// registered before /:id so gin does not treat it as an id
		mealplans.POST("/shopping-list/generate", h.GenerateShoppingList)

		mealplans.GET("", h.ListMealPlans)
		mealplans.POST("", h.CreateMealPlan)
		mealplans.GET("/:id", h.GetMealPlan)
		mealplans.PUT("/:id", h.UpdateMealPlan)
		mealplans.DELETE("/:id", h.DeleteMealPlan)
	}
}

func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	plans, err := h.mealPlanService.ListMealPlans(c.Request.Context(), claims.UserID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, plans)
}

func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	claims, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	plan, err := h.mealPlanService.GetMealPlan(c.Request.Context(), id, claims.UserID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, plan)
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	plan, err := h.mealPlanService.CreateMealPlan(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusCreated, plan)
}

func (h *MealPlanHandler) UpdateMealPlan(c *gin.Context) {
	claims, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	var req types.UpdateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	plan, err := h.mealPlanService.UpdateMealPlan(c.Request.Context(), id, claims.UserID, &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, plan)
}

func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	claims, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	if err := h.mealPlanService.DeleteMealPlan(c.Request.Context(), id, claims.UserID); err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{})
}

func (h *MealPlanHandler) GenerateShoppingList(c *gin.Context) {
	var req types.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "please provide recipe IDs")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.RecipeIDs))
	for _, raw := range req.RecipeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid recipe id: "+raw)
			return
		}
		ids = append(ids, id)
	}

	list, err := h.shoppingListService.Generate(c.Request.Context(), ids)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, list)
}

func (h *MealPlanHandler) callerAndID(c *gin.Context) (*types.TokenClaims, uuid.UUID, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid meal plan id")
		return nil, uuid.Nil, false
	}

	return claims, id, true
}

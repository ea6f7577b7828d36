package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastetrail/backend/internal/middleware"
	"github.com/tastetrail/backend/internal/service"
	"github.com/tastetrail/backend/internal/types"
)

// CollectionHandler serves the owner-scoped collection endpoints.
type CollectionHandler struct {
	collectionService *service.CollectionService
	authService       *service.AuthService
}

func NewCollectionHandler(collectionService *service.CollectionService, authService *service.AuthService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
		authService:       authService,
	}
}

func (h *CollectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	collections := router.Group("/collections")
	collections.Use(middleware.AuthMiddleware(h.authService))
	{
		collections.GET("", h.ListCollections)
		collections.POST("", h.CreateCollection)
		collections.GET("/:id", h.GetCollection)
		collections.PUT("/:id", h.UpdateCollection)
		collections.DELETE("/:id", h.DeleteCollection)
		collections.POST("/:id/recipes/:recipeId", h.AddRecipe)
		collections.DELETE("/:id/recipes/:recipeId", h.RemoveRecipe)
	}
}

func (h *CollectionHandler) ListCollections(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	collections, err := h.collectionService.ListCollections(c.Request.Context(), claims.UserID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, collections)
}

func (h *CollectionHandler) GetCollection(c *gin.Context) {
	claims, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	collection, err := h.collectionService.GetCollection(c.Request.Context(), id, claims.UserID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, collection)
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req types.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	collection, err := h.collectionService.CreateCollection(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusCreated, collection)
}

func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	claims, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	var req types.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	collection, err := h.collectionService.UpdateCollection(c.Request.Context(), id, claims.UserID, &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, collection)
}

func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	claims, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	if err := h.collectionService.DeleteCollection(c.Request.Context(), id, claims.UserID); err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{})
}

func (h *CollectionHandler) AddRecipe(c *gin.Context) {
	claims, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	collection, err := h.collectionService.AddRecipe(c.Request.Context(), id, claims.UserID, recipeID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, collection)
}

func (h *CollectionHandler) RemoveRecipe(c *gin.Context) {
	claims, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	collection, err := h.collectionService.RemoveRecipe(c.Request.Context(), id, claims.UserID, recipeID)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, collection)
}

func (h *CollectionHandler) callerAndID(c *gin.Context) (*types.TokenClaims, uuid.UUID, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "not authenticated")
		return nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid collection id")
		return nil, uuid.Nil, false
	}

	return claims, id, true
}

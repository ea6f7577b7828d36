package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastetrail/backend/internal/middleware"
	"github.com/tastetrail/backend/internal/service"
	"github.com/tastetrail/backend/internal/types"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authService *service.AuthService
	rateLimiter *middleware.RateLimiter
}

func NewAuthHandler(authService *service.AuthService, rateLimiter *middleware.RateLimiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		if h.rateLimiter != nil {
			auth.POST("/login", h.rateLimiter.ByClientIP(), h.Login)
		} else {
			auth.POST("/login", h.Login)
		}
		auth.POST("/register", h.Register)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	token, user, err := h.authService.Register(&req)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusCreated, types.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		failFromService(c, err)
		return
	}

	respond(c, http.StatusOK, types.AuthResponse{Token: token, User: user})
}

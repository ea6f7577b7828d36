package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tastetrail/backend/config"
	"github.com/tastetrail/backend/internal/api"
	"github.com/tastetrail/backend/internal/middleware"
	"github.com/tastetrail/backend/internal/router"
	"github.com/tastetrail/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New wires services, handlers and middleware into a server instance.
// redisClient and s3cfg may be nil; rate limiting and image uploads are
// disabled when their backing store is not configured.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3cfg *config.S3Config, logger *zap.Logger) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	userService := service.NewUserService(db)
	recipeService := service.NewRecipeService(db)
	collectionService := service.NewCollectionService(db)
	mealPlanService := service.NewMealPlanService(db)
	shoppingListService := service.NewShoppingListService(db)

	var loginLimiter, reviewLimiter *middleware.RateLimiter
	if redisClient != nil {
		loginLimiter = middleware.NewLoginRateLimiter(redisClient)
		reviewLimiter = middleware.NewReviewRateLimiter(redisClient)
	}

	handlers := []router.RouteRegistrar{
		api.NewAuthHandler(authService, loginLimiter),
		api.NewUserHandler(userService, authService),
		api.NewRecipeHandler(recipeService, authService, reviewLimiter),
		api.NewCollectionHandler(collectionService, authService),
		api.NewMealPlanHandler(mealPlanService, shoppingListService, authService),
	}
	if s3cfg != nil {
		imageService := service.NewImageService(s3cfg)
		handlers = append(handlers, api.NewImageHandler(imageService, authService))
	}

	engine := router.SetupRouter(logger, cfg.AllowedOrigins, handlers...)

	return &Server{
		engine: engine,
		logger: logger,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tastetrail/backend/config"
	"github.com/tastetrail/backend/internal/database"
	"github.com/tastetrail/backend/internal/logging"
	"github.com/tastetrail/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient := connectRedis(cfg, logger)
	s3cfg := connectS3(cfg, logger)

	srv := server.New(cfg, db, redisClient, s3cfg, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	logger.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

// connectRedis returns nil when no Redis host is configured; the server
// runs without rate limiting in that case.
func connectRedis(cfg *config.Config, logger *zap.Logger) *redis.Client {
	if cfg.RedisHost == "" {
		logger.Warn("redis not configured, rate limiting disabled")
		return nil
	}
	client, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	return client
}

// connectS3 returns nil when no bucket is configured; image uploads are
// disabled in that case.
func connectS3(cfg *config.Config, logger *zap.Logger) *config.S3Config {
	if cfg.S3Bucket == "" {
		logger.Warn("s3 not configured, image uploads disabled")
		return nil
	}
	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to initialize s3", zap.Error(err))
	}
	return s3cfg
}

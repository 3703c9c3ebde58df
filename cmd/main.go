package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/gradelab-2025.net/internal/adapter/piston"
	"gitlab.com/gradelab-2025.net/internal/adapter/postgres/gradingrepository"
	"gitlab.com/gradelab-2025.net/internal/adapter/redis/ratelimit"
	"gitlab.com/gradelab-2025.net/internal/config"
	"gitlab.com/gradelab-2025.net/internal/core/services/grading"
	logger2 "gitlab.com/gradelab-2025.net/internal/global/logger"
	"gitlab.com/gradelab-2025.net/internal/handlers"
	http2 "gitlab.com/gradelab-2025.net/internal/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger2.Warn("No .env file loaded", "error", err)
	}

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting grading service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		logger.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := setupRedis(sysCfg.RedisConfig)
	defer redisClient.Close()

	// secondary ports
	executor := piston.NewClient(sysCfg.ExecutorConfig, logger)
	gradingRepo := gradingrepository.NewGradingRepository(db, logger)
	limiter := ratelimit.NewLimiter(redisClient, sysCfg.RateLimitConfig, logger)

	// services
	gradingSvc := grading.NewGradingService(executor, gradingRepo, logger)
	middleware := handlers.New(sysCfg.JwtConfig.Secret, limiter, logger)
	serviceProvider := http2.NewServiceProvider(gradingSvc, middleware)

	// server
	httpServer := http2.NewServer(sysCfg.HTTPConfig.Port, sysCfg.HTTPConfig.ServiceName, *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// setupRedis sets up the Redis connection
func setupRedis(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Url,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

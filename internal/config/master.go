package config

import "os"

type AppConfig struct {
	DebugMode       bool
	HTTPConfig      *HTTPConfig
	ExecutorConfig  *ExecutorConfig
	RateLimitConfig *RateLimitConfig
	RedisConfig     *RedisConfig
	PostgresConfig  *PostgresConfig
	JwtConfig       *JwtConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:       os.Getenv("DEBUG_MODE") == "true",
		HTTPConfig:      NewHTTPConfig(),
		ExecutorConfig:  NewExecutorConfig(),
		RateLimitConfig: NewRateLimitConfig(),
		RedisConfig:     NewRedisConfig(),
		PostgresConfig:  NewPostgresConfig(),
		JwtConfig:       NewJwtConfig(),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

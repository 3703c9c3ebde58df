package config

import (
	"os"
	"strconv"
	"time"
)

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func NewRateLimitConfig() *RateLimitConfig {
	limit, err := strconv.Atoi(os.Getenv("RATE_LIMIT_EXECUTIONS"))
	if err != nil {
		limit = 10
	}
	windowSec, err := strconv.Atoi(os.Getenv("RATE_LIMIT_WINDOW_SEC"))
	if err != nil {
		windowSec = 60
	}
	return &RateLimitConfig{
		Limit:  limit,
		Window: time.Duration(windowSec) * time.Second,
	}
}

package config

import (
	"os"
	"strconv"
	"time"
)

// ExecutorConfig points the gateway client at a Piston-compatible
// execution service. RequestTimeout bounds the whole HTTP round trip and
// must exceed the compile+run timeouts forwarded inside the request.
type ExecutorConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	RunTimeout     int
	CompileTimeout int
}

func NewExecutorConfig() *ExecutorConfig {
	requestTimeoutSec, err := strconv.Atoi(os.Getenv("EXECUTOR_REQUEST_TIMEOUT_SEC"))
	if err != nil {
		requestTimeoutSec = 30
	}
	runTimeoutMs, err := strconv.Atoi(os.Getenv("EXECUTOR_RUN_TIMEOUT_MS"))
	if err != nil {
		runTimeoutMs = 3000
	}
	compileTimeoutMs, err := strconv.Atoi(os.Getenv("EXECUTOR_COMPILE_TIMEOUT_MS"))
	if err != nil {
		compileTimeoutMs = 10000
	}
	return &ExecutorConfig{
		BaseURL:        getEnv("EXECUTOR_BASE_URL", "http://localhost:2000"),
		RequestTimeout: time.Duration(requestTimeoutSec) * time.Second,
		RunTimeout:     runTimeoutMs,
		CompileTimeout: compileTimeoutMs,
	}
}

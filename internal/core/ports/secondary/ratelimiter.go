package secondary

import "context"

// RateLimiter answers whether a client may start another code execution
// within the current window
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

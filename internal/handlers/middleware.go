package handlers

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/gradelab-2025.net/internal/core/ports/primary"
	"gitlab.com/gradelab-2025.net/internal/core/ports/secondary"
	"gitlab.com/gradelab-2025.net/internal/handlers/response"
)

type MiddlewareProvider struct {
	SecretOption string
	rateLimiter  secondary.RateLimiter
	logger       primary.Logger
}

func New(secret string, rateLimiter secondary.RateLimiter, logger primary.Logger) *MiddlewareProvider {
	return &MiddlewareProvider{
		SecretOption: secret,
		rateLimiter:  rateLimiter,
		logger:       logger,
	}
}

func (m *MiddlewareProvider) secret() []byte {
	return []byte(m.SecretOption)
}

// JWTMiddleware verifies bearer tokens issued by the auth server. With no
// configured secret the check is skipped entirely (local development).
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.SecretOption == "" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.WriteError(w, http.StatusUnauthorized, "Authorization header missing", nil)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return m.secret(), nil
		})

		if err != nil || !token.Valid {
			response.WriteError(w, http.StatusUnauthorized, "Invalid token", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware enforces the per-client execution quota. Limiter
// outages fail open: an unreachable Redis should not take grading down.
func (m *MiddlewareProvider) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := clientKey(r)
		allowed, err := m.rateLimiter.Allow(r.Context(), key)
		if err != nil {
			m.logger.Warn("Rate limiter unavailable", "client", key, "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			response.WriteError(w, http.StatusTooManyRequests, "Too many execution requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller for rate limiting purposes
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

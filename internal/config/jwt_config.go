package config

import "os"

// JwtConfig holds the shared secret used to verify tokens issued by the
// external auth server. An empty secret disables request authentication.
type JwtConfig struct {
	Secret string
}

func NewJwtConfig() *JwtConfig {
	return &JwtConfig{
		Secret: os.Getenv("JWT_SECRET"),
	}
}

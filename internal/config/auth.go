package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Println("Warning: JWT_SECRET not set, using insecure default")
			secret = "insecure-dev-secret"
		}
		ttl := 60 * time.Minute
		if raw := os.Getenv("JWT_TTL_MINUTES"); raw != "" {
			if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
				ttl = time.Duration(minutes) * time.Minute
			}
		}
		authConfig = &AuthConfig{
			JWTSecret: secret,
			TokenTTL:  ttl,
		}
	})
	return authConfig
}

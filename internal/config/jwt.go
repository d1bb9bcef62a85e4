package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		ttl := time.Hour
		if raw := os.Getenv("JWT_TTL"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				log.Printf("Warning: invalid JWT_TTL %q, defaulting to %s", raw, ttl)
			} else {
				ttl = d
			}
		}
		jwtConfig = &JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			TTL:    ttl,
		}
	})
	return jwtConfig
}

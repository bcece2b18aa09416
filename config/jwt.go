package config

import (
	"os"
	"time"
)

const JWTExpiration = 24 * time.Hour

func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-this-in-production"
	}
	return []byte(secret)
}

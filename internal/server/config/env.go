package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables. Unset or
// malformed values leave the current configuration untouched.
//
// Recognized variables: ADDRESS, DATABASE_DSN, SECRET_KEY,
// ACCESS_TOKEN_VALIDITY_MINUTES, CORS_ALLOWED_ORIGIN.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_VALIDITY_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGIN"); v != "" {
		config.CORSAllowedOrigin = v
	}
}

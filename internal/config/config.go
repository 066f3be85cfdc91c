package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	DatabaseURL string
	CORSOrigin  string
	GinMode     string
}

// Load reads configuration from the environment. DATABASE_URL is
// optional; without it the server runs on the in-memory store.
// GIN_MODE is empty unless set, leaving gin's default in place.
func Load() Config {
	return Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		CORSOrigin:  fallback(os.Getenv("CORS_ALLOWED_ORIGIN"), "http://localhost:5173"),
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
	}
}

// HTTPAddress returns the address for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	t.Setenv("GIN_MODE", "")

	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	require.Empty(t, cfg.GinMode)
	require.Equal(t, ":8080", cfg.HTTPAddress())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/auction")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://auction.example.com")
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres://localhost:5432/auction", cfg.DatabaseURL)
	require.Equal(t, "https://auction.example.com", cfg.CORSOrigin)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, ":9090", cfg.HTTPAddress())
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	t.Setenv("PORT", "  9090  ")
	t.Setenv("DATABASE_URL", "  postgres://localhost:5432/auction  ")
	t.Setenv("CORS_ALLOWED_ORIGIN", "   ")
	t.Setenv("GIN_MODE", " debug ")

	cfg := Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres://localhost:5432/auction", cfg.DatabaseURL)
	require.Equal(t, "http://localhost:5173", cfg.CORSOrigin, "blank origin falls back to the default")
	require.Equal(t, "debug", cfg.GinMode)
}

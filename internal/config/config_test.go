package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATABASE_DSN", "JWT_SECRET", "TOKEN_EXPIRY", "HASH_COST", "FRONTEND_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TokenExpiry != 30*24*time.Hour {
		t.Errorf("TokenExpiry = %v, want 720h", cfg.TokenExpiry)
	}
	if cfg.HashCost != 12 {
		t.Errorf("HashCost = %d, want 12", cfg.HashCost)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_EXPIRY", "24h")
	t.Setenv("HASH_COST", "10")
	t.Setenv("JWT_SECRET", "something-else")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.TokenExpiry != 24*time.Hour {
		t.Errorf("TokenExpiry = %v, want 24h", cfg.TokenExpiry)
	}
	if cfg.HashCost != 10 {
		t.Errorf("HashCost = %d, want 10", cfg.HashCost)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY", "soon")
	t.Setenv("HASH_COST", "a lot")

	cfg := Load()

	if cfg.TokenExpiry != 30*24*time.Hour {
		t.Errorf("TokenExpiry = %v, want default 720h", cfg.TokenExpiry)
	}
	if cfg.HashCost != 12 {
		t.Errorf("HashCost = %d, want default 12", cfg.HashCost)
	}
}

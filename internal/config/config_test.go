package config_test

import (
	"testing"

	"vitrine/internal/config"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "API_BASE_URL", "CART_DB", "REDIS_ADDR", "REDIS_PASSWORD", "LOG_FILE"} {
		t.Setenv(k, "")
	}

	cfg := config.Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:4000/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.CartDB != "vitrine.db" {
		t.Errorf("CartDB = %q", cfg.CartDB)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("API_BASE_URL", "https://api.example.com/v2")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOG_FILE", "")

	cfg := config.Load()
	if cfg.Port != "9999" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.APIBaseURL != "https://api.example.com/v2" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.SessionStore != "memory" {
		t.Errorf("expected default session store memory, got %s", cfg.SessionStore)
	}
	if cfg.DemoOTP != "123456" {
		t.Errorf("expected default demo OTP 123456, got %s", cfg.DemoOTP)
	}
	if cfg.MinPasswordLength != 6 {
		t.Errorf("expected default min password length 6, got %d", cfg.MinPasswordLength)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("expected default session TTL 12h, got %s", cfg.SessionTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("AUTH_RATE_LIMIT", "5")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.SessionStore != "redis" {
		t.Errorf("expected normalized session store redis, got %s", cfg.SessionStore)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected session TTL 30m, got %s", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.example.com" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.AuthRateLimit != 5 {
		t.Errorf("expected auth rate limit 5, got %d", cfg.AuthRateLimit)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("AUTH_RATE_LIMIT", "not-a-number")
	t.Setenv("SESSION_TTL", "soon")

	cfg := Load()

	if cfg.AuthRateLimit != 20 {
		t.Errorf("expected fallback rate limit 20, got %d", cfg.AuthRateLimit)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("expected fallback session TTL, got %s", cfg.SessionTTL)
	}
}

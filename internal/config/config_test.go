package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "AUDIT_ENABLED", "JWT_EXPIRY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.AuditEnabled {
		t.Error("AuditEnabled should default to false")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "staging")
	t.Setenv("AUDIT_ENABLED", "true")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg := Load()

	if cfg.Port != "9000" || cfg.Env != "staging" {
		t.Errorf("unexpected port/env: %q/%q", cfg.Port, cfg.Env)
	}
	if !cfg.AuditEnabled {
		t.Error("AuditEnabled should be true")
	}
	if cfg.JWTExpiry != 90*time.Minute {
		t.Errorf("JWTExpiry = %v, want 90m", cfg.JWTExpiry)
	}
	if cfg.RateLimitRPS != 0.5 || cfg.RateLimitBurst != 3 {
		t.Errorf("rate limit = %v/%d, want 0.5/3", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("RATE_LIMIT_RPS", "-2")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := Load()

	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want fallback", cfg.JWTExpiry)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want fallback 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

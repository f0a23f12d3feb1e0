package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("AUTH_TOKENS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("SESSION_MAX_AGE_HOURS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "3001" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "3001")
	}
	if cfg.APIBaseURL != "http://localhost:3001/api" {
		t.Fatalf("APIBaseURL mismatch: got %q", cfg.APIBaseURL)
	}
	if cfg.TokenMode != TokenModeStatic {
		t.Fatalf("TokenMode mismatch: got %q", cfg.TokenMode)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("JWTTTL mismatch: got %s", cfg.JWTTTL)
	}
	if cfg.RateLimitPerMin != 0 {
		t.Fatalf("RateLimitPerMin should default to disabled, got %d", cfg.RateLimitPerMin)
	}
	if cfg.SessionMaxAge != 365*24*time.Hour {
		t.Fatalf("SessionMaxAge mismatch: got %s", cfg.SessionMaxAge)
	}
}

func TestLoadConfigTrimsBaseURLAndSplitsOrigins(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://portal.example.com/api/")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://portal.example.com/api" {
		t.Fatalf("APIBaseURL mismatch: got %q", cfg.APIBaseURL)
	}
	expected := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(expected) {
		t.Fatalf("CORSAllowedOrigins mismatch: got %#v want %#v", cfg.CORSAllowedOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
}

func TestLoadConfigJWTRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_TOKENS", "jwt")
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig expected error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.TokenMode != TokenModeJWT {
		t.Fatalf("TokenMode mismatch: got %q", cfg.TokenMode)
	}
}

func TestLoadConfigRejectsUnknownTokenMode(t *testing.T) {
	t.Setenv("AUTH_TOKENS", "oauth")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig expected error for unknown AUTH_TOKENS")
	}
}

func TestLoadConfigIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Fatalf("RateLimitPerMin mismatch: got %d", cfg.RateLimitPerMin)
	}
	if cfg.CookieSecure {
		t.Fatalf("CookieSecure should fall back to false")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HMS_API_BASE_URL", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.APIBaseURL != "http://localhost:5093" {
		t.Fatalf("expected default API base URL, got %s", cfg.APIBaseURL)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("expected default page size 10, got %d", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 20*time.Second {
		t.Fatalf("expected default HTTP timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.SessionTTL != 8*time.Hour {
		t.Fatalf("expected default session TTL, got %s", cfg.SessionTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("HMS_API_BASE_URL", "https://hms.example.com")
	t.Setenv("HMS_HTTP_TIMEOUT", "5s")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("REDIS_TLS", "true")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.APIBaseURL != "https://hms.example.com" {
		t.Fatalf("expected API base URL override, got %s", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("expected timeout override, got %s", cfg.HTTPTimeout)
	}
	if cfg.PageSize != 25 {
		t.Fatalf("expected page size override, got %d", cfg.PageSize)
	}
	if !cfg.RedisTLS {
		t.Fatal("expected redis TLS override")
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "lots")
	t.Setenv("HMS_HTTP_TIMEOUT", "soon")
	t.Setenv("REDIS_TLS", "maybe")
	cfg := Load()
	if cfg.PageSize != 10 {
		t.Fatalf("expected bad int to fall back, got %d", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 20*time.Second {
		t.Fatalf("expected bad duration to fall back, got %s", cfg.HTTPTimeout)
	}
	if cfg.RedisTLS {
		t.Fatal("expected bad bool to fall back to false")
	}
}

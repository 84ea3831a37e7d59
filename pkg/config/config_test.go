package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.API.Timeout)
	}
	if cfg.Catalog.PageLimit != 100 {
		t.Fatalf("unexpected page limit %d", cfg.Catalog.PageLimit)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %q", cfg.App.Env)
	}
}

func TestLoadRejectsBadBaseURL(t *testing.T) {
	t.Setenv("ATELIER_API_BASE_URL", "ftp://example.com")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-http base url")
	}

	t.Setenv("ATELIER_API_BASE_URL", "http://")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for hostless base url")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ATELIER_API_BASE_URL", "https://shop.example.com")
	t.Setenv("ATELIER_APP_ENV", "prod")
	t.Setenv("ATELIER_CATALOG_PAGE_LIMIT", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env")
	}
	if cfg.Catalog.PageLimit != 25 {
		t.Fatalf("unexpected page limit %d", cfg.Catalog.PageLimit)
	}
}

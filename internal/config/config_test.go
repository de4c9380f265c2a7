package config_test

import (
	"os"
	"testing"

	"gatherly/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_PATH", "/tmp/app.db")
	t.Setenv("IDENTITY_JWT_SECRET", "shhh")
	t.Setenv("IDENTITY_API_KEY", "key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"PORT", "CORS_ORIGIN", "IDENTITY_API_URL"} {
		t.Setenv(key, "placeholder")
		os.Unsetenv(key)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "6600" {
		t.Fatalf("expected default port 6600, got %q", cfg.Port)
	}
	if cfg.CORSOrigin != "http://localhost:6680" {
		t.Fatalf("unexpected default CORS origin: %q", cfg.CORSOrigin)
	}
	if cfg.Identity.APIURL != "https://api.clerk.com" {
		t.Fatalf("unexpected default API URL: %q", cfg.Identity.APIURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.CORSOrigin != "https://app.example.com" {
		t.Fatalf("expected CORS override, got %q", cfg.CORSOrigin)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("IDENTITY_JWT_SECRET", "shhh")
	t.Setenv("IDENTITY_API_KEY", "key")
	// t.Setenv registers the restore; unset to simulate a missing variable.
	t.Setenv("DATABASE_PATH", "placeholder")
	os.Unsetenv("DATABASE_PATH")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error when DATABASE_PATH is unset")
	}
}

package infra

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresBackendBaseURL(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when BACKEND_BASE_URL is unset")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://project.example.co")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.CreateVolunteerURL != "" {
		t.Fatalf("CreateVolunteerURL should default empty, got %q", cfg.CreateVolunteerURL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:8100" {
		t.Fatalf("CORSOrigins mismatch: %#v", cfg.CORSOrigins)
	}
	if cfg.RateLimitPerMin != 60 {
		t.Fatalf("RateLimitPerMin mismatch: got %d want 60", cfg.RateLimitPerMin)
	}
	if cfg.BackendTimeout != 30*time.Second {
		t.Fatalf("BackendTimeout mismatch: got %s", cfg.BackendTimeout)
	}
}

func TestLoadConfigHonorsExplicitEndpointURLs(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://project.example.co")
	t.Setenv("CREATE_VOLUNTEER_URL", "https://alt.example.co/fn/create")
	t.Setenv("CORS_ORIGINS", "https://app.example.org, https://staging.example.org")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.CreateVolunteerURL != "https://alt.example.co/fn/create" {
		t.Fatalf("CreateVolunteerURL mismatch: got %q", cfg.CreateVolunteerURL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://staging.example.org" {
		t.Fatalf("CORSOrigins mismatch: %#v", cfg.CORSOrigins)
	}
}

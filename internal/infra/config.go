package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	BackendBaseURL     string
	BackendAnonKey     string
	CreateVolunteerURL string
	EmailLinkURL       string
	UpdateInterestsURL string
	UpdateVolunteerURL string
	InterestsURL       string
	SignupRedirectURL  string
	CORSOrigins        []string
	DefaultLocale      string
	BackendTimeout     time.Duration
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// Endpoint URLs left unset are derived from BACKEND_BASE_URL by the backend client.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		BackendBaseURL:     os.Getenv("BACKEND_BASE_URL"),
		BackendAnonKey:     os.Getenv("BACKEND_ANON_KEY"),
		CreateVolunteerURL: os.Getenv("CREATE_VOLUNTEER_URL"),
		EmailLinkURL:       os.Getenv("EMAIL_LINK_URL"),
		UpdateInterestsURL: os.Getenv("UPDATE_INTERESTS_URL"),
		UpdateVolunteerURL: os.Getenv("UPDATE_VOLUNTEER_URL"),
		InterestsURL:       os.Getenv("INTERESTS_URL"),
		SignupRedirectURL:  getEnv("SIGNUP_REDIRECT_URL", "http://localhost:8100/signup/confirm"),
		CORSOrigins:        splitEnvList(getEnv("CORS_ORIGINS", "http://localhost:8100")),
		DefaultLocale:      getEnv("DEFAULT_LOCALE", "en"),
		BackendTimeout:     time.Second * time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 30)),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}

	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitEnvList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session store backends
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Remote finance API
	APIBaseURL string
	APITimeout time.Duration

	// Outbound throttle towards the API, 0 disables it
	APIRateLimitPerMinute int

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Sessions
	SessionStore string
	DatabaseURL  string
	SessionTTL   time.Duration
	CookieSecure bool

	// Inbound rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	env := getEnv("ENV", "development")

	cfg := &Config{
		APIBaseURL:            strings.TrimRight(getEnv("API_BASE_URL", ""), "/"),
		Port:                  getEnv("PORT", "8080"),
		CORSOrigins:           splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:                   env,
		SessionStore:          strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		CookieSecure:          env == "production",
		RateLimitPerMinute:    100,
		RateLimitBurst:        10,
		APIRateLimitPerMinute: 0,
		APITimeout:            15 * time.Second,
		SessionTTL:            24 * time.Hour,
	}

	var err error
	if cfg.APITimeout, err = getDuration("API_TIMEOUT", cfg.APITimeout); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", cfg.SessionTTL); err != nil {
		return nil, err
	}
	if cfg.CookieSecure, err = getBool("COOKIE_SECURE", cfg.CookieSecure); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", cfg.RateLimitPerMinute); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if cfg.APIRateLimitPerMinute, err = getInt("API_RATE_LIMIT_PER_MINUTE", cfg.APIRateLimitPerMinute); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if u, err := url.Parse(c.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	switch c.SessionStore {
	case SessionStoreMemory:
	case SessionStorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when SESSION_STORE is postgres")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreMemory, SessionStorePostgres, c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must be positive")
	}
	if c.APIRateLimitPerMinute < 0 {
		return fmt.Errorf("API_RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 15s: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

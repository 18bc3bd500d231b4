package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"API_BASE_URL", "API_TIMEOUT", "API_RATE_LIMIT_PER_MINUTE", "PORT", "CORS_ORIGINS", "ENV",
		"SESSION_STORE", "DATABASE_URL", "SESSION_TTL", "COOKIE_SECURE",
		"RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "https://api.fortuna.app/v1/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.fortuna.app/v1", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "http://localhost:9000")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "https://fortuna.app, https://beta.fortuna.app ,")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_STORE", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/fortuna")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("API_RATE_LIMIT_PER_MINUTE", "600")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, []string{"https://fortuna.app", "https://beta.fortuna.app"}, cfg.CORSOrigins)
	assert.Equal(t, SessionStorePostgres, cfg.SessionStore)
	assert.True(t, cfg.CookieSecure, "production defaults to secure cookies")
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, 600, cfg.APIRateLimitPerMinute)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing api url", map[string]string{}, "API_BASE_URL is required"},
		{"relative api url", map[string]string{"API_BASE_URL": "api/v1"}, "absolute URL"},
		{"bad timeout", map[string]string{"API_BASE_URL": "http://api", "API_TIMEOUT": "soon"}, "API_TIMEOUT"},
		{"postgres without database", map[string]string{"API_BASE_URL": "http://api", "SESSION_STORE": "postgres"}, "DATABASE_URL"},
		{"unknown store", map[string]string{"API_BASE_URL": "http://api", "SESSION_STORE": "redis"}, "SESSION_STORE"},
		{"bad cookie flag", map[string]string{"API_BASE_URL": "http://api", "COOKIE_SECURE": "maybe"}, "COOKIE_SECURE"},
		{"zero burst", map[string]string{"API_BASE_URL": "http://api", "RATE_LIMIT_BURST": "0"}, "RATE_LIMIT_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, BackendMemory, cfg.Storage.Principals)
	assert.Equal(t, BackendMemory, cfg.RateLimit.Backend)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, uint32(64*1024), cfg.Auth.Argon2.MemoryKiB)
	assert.Equal(t, 10, cfg.Auth.Lockout.Threshold)
	assert.Equal(t, 30*time.Minute, cfg.Auth.Lockout.Window)
	assert.Equal(t, "csrf_token", cfg.CSRF.CookieName)
	assert.Equal(t, "X-CSRF-Token", cfg.CSRF.HeaderName)
	assert.Equal(t, 24*time.Hour, cfg.CSRF.TTL)
	assert.Equal(t, 250*time.Millisecond, cfg.Audit.WriteTimeout)
	assert.Equal(t, 5, cfg.Audit.SuspiciousThreshold)
	assert.Equal(t, "/auth", cfg.Cookies.RefreshPath)
	assert.True(t, cfg.Cookies.Secure)

	require.Len(t, cfg.RateLimit.Routes, 3)
	assert.Equal(t, "/auth/login", cfg.RateLimit.Routes[0].Pattern)
	assert.Equal(t, 5, cfg.RateLimit.Routes[0].MaxRequests)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		RateLimit: &RateLimitConfig{
			Backend: BackendRedis,
			Routes:  []RouteLimitRule{{Pattern: "/x", Window: time.Minute, MaxRequests: 1}},
		},
		Audit: &AuditConfig{SuspiciousThreshold: 3},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, BackendRedis, cfg.RateLimit.Backend)
	assert.Len(t, cfg.RateLimit.Routes, 1)
	assert.Equal(t, 3, cfg.Audit.SuspiciousThreshold)
	assert.Equal(t, 15*time.Minute, cfg.Audit.SuspiciousWindow)
}

func TestApplyDefaults_DoesNotShareDefaultRoutes(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.RateLimit.Routes[0].MaxRequests = 99

	assert.Equal(t, 5, DefaultRouteLimits[0].MaxRequests)
}

func TestLoadWithEnv_SecretsComeFromEnvironment(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "")
	t.Setenv("SECRETKEY_REFRESH", "injected-refresh-secret-value-0123456789")

	cfg, err := LoadWithEnv[Config]("config", ".")
	require.NoError(t, err)

	assert.Empty(t, cfg.SecretKey.Access, "shipped config carries no usable secret")
	assert.Equal(t, "injected-refresh-secret-value-0123456789", cfg.SecretKey.Refresh)
}

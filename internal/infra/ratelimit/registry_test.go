package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
)

func TestRegistry_Match(t *testing.T) {
	registry, err := NewRegistry([]config.RouteLimitRule{
		{Pattern: "/api/*", Window: 15 * time.Minute, MaxRequests: 100},
		{Pattern: "/api/admin/*", Window: time.Minute, MaxRequests: 30},
		{Pattern: "/api/admin/security/events", Window: time.Minute, MaxRequests: 10},
		{Pattern: "/auth/login", Window: 15 * time.Minute, MaxRequests: 5},
	})
	require.NoError(t, err)

	tests := []struct {
		path    string
		pattern string
		ok      bool
	}{
		{path: "/auth/login", pattern: "/auth/login", ok: true},
		{path: "/auth/login/extra", ok: false},
		{path: "/api/me", pattern: "/api/*", ok: true},
		{path: "/api/admin/security/metrics", pattern: "/api/admin/*", ok: true},
		{path: "/api/admin/security/events", pattern: "/api/admin/security/events", ok: true},
		{path: "/api", ok: false},
		{path: "/health", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			limit, ok := registry.Match(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.pattern, limit.Pattern)
		})
	}
}

func TestNewRegistry_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		rules []config.RouteLimitRule
	}{
		{name: "relative pattern", rules: []config.RouteLimitRule{{Pattern: "api/*", Window: time.Minute, MaxRequests: 1}}},
		{name: "zero window", rules: []config.RouteLimitRule{{Pattern: "/a", MaxRequests: 1}}},
		{name: "zero max", rules: []config.RouteLimitRule{{Pattern: "/a", Window: time.Minute}}},
		{name: "duplicate", rules: []config.RouteLimitRule{
			{Pattern: "/a", Window: time.Minute, MaxRequests: 1},
			{Pattern: "/a", Window: time.Hour, MaxRequests: 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.rules)
			assert.Error(t, err)
		})
	}
}

func TestNewRegistryFromConfig_Defaults(t *testing.T) {
	registry, err := NewRegistryFromConfig(&config.Config{})
	require.NoError(t, err)

	login, ok := registry.Match("/auth/login")
	require.True(t, ok)
	assert.Equal(t, 5, login.MaxRequests)
	assert.Equal(t, 15*time.Minute, login.Window)

	signup, ok := registry.Match("/auth/signup")
	require.True(t, ok)
	assert.Equal(t, 3, signup.MaxRequests)
	assert.Equal(t, time.Hour, signup.Window)

	api, ok := registry.Match("/api/me")
	require.True(t, ok)
	assert.Equal(t, 100, api.MaxRequests)
}

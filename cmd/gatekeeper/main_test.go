package main

import (
	"testing"

	"gatekeeper/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestAppOptions_GraphIsComplete(t *testing.T) {
	tests := []struct {
		name    string
		storage config.StorageConfig
		limiter string
	}{
		{name: "memory", storage: config.StorageConfig{}, limiter: config.BackendMemory},
		{
			name: "postgres and redis",
			storage: config.StorageConfig{
				Principals: config.BackendPostgres,
				Audit:      config.BackendPostgres,
				Revocation: config.BackendRedis,
			},
			limiter: config.BackendRedis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := tt.storage
			cfg := &config.Config{
				Storage:   &storage,
				RateLimit: &config.RateLimitConfig{Backend: tt.limiter},
			}
			cfg.ApplyDefaults()

			require.NoError(t, fx.ValidateApp(appOptions(cfg)))
		})
	}
}

func TestBackendSelection(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	assert.False(t, usesPostgres(cfg))
	assert.False(t, usesRedis(cfg))

	cfg.Storage.Audit = config.BackendPostgres
	cfg.RateLimit.Backend = config.BackendRedis
	assert.True(t, usesPostgres(cfg))
	assert.True(t, usesRedis(cfg))
}

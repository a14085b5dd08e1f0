package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/infra/audit"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/persistence/memory"
	"gatekeeper/internal/infra/ratelimit"
	"gatekeeper/internal/util"
)

func TestMaintenanceHandler(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := util.NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	registry, err := ratelimit.NewRegistryFromConfig(cfg)
	require.NoError(t, err)
	limiter := ratelimit.NewLimiter(registry, ratelimit.NewMemoryStore(), clock)
	revocations := auth.NewMemoryRevocationStore(clock)
	auditLogger := audit.New(audit.Params{Config: cfg, Logger: logger, Repo: memory.NewAuditRepository(), Clock: clock})

	h := NewMaintenanceHandler(MaintenanceHandlerParams{
		Config:      cfg,
		Logger:      logger,
		Limiter:     limiter,
		Revocations: revocations,
		Audit:       auditLogger,
		Clock:       clock,
	})

	_, err = limiter.Check(ctx, "203.0.113.7", "/auth/login")
	require.NoError(t, err)
	require.NoError(t, revocations.Revoke(ctx, "jti-1", clock.Now().Add(time.Hour)))
	auditLogger.Record(ctx, &entity.SecurityEvent{EventType: entity.EventLogout})

	removed, err := h.SweepRateLimits(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	clock.Advance(91 * 24 * time.Hour)

	removed, err = h.SweepRateLimits(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = h.SweepRevocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = h.PurgeAuditEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

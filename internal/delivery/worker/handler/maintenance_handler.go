// Package handler holds the jobs run by the background worker.
package handler

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"go.uber.org/fx"
)

// MaintenanceHandler sweeps expired state out of the stores.
type MaintenanceHandler struct {
	limiter     service.RateLimiter
	revocations service.TokenRevocationStore
	audit       service.AuditLogger
	clock       service.Clock
	retention   time.Duration
	logger      *slog.Logger
}

// MaintenanceHandlerParams holds dependencies for MaintenanceHandler
type MaintenanceHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Limiter     service.RateLimiter
	Revocations service.TokenRevocationStore
	Audit       service.AuditLogger
	Clock       service.Clock
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(params MaintenanceHandlerParams) *MaintenanceHandler {
	retention := time.Duration(0)
	if params.Config.Audit != nil {
		retention = params.Config.Audit.Retention
	}

	return &MaintenanceHandler{
		limiter:     params.Limiter,
		revocations: params.Revocations,
		audit:       params.Audit,
		clock:       params.Clock,
		retention:   retention,
		logger:      params.Logger,
	}
}

// SweepRateLimits drops rate-limit windows that have ended.
func (h *MaintenanceHandler) SweepRateLimits(ctx context.Context) (int64, error) {
	removed, err := h.limiter.Sweep(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "sweep rate limits")
	}

	return int64(removed), nil
}

// SweepRevocations drops revocation entries past the lifetime of the tokens they cover.
func (h *MaintenanceHandler) SweepRevocations(ctx context.Context) (int64, error) {
	removed, err := h.revocations.Sweep(ctx, h.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "sweep token revocations")
	}

	return int64(removed), nil
}

// PurgeAuditEvents deletes security events older than the retention period.
// A zero retention keeps events forever.
func (h *MaintenanceHandler) PurgeAuditEvents(ctx context.Context) (int64, error) {
	if h.retention <= 0 {
		return 0, nil
	}

	cutoff := h.clock.Now().Add(-h.retention)
	removed, err := h.audit.Purge(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "purge security events")
	}
	if removed > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Security events purged",
			slog.Int64("removed", removed),
			slog.Time("cutoff", cutoff),
		)
	}

	return removed, nil
}

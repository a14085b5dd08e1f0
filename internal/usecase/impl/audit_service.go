package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	audit  service.AuditLogger
	logger *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(audit service.AuditLogger, logger *slog.Logger) usecase.AuditUsecase {
	return &auditService{
		audit:  audit,
		logger: logger,
	}
}

// ListEvents returns a page of events, newest first.
func (srv *auditService) ListEvents(ctx context.Context, filter entity.SecurityEventFilter, page entity.Pagination) (*entity.SecurityEventPage, error) {
	result, err := srv.audit.Query(ctx, filter, page.Normalize())
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to query security events", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list security events")
	}

	return result, nil
}

// Metrics aggregates events over the trailing window.
func (srv *auditService) Metrics(ctx context.Context, windowHours int) (*entity.SecurityMetrics, error) {
	metrics, err := srv.audit.Metrics(ctx, windowHours)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to aggregate security events", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compute security metrics")
	}

	return metrics, nil
}

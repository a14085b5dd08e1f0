package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// AuditUsecase defines the operator read path over security events.
type AuditUsecase interface {
	// ListEvents returns a page of events, newest first.
	ListEvents(ctx context.Context, filter entity.SecurityEventFilter, page entity.Pagination) (*entity.SecurityEventPage, error)

	// Metrics aggregates events over the trailing window.
	Metrics(ctx context.Context, windowHours int) (*entity.SecurityMetrics, error)
}

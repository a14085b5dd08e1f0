package service

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
)

// AuditLogger records security events and serves the operator read path.
type AuditLogger interface {
	// Record appends the event. It never fails the caller; store errors go to the fallback log.
	Record(ctx context.Context, event *entity.SecurityEvent)

	// Query returns a page of events, newest first.
	Query(ctx context.Context, filter entity.SecurityEventFilter, page entity.Pagination) (*entity.SecurityEventPage, error)

	// Metrics aggregates events over the trailing window.
	Metrics(ctx context.Context, windowHours int) (*entity.SecurityMetrics, error)

	// Purge removes events older than the cutoff.
	Purge(ctx context.Context, olderThan time.Time) (int64, error)
}

package repository

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
)

// AuditRepository is the append-only security event log.
type AuditRepository interface {
	// Append writes one event. Events are never updated.
	Append(ctx context.Context, event *entity.SecurityEvent) error

	// Query returns events matching the filter, newest first.
	Query(ctx context.Context, filter entity.SecurityEventFilter, page entity.Pagination) (*entity.SecurityEventPage, error)

	// Metrics aggregates the events recorded since the given instant.
	Metrics(ctx context.Context, since time.Time, topN, recentCritical int) (*entity.SecurityMetrics, error)

	// Purge deletes events older than the cutoff and reports how many were removed.
	Purge(ctx context.Context, olderThan time.Time) (int64, error)
}

package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
)

type auditRepository struct {
	mu     sync.RWMutex
	events []*entity.SecurityEvent // Append order.
}

// NewAuditRepository creates an empty event log.
func NewAuditRepository() repository.AuditRepository {
	return &auditRepository{}
}

func (repo *auditRepository) Append(ctx context.Context, event *entity.SecurityEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.events = append(repo.events, cloneEvent(event))

	return nil
}

func (repo *auditRepository) Query(_ context.Context, filter entity.SecurityEventFilter, page entity.Pagination) (*entity.SecurityEventPage, error) {
	page = page.Normalize()

	repo.mu.RLock()
	matched := make([]*entity.SecurityEvent, 0)
	for _, event := range repo.events {
		if matches(event, filter) {
			matched = append(matched, event)
		}
	}
	repo.mu.RUnlock()

	sortNewestFirst(matched)

	result := &entity.SecurityEventPage{
		Total:    int64(len(matched)),
		Page:     page.Page,
		PageSize: page.PageSize,
		Events:   []*entity.SecurityEvent{},
	}
	offset := page.Offset()
	if offset >= len(matched) {
		return result, nil
	}
	end := min(offset+page.PageSize, len(matched))
	for _, event := range matched[offset:end] {
		result.Events = append(result.Events, cloneEvent(event))
	}

	return result, nil
}

func (repo *auditRepository) Metrics(_ context.Context, since time.Time, topN, recentCritical int) (*entity.SecurityMetrics, error) {
	metrics := &entity.SecurityMetrics{
		BySeverity: make(map[entity.Severity]int64),
		ByType:     make(map[entity.EventType]int64),
	}
	identifiers := make(map[string]int64)
	critical := make([]*entity.SecurityEvent, 0)

	repo.mu.RLock()
	for _, event := range repo.events {
		if event.Timestamp.Before(since) {
			continue
		}
		metrics.TotalEvents++
		metrics.BySeverity[event.Severity]++
		metrics.ByType[event.EventType]++
		if event.SourceIdentifier != "" {
			identifiers[event.SourceIdentifier]++
		}
		if event.Severity == entity.SeverityCritical {
			critical = append(critical, cloneEvent(event))
		}
	}
	repo.mu.RUnlock()

	metrics.TopIdentifiers = topCounts(identifiers, topN)

	types := make(map[string]int64, len(metrics.ByType))
	for eventType, count := range metrics.ByType {
		types[string(eventType)] = count
	}
	metrics.TopEventTypes = topCounts(types, topN)

	sortNewestFirst(critical)
	if len(critical) > recentCritical {
		critical = critical[:recentCritical]
	}
	metrics.RecentCritical = critical

	return metrics, nil
}

func (repo *auditRepository) Purge(_ context.Context, olderThan time.Time) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := repo.events[:0]
	var removed int64
	for _, event := range repo.events {
		if event.Timestamp.Before(olderThan) {
			removed++

			continue
		}
		kept = append(kept, event)
	}
	clear(repo.events[len(kept):])
	repo.events = kept

	return removed, nil
}

func matches(event *entity.SecurityEvent, filter entity.SecurityEventFilter) bool {
	switch {
	case filter.EventType != "" && event.EventType != filter.EventType:
		return false
	case filter.Severity != "" && event.Severity != filter.Severity:
		return false
	case !filter.From.IsZero() && event.Timestamp.Before(filter.From):
		return false
	case !filter.To.IsZero() && event.Timestamp.After(filter.To):
		return false
	case filter.Email != "" && event.Email != entity.NormalizeEmail(filter.Email):
		return false
	case filter.Identifier != "" && event.SourceIdentifier != filter.Identifier:
		return false
	case filter.SubjectID != nil && (event.SubjectID == nil || *event.SubjectID != *filter.SubjectID):
		return false
	default:
		return true
	}
}

// sortNewestFirst orders by timestamp descending. Ties keep append order reversed.
func sortNewestFirst(events []*entity.SecurityEvent) {
	slices.Reverse(events)
	slices.SortStableFunc(events, func(a, b *entity.SecurityEvent) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}

func topCounts(counts map[string]int64, n int) []entity.CountEntry {
	entries := make([]entity.CountEntry, 0, len(counts))
	for _, key := range slices.Sorted(maps.Keys(counts)) {
		entries = append(entries, entity.CountEntry{Key: key, Count: counts[key]})
	}
	slices.SortStableFunc(entries, func(a, b entity.CountEntry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

func cloneEvent(event *entity.SecurityEvent) *entity.SecurityEvent {
	clone := *event
	clone.Details = maps.Clone(event.Details)
	if event.SubjectID != nil {
		id := *event.SubjectID
		clone.SubjectID = &id
	}

	return &clone
}

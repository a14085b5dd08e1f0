package postgres

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// auditRepository implements the repository.AuditRepository interface on the security_events table.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

type countRow struct {
	Key   string
	Count int64
}

// Append inserts one event. Rows are never updated.
func (repo *auditRepository) Append(ctx context.Context, event *entity.SecurityEvent) error {
	eventM := fromSecurityEventDomain(event)
	if eventM.ID == uuid.Nil {
		eventM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append security event")
	}

	return nil
}

// Query returns events matching the filter, newest first.
func (repo *auditRepository) Query(ctx context.Context, filter entity.SecurityEventFilter, page entity.Pagination) (*entity.SecurityEventPage, error) {
	page = page.Normalize()
	base := applyFilter(repo.db.WithContext(ctx).Model(&model.SecurityEventModel{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count security events")
	}

	var rows []*model.SecurityEventModel
	if err := base.Session(&gorm.Session{}).
		Order("occurred_at DESC").
		Order("id DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query security events")
	}

	events := make([]*entity.SecurityEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toSecurityEventDomain(row))
	}

	return &entity.SecurityEventPage{
		Events:   events,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// Metrics aggregates with GROUP BY queries over the window.
func (repo *auditRepository) Metrics(ctx context.Context, since time.Time, topN, recentCritical int) (*entity.SecurityMetrics, error) {
	windowed := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&model.SecurityEventModel{}).Where("occurred_at >= ?", since)
	}

	metrics := &entity.SecurityMetrics{
		BySeverity: make(map[entity.Severity]int64),
		ByType:     make(map[entity.EventType]int64),
	}

	if err := windowed().Count(&metrics.TotalEvents).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count security events")
	}

	var severities []countRow
	if err := windowed().Select("severity AS key, COUNT(*) AS count").Group("severity").Scan(&severities).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to group events by severity")
	}
	for _, row := range severities {
		metrics.BySeverity[entity.Severity(row.Key)] = row.Count
	}

	var types []countRow
	if err := windowed().
		Select("event_type AS key, COUNT(*) AS count").
		Group("event_type").
		Order("count DESC, key ASC").
		Scan(&types).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to group events by type")
	}
	metrics.TopEventTypes = make([]entity.CountEntry, 0, len(types))
	for i, row := range types {
		metrics.ByType[entity.EventType(row.Key)] = row.Count
		if topN <= 0 || i < topN {
			metrics.TopEventTypes = append(metrics.TopEventTypes, entity.CountEntry(row))
		}
	}

	var identifiers []countRow
	if err := windowed().
		Select("source_identifier AS key, COUNT(*) AS count").
		Where("source_identifier <> ''").
		Group("source_identifier").
		Order("count DESC, key ASC").
		Limit(topN).
		Scan(&identifiers).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to rank source identifiers")
	}
	metrics.TopIdentifiers = make([]entity.CountEntry, 0, len(identifiers))
	for _, row := range identifiers {
		metrics.TopIdentifiers = append(metrics.TopIdentifiers, entity.CountEntry(row))
	}

	var critical []*model.SecurityEventModel
	if err := windowed().
		Where("severity = ?", string(entity.SeverityCritical)).
		Order("occurred_at DESC").
		Limit(recentCritical).
		Find(&critical).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load recent critical events")
	}
	metrics.RecentCritical = make([]*entity.SecurityEvent, 0, len(critical))
	for _, row := range critical {
		metrics.RecentCritical = append(metrics.RecentCritical, toSecurityEventDomain(row))
	}

	return metrics, nil
}

// Purge deletes events older than the cutoff.
func (repo *auditRepository) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("occurred_at < ?", olderThan).Delete(&model.SecurityEventModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge security events")
	}

	return result.RowsAffected, nil
}

func applyFilter(db *gorm.DB, filter entity.SecurityEventFilter) *gorm.DB {
	if filter.EventType != "" {
		db = db.Where("event_type = ?", string(filter.EventType))
	}
	if filter.Severity != "" {
		db = db.Where("severity = ?", string(filter.Severity))
	}
	if !filter.From.IsZero() {
		db = db.Where("occurred_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		db = db.Where("occurred_at <= ?", filter.To)
	}
	if filter.Email != "" {
		db = db.Where("email = ?", entity.NormalizeEmail(filter.Email))
	}
	if filter.Identifier != "" {
		db = db.Where("source_identifier = ?", filter.Identifier)
	}
	if filter.SubjectID != nil {
		db = db.Where("subject_id = ?", *filter.SubjectID)
	}

	return db
}

// --- Mapper Functions ---

func toSecurityEventDomain(data *model.SecurityEventModel) *entity.SecurityEvent {
	if data == nil {
		return nil
	}

	return &entity.SecurityEvent{
		ID:               data.ID,
		Timestamp:        data.OccurredAt,
		EventType:        entity.EventType(data.EventType),
		Severity:         entity.Severity(data.Severity),
		SubjectID:        data.SubjectID,
		Email:            data.Email,
		SourceIdentifier: data.SourceIdentifier,
		UserAgent:        data.UserAgent,
		RequestID:        data.RequestID,
		Route:            data.Route,
		Details:          map[string]any(data.Details),
		RiskScore:        data.RiskScore,
	}
}

func fromSecurityEventDomain(data *entity.SecurityEvent) *model.SecurityEventModel {
	return &model.SecurityEventModel{
		ID:               data.ID,
		OccurredAt:       data.Timestamp,
		EventType:        string(data.EventType),
		Severity:         string(data.Severity),
		SubjectID:        data.SubjectID,
		Email:            data.Email,
		SourceIdentifier: data.SourceIdentifier,
		UserAgent:        data.UserAgent,
		RequestID:        data.RequestID,
		Route:            data.Route,
		Details:          datatypes.JSONMap(data.Details),
		RiskScore:        data.RiskScore,
	}
}

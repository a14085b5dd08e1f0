package audit

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	metricsTopN           = 10
	metricsRecentCritical = 20
	maxMetricsWindowHours = 24 * 365
	unknownIdentifier     = "unknown"
)

// Params holds the dependencies of the audit logger.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Repo   repository.AuditRepository
	Clock  service.Clock
}

type auditLogger struct {
	repo         repository.AuditRepository
	clock        service.Clock
	logger       *slog.Logger
	fallback     *slog.Logger
	redactor     *Redactor
	tracker      *failureTracker
	writeTimeout time.Duration
	threshold    int
}

// New creates the audit logger.
func New(params Params) service.AuditLogger {
	cfg := params.Config.Audit
	if cfg == nil {
		params.Config.ApplyDefaults()
		cfg = params.Config.Audit
	}

	return &auditLogger{
		repo:         params.Repo,
		clock:        params.Clock,
		logger:       params.Logger,
		fallback:     params.Logger.With(slog.String("stream", "audit_fallback")),
		redactor:     NewRedactor(cfg.AllowedDetailKeys),
		tracker:      newFailureTracker(cfg.SuspiciousWindow),
		writeTimeout: cfg.WriteTimeout,
		threshold:    cfg.SuspiciousThreshold,
	}
}

func (l *auditLogger) Record(ctx context.Context, event *entity.SecurityEvent) {
	if event == nil {
		return
	}

	ev := *event
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = l.clock.Now()
	}
	if ev.RequestID == "" {
		ev.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if ev.SubjectID == nil {
		if claims := deliverycontext.GetClaimsFromContext(ctx); claims != nil {
			subjectID := claims.SubjectID
			ev.SubjectID = &subjectID
			if ev.Email == "" {
				ev.Email = claims.Email
			}
		}
	}
	if ev.SourceIdentifier == "" {
		ev.SourceIdentifier = unknownIdentifier
	}
	fitEvent(&ev)

	failedAttempts := 0
	switch ev.EventType {
	case entity.EventLoginFailed:
		failedAttempts = l.tracker.Fail(ev.SourceIdentifier, ev.Timestamp)
	case entity.EventLoginSuccess:
		l.tracker.Clear(ev.SourceIdentifier)
	}

	ev.Severity = Classify(ev.EventType, ClassifyInput{FailedAttempts: failedAttempts, Threshold: l.threshold})
	ev.Details = l.redactor.Redact(ev.Details)
	if failedAttempts > 0 {
		ev.Details["failedAttempts"] = failedAttempts
	}
	ev.RiskScore = RiskScore(ev.EventType, ev.Severity, failedAttempts)

	l.write(ctx, &ev)

	if ev.EventType == entity.EventLoginFailed && l.threshold > 0 && failedAttempts == l.threshold {
		l.write(ctx, l.derive(&ev, entity.EventSuspiciousActivity, failedAttempts))
	}
}

// derive builds an escalation event carrying the request context of the failure that triggered it.
func (l *auditLogger) derive(src *entity.SecurityEvent, eventType entity.EventType, failedAttempts int) *entity.SecurityEvent {
	severity := Classify(eventType, ClassifyInput{FailedAttempts: failedAttempts, Threshold: l.threshold})

	return &entity.SecurityEvent{
		ID:               uuid.New(),
		Timestamp:        src.Timestamp,
		EventType:        eventType,
		Severity:         severity,
		SubjectID:        src.SubjectID,
		Email:            src.Email,
		SourceIdentifier: src.SourceIdentifier,
		UserAgent:        src.UserAgent,
		RequestID:        src.RequestID,
		Route:            src.Route,
		Details: map[string]any{
			"reason":         "repeated_login_failures",
			"failedAttempts": failedAttempts,
			"threshold":      l.threshold,
		},
		RiskScore: RiskScore(eventType, severity, failedAttempts),
	}
}

// write persists the event on a context detached from the request so a client
// disconnect does not lose it. Store failures land in the fallback log.
func (l *auditLogger) write(ctx context.Context, ev *entity.SecurityEvent) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.writeTimeout)
	defer cancel()

	if err := l.repo.Append(writeCtx, ev); err != nil {
		l.fallback.LogAttrs(ctx, slog.LevelError, "security event store unavailable",
			slog.Any("error", err),
			slog.String("eventId", ev.ID.String()),
			slog.Time("timestamp", ev.Timestamp),
			slog.String("eventType", string(ev.EventType)),
			slog.String("severity", string(ev.Severity)),
			slog.String("email", ev.Email),
			slog.String("identifier", ev.SourceIdentifier),
			slog.String("userAgent", ev.UserAgent),
			slog.String("requestId", ev.RequestID),
			slog.String("route", ev.Route),
			slog.Any("details", ev.Details),
			slog.Int("riskScore", ev.RiskScore),
		)

		return
	}

	l.logger.DebugContext(ctx, "security event recorded",
		slog.String("eventType", string(ev.EventType)),
		slog.String("severity", string(ev.Severity)),
		slog.String("identifier", ev.SourceIdentifier),
	)
}

func (l *auditLogger) Query(ctx context.Context, filter entity.SecurityEventFilter, page entity.Pagination) (*entity.SecurityEventPage, error) {
	if filter.EventType != "" && !filter.EventType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown event type %q", filter.EventType)
	}
	if filter.Severity != "" && !filter.Severity.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown severity %q", filter.Severity)
	}

	result, err := l.repo.Query(ctx, filter, page.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "query security events")
	}

	return result, nil
}

func (l *auditLogger) Metrics(ctx context.Context, windowHours int) (*entity.SecurityMetrics, error) {
	windowHours = max(1, min(windowHours, maxMetricsWindowHours))
	since := l.clock.Now().Add(-time.Duration(windowHours) * time.Hour)

	metrics, err := l.repo.Metrics(ctx, since, metricsTopN, metricsRecentCritical)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate security events")
	}
	metrics.WindowHours = windowHours

	return metrics, nil
}

func (l *auditLogger) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	l.tracker.Sweep(l.clock.Now())

	removed, err := l.repo.Purge(ctx, olderThan)
	if err != nil {
		return 0, errors.Wrap(err, "purge security events")
	}

	return removed, nil
}

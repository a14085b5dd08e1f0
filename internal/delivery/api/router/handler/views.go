package handler

import (
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/usecase"
)

// PrincipalView is the public projection of a principal. The password hash never leaves the service.
type PrincipalView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionView is returned by every endpoint that issues cookies. Tokens travel only in cookies.
type SessionView struct {
	Principal             PrincipalView `json:"principal"`
	AccessTokenExpiresAt  time.Time     `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time     `json:"refreshTokenExpiresAt"`
}

// SecurityEventView is one audit record as seen by operators.
type SecurityEventView struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	EventType  string         `json:"eventType"`
	Severity   string         `json:"severity"`
	SubjectID  string         `json:"subjectId,omitempty"`
	Email      string         `json:"email,omitempty"`
	Identifier string         `json:"identifier"`
	UserAgent  string         `json:"userAgent,omitempty"`
	RequestID  string         `json:"requestId,omitempty"`
	Route      string         `json:"route,omitempty"`
	Details    map[string]any `json:"details"`
	RiskScore  int            `json:"riskScore"`
}

// SecurityEventPageView is a page of audit records.
type SecurityEventPageView struct {
	Events   []SecurityEventView `json:"events"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

// CountView is a key with its count.
type CountView struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// SecurityMetricsView summarizes the audit log over a window.
type SecurityMetricsView struct {
	WindowHours    int                 `json:"windowHours"`
	TotalEvents    int64               `json:"totalEvents"`
	BySeverity     map[string]int64    `json:"bySeverity"`
	ByType         map[string]int64    `json:"byType"`
	TopIdentifiers []CountView         `json:"topIdentifiers"`
	TopEventTypes  []CountView         `json:"topEventTypes"`
	RecentCritical []SecurityEventView `json:"recentCritical"`
}

func toPrincipalView(p *entity.Principal) PrincipalView {
	return PrincipalView{
		ID:        p.ID.String(),
		Email:     p.Email,
		Role:      p.Role.String(),
		CreatedAt: p.CreatedAt,
	}
}

func toSessionView(result *usecase.AuthResult) SessionView {
	return SessionView{
		Principal:             toPrincipalView(result.Principal),
		AccessTokenExpiresAt:  result.Tokens.AccessClaims.ExpiresAt,
		RefreshTokenExpiresAt: result.Tokens.RefreshClaims.ExpiresAt,
	}
}

func toSecurityEventView(ev *entity.SecurityEvent) SecurityEventView {
	view := SecurityEventView{
		ID:         ev.ID.String(),
		Timestamp:  ev.Timestamp,
		EventType:  string(ev.EventType),
		Severity:   string(ev.Severity),
		Email:      ev.Email,
		Identifier: ev.SourceIdentifier,
		UserAgent:  ev.UserAgent,
		RequestID:  ev.RequestID,
		Route:      ev.Route,
		Details:    ev.Details,
		RiskScore:  ev.RiskScore,
	}
	if ev.SubjectID != nil {
		view.SubjectID = ev.SubjectID.String()
	}
	if view.Details == nil {
		view.Details = map[string]any{}
	}

	return view
}

func toSecurityEventViews(events []*entity.SecurityEvent) []SecurityEventView {
	views := make([]SecurityEventView, 0, len(events))
	for _, ev := range events {
		views = append(views, toSecurityEventView(ev))
	}

	return views
}

func toCountViews(entries []entity.CountEntry) []CountView {
	views := make([]CountView, 0, len(entries))
	for _, e := range entries {
		views = append(views, CountView(e))
	}

	return views
}

func toSecurityMetricsView(m *entity.SecurityMetrics) SecurityMetricsView {
	view := SecurityMetricsView{
		WindowHours:    m.WindowHours,
		TotalEvents:    m.TotalEvents,
		BySeverity:     make(map[string]int64, len(m.BySeverity)),
		ByType:         make(map[string]int64, len(m.ByType)),
		TopIdentifiers: toCountViews(m.TopIdentifiers),
		TopEventTypes:  toCountViews(m.TopEventTypes),
		RecentCritical: toSecurityEventViews(m.RecentCritical),
	}
	for k, v := range m.BySeverity {
		view.BySeverity[string(k)] = v
	}
	for k, v := range m.ByType {
		view.ByType[string(k)] = v
	}

	return view
}

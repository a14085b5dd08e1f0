package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// EventType names a security-relevant occurrence.
type EventType string

const (
	EventLoginAttempt         EventType = "login_attempt"
	EventLoginSuccess         EventType = "login_success"
	EventLoginFailed          EventType = "login_failed"
	EventSignupSuccess        EventType = "signup_success"
	EventSignupFailed         EventType = "signup_failed"
	EventRateLimitExceeded    EventType = "rate_limit_exceeded"
	EventCSRFValidationFailed EventType = "csrf_validation_failed"
	EventSuspiciousActivity   EventType = "suspicious_activity"
	EventTokenInvalid         EventType = "token_invalid"
	EventTokenExpired         EventType = "token_expired"
	EventTokenRefreshed       EventType = "token_refreshed"
	EventLogout               EventType = "logout"
	EventAdminAccess          EventType = "admin_access"
	EventAccountLockout       EventType = "account_lockout"
	EventAccessDenied         EventType = "access_denied"
)

// EventTypes lists every known event type.
var EventTypes = []EventType{
	EventLoginAttempt, EventLoginSuccess, EventLoginFailed,
	EventSignupSuccess, EventSignupFailed,
	EventRateLimitExceeded, EventCSRFValidationFailed, EventSuspiciousActivity,
	EventTokenInvalid, EventTokenExpired, EventTokenRefreshed,
	EventLogout, EventAdminAccess, EventAccountLockout, EventAccessDenied,
}

// IsValid checks if the EventType is known.
func (t EventType) IsValid() bool {
	return slices.Contains(EventTypes, t)
}

// Severity grades a security event.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
)

// IsValid checks if the Severity is known.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	default:
		return false
	}
}

// Upper bounds of client-influenced event fields, in characters.
// They match the security_events column widths.
const (
	MaxEventEmailLength      = 255
	MaxEventIdentifierLength = 255
	MaxEventRequestIDLength  = 64
)

// SecurityEvent is one append-only audit record.
type SecurityEvent struct {
	ID               uuid.UUID
	Timestamp        time.Time
	EventType        EventType
	Severity         Severity
	SubjectID        *uuid.UUID // Nil when the request was anonymous.
	Email            string
	SourceIdentifier string // Client identifier used by the rate limiter (IP).
	UserAgent        string
	RequestID        string
	Route            string
	Details          map[string]any
	RiskScore        int
}

// SecurityEventFilter selects events in a query. Zero values match everything.
type SecurityEventFilter struct {
	EventType  EventType
	Severity   Severity
	From       time.Time
	To         time.Time
	Email      string
	Identifier string
	SubjectID  *uuid.UUID
}

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

const (
	// DefaultPageSize is used when a query does not specify one.
	DefaultPageSize = 50
	// MaxPageSize caps page sizes requested by clients.
	MaxPageSize = 200
)

// Normalize clamps the pagination into the accepted range.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	return p
}

// Offset returns the number of records to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// SecurityEventPage is one page of query results, newest first.
type SecurityEventPage struct {
	Events   []*SecurityEvent
	Total    int64
	Page     int
	PageSize int
}

// CountEntry is a key with its occurrence count.
type CountEntry struct {
	Key   string
	Count int64
}

// SecurityMetrics summarizes the audit log over a time window.
type SecurityMetrics struct {
	WindowHours    int
	TotalEvents    int64
	BySeverity     map[Severity]int64
	ByType         map[EventType]int64
	TopIdentifiers []CountEntry
	TopEventTypes  []CountEntry
	RecentCritical []*SecurityEvent
}

// Package audit records security events, classifies their severity and detects repeated login failures.
package audit

import "gatekeeper/internal/domain/entity"

// ClassifyInput is the context severity depends on besides the event type.
type ClassifyInput struct {
	// FailedAttempts is the number of failed logins from the same identifier inside the tracking window.
	FailedAttempts int
	// Threshold is the failure count that marks an identifier as suspicious.
	Threshold int
}

// Classify assigns a severity. It is a pure function of its arguments.
func Classify(eventType entity.EventType, in ClassifyInput) entity.Severity {
	switch eventType {
	case entity.EventLoginFailed, entity.EventSuspiciousActivity:
		base := entity.SeverityWarning
		if eventType == entity.EventSuspiciousActivity {
			base = entity.SeverityError
		}
		if in.Threshold > 0 {
			switch {
			case in.FailedAttempts >= 2*in.Threshold:
				return entity.SeverityCritical
			case in.FailedAttempts >= in.Threshold:
				return entity.SeverityError
			}
		}

		return base
	case entity.EventAccountLockout:
		return entity.SeverityCritical
	case entity.EventSignupFailed,
		entity.EventRateLimitExceeded,
		entity.EventCSRFValidationFailed,
		entity.EventTokenInvalid,
		entity.EventAccessDenied:
		return entity.SeverityWarning
	case entity.EventLoginAttempt,
		entity.EventLoginSuccess,
		entity.EventSignupSuccess,
		entity.EventTokenExpired,
		entity.EventTokenRefreshed,
		entity.EventLogout,
		entity.EventAdminAccess:
		return entity.SeverityInfo
	default:
		return entity.SeverityWarning
	}
}

var severityRisk = map[entity.Severity]int{
	entity.SeverityInfo:     0,
	entity.SeverityWarning:  20,
	entity.SeverityError:    50,
	entity.SeverityCritical: 80,
}

var eventRisk = map[entity.EventType]int{
	entity.EventCSRFValidationFailed: 10,
	entity.EventRateLimitExceeded:    10,
	entity.EventAccessDenied:         10,
	entity.EventTokenInvalid:         5,
	entity.EventSignupFailed:         5,
}

// RiskScore grades an event from 0 to 100.
func RiskScore(eventType entity.EventType, severity entity.Severity, failedAttempts int) int {
	score := severityRisk[severity] + eventRisk[eventType] + 3*failedAttempts

	return min(score, 100)
}

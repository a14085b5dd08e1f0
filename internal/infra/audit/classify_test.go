package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gatekeeper/internal/domain/entity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		eventType entity.EventType
		in        ClassifyInput
		want      entity.Severity
	}{
		{"login success", entity.EventLoginSuccess, ClassifyInput{}, entity.SeverityInfo},
		{"login attempt", entity.EventLoginAttempt, ClassifyInput{}, entity.SeverityInfo},
		{"first failure", entity.EventLoginFailed, ClassifyInput{FailedAttempts: 1, Threshold: 5}, entity.SeverityWarning},
		{"fourth failure", entity.EventLoginFailed, ClassifyInput{FailedAttempts: 4, Threshold: 5}, entity.SeverityWarning},
		{"threshold failure", entity.EventLoginFailed, ClassifyInput{FailedAttempts: 5, Threshold: 5}, entity.SeverityError},
		{"double threshold failure", entity.EventLoginFailed, ClassifyInput{FailedAttempts: 10, Threshold: 5}, entity.SeverityCritical},
		{"suspicious", entity.EventSuspiciousActivity, ClassifyInput{FailedAttempts: 5, Threshold: 5}, entity.SeverityError},
		{"suspicious escalated", entity.EventSuspiciousActivity, ClassifyInput{FailedAttempts: 10, Threshold: 5}, entity.SeverityCritical},
		{"lockout", entity.EventAccountLockout, ClassifyInput{}, entity.SeverityCritical},
		{"csrf", entity.EventCSRFValidationFailed, ClassifyInput{}, entity.SeverityWarning},
		{"rate limit", entity.EventRateLimitExceeded, ClassifyInput{}, entity.SeverityWarning},
		{"access denied", entity.EventAccessDenied, ClassifyInput{}, entity.SeverityWarning},
		{"admin access", entity.EventAdminAccess, ClassifyInput{}, entity.SeverityInfo},
		{"expired token", entity.EventTokenExpired, ClassifyInput{}, entity.SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.eventType, tt.in))
		})
	}
}

func TestRiskScore(t *testing.T) {
	assert.Equal(t, 0, RiskScore(entity.EventLoginSuccess, entity.SeverityInfo, 0))
	assert.Equal(t, 30, RiskScore(entity.EventCSRFValidationFailed, entity.SeverityWarning, 0))
	assert.Equal(t, 65, RiskScore(entity.EventLoginFailed, entity.SeverityError, 5))
	assert.Equal(t, 100, RiskScore(entity.EventAccountLockout, entity.SeverityCritical, 10))
}

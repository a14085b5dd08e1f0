package middleware

import (
	"net/http"
	"testing"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/csrf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRFMiddleware_SafeMethodIssuesToken(t *testing.T) {
	cfg := newTestConfig()
	fx := newAuditFixture(cfg)
	m := NewCSRFMiddleware(cfg, csrf.NewGuard(cfg), fx.logger)

	c, rec := newContext(http.MethodGet, "/auth/csrf")
	called := false
	require.NoError(t, m.Protect(okHandler(&called))(c))

	assert.True(t, called)
	token := CSRFToken(c)
	assert.Len(t, token, 64)
	assert.Equal(t, token, rec.Header().Get("X-CSRF-Token"))

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "csrf_token" {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, token, cookie.Value)
	assert.Empty(t, fx.all(t))
}

func TestCSRFMiddleware_UnsafeMethod(t *testing.T) {
	cfg := newTestConfig()

	tests := []struct {
		name       string
		cookie     string
		header     string
		wantReason csrf.FailureReason
	}{
		{name: "missing cookie", header: "abc", wantReason: csrf.FailureMissingCookie},
		{name: "missing header", cookie: "abc", wantReason: csrf.FailureMissingHeader},
		{name: "mismatch", cookie: "abc", header: "abd", wantReason: csrf.FailureMismatch},
		{name: "match", cookie: "abc", header: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAuditFixture(cfg)
			m := NewCSRFMiddleware(cfg, csrf.NewGuard(cfg), fx.logger)

			c, _ := newContext(http.MethodPost, "/auth/login")
			if tt.cookie != "" {
				c.Request().AddCookie(&http.Cookie{Name: "csrf_token", Value: tt.cookie})
			}
			if tt.header != "" {
				c.Request().Header.Set("X-CSRF-Token", tt.header)
			}

			called := false
			err := m.Protect(okHandler(&called))(c)

			if tt.wantReason == "" {
				require.NoError(t, err)
				assert.True(t, called)
				assert.Empty(t, fx.all(t))

				return
			}

			require.Error(t, err)
			assert.False(t, called)
			assert.True(t, errors.Is(err, domainerrors.ErrCSRFValidationFailed))

			events := fx.all(t)
			require.Len(t, events, 1)
			assert.Equal(t, entity.EventCSRFValidationFailed, events[0].EventType)
			assert.Equal(t, entity.SeverityWarning, events[0].Severity)
			assert.Equal(t, string(tt.wantReason), events[0].Details["reason"])
			assert.Equal(t, testIP, events[0].SourceIdentifier)
		})
	}
}

func TestCSRFMiddleware_ExemptPrefix(t *testing.T) {
	cfg := newTestConfig()
	fx := newAuditFixture(cfg)
	m := NewCSRFMiddleware(cfg, csrf.NewGuard(cfg), fx.logger)

	c, _ := newContext(http.MethodPost, "/webhooks/payments")
	called := false
	require.NoError(t, m.Protect(okHandler(&called))(c))
	assert.True(t, called)
	assert.Empty(t, fx.all(t))
}

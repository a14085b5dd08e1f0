package middleware

import (
	"net/http"
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/infra/csrf"

	"github.com/labstack/echo/v4"
)

const csrfTokenKey = "csrf_token"

// CSRFMiddleware enforces the double-submit token on state-changing requests.
type CSRFMiddleware struct {
	guard  service.CSRFGuard
	audit  service.AuditLogger
	exempt []string
}

// NewCSRFMiddleware creates the CSRF middleware. Exempt prefixes come from csrf.exemptPrefixes.
func NewCSRFMiddleware(cfg *config.Config, guard service.CSRFGuard, audit service.AuditLogger) *CSRFMiddleware {
	var exempt []string
	if cfg.CSRF != nil {
		exempt = cfg.CSRF.ExemptPrefixes
	}

	return &CSRFMiddleware{
		guard:  guard,
		audit:  audit,
		exempt: exempt,
	}
}

// Protect issues a fresh token on safe methods and validates it on everything else.
func (m *CSRFMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		if isSafeMethod(req.Method) {
			token, err := m.guard.Generate()
			if err != nil {
				return err
			}
			m.guard.Attach(c.Response(), token)
			c.Set(csrfTokenKey, token)

			return next(c)
		}

		if m.isExempt(req.URL.Path) {
			return next(c)
		}

		if err := m.guard.Validate(req); err != nil {
			m.audit.Record(req.Context(), securityEvent(c, entity.EventCSRFValidationFailed, map[string]any{
				"reason": string(csrf.FailureReasonOf(err)),
				"method": req.Method,
			}))

			return err
		}

		return next(c)
	}
}

// CSRFToken returns the token attached to the current response, if any.
func CSRFToken(c echo.Context) string {
	token, _ := c.Get(csrfTokenKey).(string)

	return token
}

func (m *CSRFMiddleware) isExempt(path string) bool {
	for _, prefix := range m.exempt {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}

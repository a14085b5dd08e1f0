package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gatekeeper/internal/delivery/api/response"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for access token authentication and role authorization.
type AuthMiddleware struct {
	tokens  service.TokenService
	audit   service.AuditLogger
	cookies *response.SessionCookies
	logger  *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService, audit service.AuditLogger, cookies *response.SessionCookies, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:  tokens,
		audit:   audit,
		cookies: cookies,
		logger:  logger,
	}
}

// Authenticate verifies the access token from the session cookie or the Authorization header.
// Every rejection is answered with the same 401 and recorded once.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := m.accessToken(c)
		if raw == "" {
			m.reject(c, entity.EventTokenInvalid, entity.TokenFailureMissing)

			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		claims, err := m.tokens.VerifyAccess(c.Request().Context(), raw)
		if err != nil {
			reason := auth.TokenFailureReasonOf(err)
			if reason == "" {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Token verification failed", slog.Any("error", err))

				return errors.Wrap(errors.Join(domainerrors.ErrInfrastructure, err), "verify access token")
			}

			eventType := entity.EventTokenInvalid
			if reason == entity.TokenFailureExpired {
				eventType = entity.EventTokenExpired
			}
			m.reject(c, eventType, reason)

			return err
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole must be used after Authenticate. Denials are recorded as access_denied;
// granted reads are recorded as admin_access. Writes record their own outcome.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetClaims(c)
			req := c.Request()

			if claims == nil || claims.Role != required {
				details := map[string]any{
					"requiredRole": required.String(),
					"method":       req.Method,
				}
				if claims != nil {
					details["role"] = claims.Role.String()
				}
				m.audit.Record(req.Context(), securityEvent(c, entity.EventAccessDenied, details))

				return errors.WithStack(domainerrors.ErrForbidden)
			}

			if req.Method == http.MethodGet || req.Method == http.MethodHead {
				m.audit.Record(req.Context(), securityEvent(c, entity.EventAdminAccess, map[string]any{
					"role":   claims.Role.String(),
					"method": req.Method,
					"path":   req.URL.Path,
				}))
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) accessToken(c echo.Context) string {
	if token := m.cookies.AccessToken(c); token != "" {
		return token
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}

func (m *AuthMiddleware) reject(c echo.Context, eventType entity.EventType, reason entity.TokenFailureReason) {
	m.audit.Record(c.Request().Context(), securityEvent(c, eventType, map[string]any{
		"reason":    string(reason),
		"tokenType": string(entity.TokenTypeAccess),
	}))
}

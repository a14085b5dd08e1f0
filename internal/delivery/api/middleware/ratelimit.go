package middleware

import (
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware applies the route registry budgets per client identifier.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	audit   service.AuditLogger
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates the rate limit middleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, audit service.AuditLogger, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		audit:   audit,
		logger:  logger,
	}
}

// Limit counts the request and rejects it with 429 once the window budget is spent.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()

		decision, err := m.limiter.Check(ctx, ratelimit.ResolveIdentifier(req), req.URL.Path)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Rate limit check failed", slog.Any("error", err))

			return errors.Wrap(errors.Join(domainerrors.ErrInfrastructure, err), "rate limit check")
		}

		if decision.Allowed {
			return next(c)
		}

		m.audit.Record(ctx, securityEvent(c, entity.EventRateLimitExceeded, map[string]any{
			"route":             decision.Route,
			"count":             decision.Count,
			"limit":             decision.Limit,
			"retryAfterSeconds": decision.RetryAfterSeconds,
		}))

		return errors.WithStack(domainerrors.NewRateLimitedError(decision.Route, decision.RetryAfterSeconds, decision.Message))
	}
}

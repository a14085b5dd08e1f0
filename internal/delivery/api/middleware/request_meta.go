package middleware

import (
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/infra/ratelimit"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RequestMeta collects the request attributes copied into security events.
func RequestMeta(c echo.Context) usecase.RequestMeta {
	req := c.Request()

	return usecase.RequestMeta{
		Identifier: ratelimit.ResolveIdentifier(req),
		UserAgent:  req.UserAgent(),
		RequestID:  deliverycontext.GetRequestID(c),
		Route:      req.URL.Path,
	}
}

func securityEvent(c echo.Context, eventType entity.EventType, details map[string]any) *entity.SecurityEvent {
	meta := RequestMeta(c)
	event := &entity.SecurityEvent{
		EventType:        eventType,
		SourceIdentifier: meta.Identifier,
		UserAgent:        meta.UserAgent,
		RequestID:        meta.RequestID,
		Route:            meta.Route,
		Details:          details,
	}
	if claims := deliverycontext.GetClaims(c); claims != nil {
		subjectID := claims.SubjectID
		event.SubjectID = &subjectID
		event.Email = claims.Email
	}

	return event
}

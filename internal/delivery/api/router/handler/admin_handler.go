package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/response"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsWindowHours = 24

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AuditUC usecase.AuditUsecase
	AuthUC  usecase.AuthUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the operator endpoints. Routes are guarded by the ADMIN role.
type AdminHandler struct {
	auditUC usecase.AuditUsecase
	authUC  usecase.AuthUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		auditUC: params.AuditUC,
		authUC:  params.AuthUC,
		logger:  params.Logger,
	}
}

// ListEventsRequest holds the query filters of the event listing.
type ListEventsRequest struct {
	EventType  string `query:"eventType" validate:"omitempty,max=64"`
	Severity   string `query:"severity" validate:"omitempty,max=16"`
	From       string `query:"from"`
	To         string `query:"to"`
	Email      string `query:"email" validate:"omitempty,max=254"`
	Identifier string `query:"identifier" validate:"omitempty,max=128"`
	SubjectID  string `query:"subjectId" validate:"omitempty,uuid"`
	Page       int    `query:"page" validate:"min=0"`
	PageSize   int    `query:"pageSize" validate:"min=0,max=200"`
}

// MetricsRequest holds the metrics window.
type MetricsRequest struct {
	WindowHours int `query:"windowHours" validate:"min=0"`
}

// ListEvents returns a page of security events, newest first.
func (h *AdminHandler) ListEvents(c echo.Context) error {
	var req ListEventsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, errors.Wrap(domainerrors.ErrValidationFailed, "malformed query"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	filter, err := req.toFilter()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.auditUC.ListEvents(c.Request().Context(), filter, entity.Pagination{Page: req.Page, PageSize: req.PageSize})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SecurityEventPageView{
		Events:   toSecurityEventViews(page.Events),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

// Metrics aggregates the audit log over the trailing window (24h by default).
func (h *AdminHandler) Metrics(c echo.Context) error {
	var req MetricsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, errors.Wrap(domainerrors.ErrValidationFailed, "malformed query"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}
	if req.WindowHours == 0 {
		req.WindowHours = defaultMetricsWindowHours
	}

	metrics, err := h.auditUC.Metrics(c.Request().Context(), req.WindowHours)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSecurityMetricsView(metrics))
}

// RevokeSubject invalidates every token issued so far to the principal in the path.
func (h *AdminHandler) RevokeSubject(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, errors.Wrap(domainerrors.ErrValidationFailed, "invalid principal id"))
	}

	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return response.HandleAppError(c, errors.WithStack(domainerrors.ErrInvalidToken))
	}

	err = h.authUC.RevokeSubject(c.Request().Context(), &usecase.RevokeSubjectInput{
		Actor:    claims,
		TargetID: targetID,
		Meta:     middleware.RequestMeta(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"subjectId": targetID.String(),
		"revoked":   true,
	})
}

func (r *ListEventsRequest) toFilter() (entity.SecurityEventFilter, error) {
	filter := entity.SecurityEventFilter{
		EventType:  entity.EventType(r.EventType),
		Severity:   entity.Severity(r.Severity),
		Email:      entity.NormalizeEmail(r.Email),
		Identifier: r.Identifier,
	}

	var err error
	if filter.From, err = parseTime("from", r.From); err != nil {
		return filter, err
	}
	if filter.To, err = parseTime("to", r.To); err != nil {
		return filter, err
	}
	if r.SubjectID != "" {
		subjectID, err := uuid.Parse(r.SubjectID)
		if err != nil {
			return filter, errors.Wrap(domainerrors.ErrValidationFailed, "invalid subjectId")
		}
		filter.SubjectID = &subjectID
	}

	return filter, nil
}

func parseTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(domainerrors.ErrValidationFailed, "%s must be an RFC 3339 timestamp", field)
	}

	return t, nil
}

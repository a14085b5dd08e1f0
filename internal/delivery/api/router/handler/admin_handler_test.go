package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatekeeper/internal/delivery/api/validator"
	"gatekeeper/internal/domain/entity"
	servicemocks "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *servicemocks.MockAuditLogger) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditLogger := servicemocks.NewMockAuditLogger(t)

	return NewAdminHandler(AdminHandlerParams{
		AuditUC: impl.NewAuditService(auditLogger, logger),
		Logger:  logger,
	}), auditLogger
}

func newRequestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(method, target, nil), rec), rec
}

func TestAdminHandler_ListEvents(t *testing.T) {
	t.Run("builds filter from query", func(t *testing.T) {
		h, auditLogger := newAdminHandler(t)
		subjectID := uuid.New()
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		auditLogger.EXPECT().
			Query(mock.Anything, mock.MatchedBy(func(f entity.SecurityEventFilter) bool {
				return f.EventType == entity.EventLoginFailed &&
					f.Email == "shopper@example.com" &&
					f.From.Equal(from) &&
					f.SubjectID != nil && *f.SubjectID == subjectID
			}), entity.Pagination{Page: 2, PageSize: 25}).
			Return(&entity.SecurityEventPage{
				Events: []*entity.SecurityEvent{{
					ID:               uuid.New(),
					EventType:        entity.EventLoginFailed,
					Severity:         entity.SeverityWarning,
					SourceIdentifier: "203.0.113.9",
				}},
				Total:    26,
				Page:     2,
				PageSize: 25,
			}, nil).Once()

		c, rec := newRequestContext(http.MethodGet,
			"/api/admin/security/events?eventType=login_failed&email=Shopper@Example.com&from=2026-01-01T00:00:00Z&subjectId="+subjectID.String()+"&page=2&pageSize=25")
		require.NoError(t, h.ListEvents(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"identifier":"203.0.113.9"`)
		assert.Contains(t, rec.Body.String(), `"total":26`)
	})

	t.Run("rejects malformed timestamps", func(t *testing.T) {
		h, _ := newAdminHandler(t)

		c, rec := newRequestContext(http.MethodGet, "/api/admin/security/events?from=yesterday")
		require.NoError(t, h.ListEvents(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "from must be an RFC 3339 timestamp")
	})

	t.Run("rejects oversized pages", func(t *testing.T) {
		h, _ := newAdminHandler(t)

		c, rec := newRequestContext(http.MethodGet, "/api/admin/security/events?pageSize=500")
		require.NoError(t, h.ListEvents(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_Metrics(t *testing.T) {
	h, auditLogger := newAdminHandler(t)
	auditLogger.EXPECT().Metrics(mock.Anything, 24).Return(&entity.SecurityMetrics{
		WindowHours: 24,
		TotalEvents: 3,
		BySeverity:  map[entity.Severity]int64{entity.SeverityInfo: 3},
		ByType:      map[entity.EventType]int64{entity.EventLoginSuccess: 3},
	}, nil).Once()

	c, rec := newRequestContext(http.MethodGet, "/api/admin/security/metrics")
	require.NoError(t, h.Metrics(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalEvents":3`)
	assert.Contains(t, rec.Body.String(), `"login_success":3`)
}

func TestAdminHandler_RevokeSubjectInvalidID(t *testing.T) {
	h, _ := newAdminHandler(t)

	c, rec := newRequestContext(http.MethodPost, "/api/admin/principals/not-a-uuid/revoke")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, h.RevokeSubject(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid principal id")
}

package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/infra/audit"
	"gatekeeper/internal/infra/persistence/memory"
	"gatekeeper/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testIP = "198.51.100.23"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		CSRF: &config.CSRFConfig{ExemptPrefixes: []string{"/webhooks/"}},
		RateLimit: &config.RateLimitConfig{Routes: []config.RouteLimitRule{
			{Pattern: "/auth/login", Window: time.Minute, MaxRequests: 2, Message: "slow down"},
		}},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.ApplyDefaults()

	return cfg
}

type auditFixture struct {
	logger service.AuditLogger
	events repository.AuditRepository
	clock  *util.ManualClock
}

func newAuditFixture(cfg *config.Config) *auditFixture {
	clock := util.NewManualClock(time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC))
	events := memory.NewAuditRepository()

	return &auditFixture{
		logger: audit.New(audit.Params{Config: cfg, Logger: newDiscardLogger(), Repo: events, Clock: clock}),
		events: events,
		clock:  clock,
	}
}

func (f *auditFixture) all(t *testing.T) []*entity.SecurityEvent {
	t.Helper()

	page, err := f.events.Query(context.Background(), entity.SecurityEventFilter{}, entity.Pagination{PageSize: entity.MaxPageSize})
	require.NoError(t, err)

	return page.Events
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = testIP + ":41234"
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(200)
	}
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/infra/audit"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/persistence/memory"
	"gatekeeper/internal/infra/ratelimit"
	"gatekeeper/internal/usecase"
	"gatekeeper/internal/util"
)

const (
	testPassword = "StrongPass123!"
	testIP       = "203.0.113.7"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Argon2: config.Argon2Config{
				MemoryKiB:  1024,
				Iterations: 1,
				Threads:    1,
				KeyLength:  32,
				SaltLength: 16,
			},
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.ApplyDefaults()

	return cfg
}

// authFixtures wires the auth service to real in-memory collaborators.
type authFixtures struct {
	service     usecase.AuthUsecase
	repo        repository.PrincipalRepository
	events      repository.AuditRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	revocations service.TokenRevocationStore
	limiter     service.RateLimiter
	lockout     service.AccountLockout
	audit       service.AuditLogger
	clock       *util.ManualClock
}

func newAuthFixtures(t *testing.T) *authFixtures {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	clock := util.NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	hasher, err := auth.NewArgon2Hasher(cfg)
	require.NoError(t, err)
	revocations := auth.NewMemoryRevocationStore(clock)
	tokens, err := auth.NewJWTService(cfg, clock, revocations)
	require.NoError(t, err)
	registry, err := ratelimit.NewRegistryFromConfig(cfg)
	require.NoError(t, err)
	limitStore := ratelimit.NewMemoryStore()
	limiter := ratelimit.NewLimiter(registry, limitStore, clock)
	lockout := ratelimit.NewLockout(cfg, limitStore, clock)
	events := memory.NewAuditRepository()
	auditLogger := audit.New(audit.Params{Config: cfg, Logger: logger, Repo: events, Clock: clock})
	repo := memory.NewPrincipalRepository()

	return &authFixtures{
		service:     NewAuthService(repo, hasher, tokens, revocations, limiter, lockout, auditLogger, clock, logger),
		repo:        repo,
		events:      events,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
		limiter:     limiter,
		lockout:     lockout,
		audit:       auditLogger,
		clock:       clock,
	}
}

func (f *authFixtures) createPrincipal(t *testing.T, email string, role entity.Role) *entity.Principal {
	t.Helper()

	hash, err := f.hasher.Hash(testPassword)
	require.NoError(t, err)
	principal := &entity.Principal{Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, f.repo.Create(context.Background(), principal))

	return principal
}

func (f *authFixtures) eventsOfType(t *testing.T, eventType entity.EventType) []*entity.SecurityEvent {
	t.Helper()

	page, err := f.events.Query(context.Background(), entity.SecurityEventFilter{EventType: eventType}, entity.Pagination{PageSize: entity.MaxPageSize})
	require.NoError(t, err)

	return page.Events
}

func loginMeta() usecase.RequestMeta {
	return usecase.RequestMeta{Identifier: testIP, UserAgent: "test-agent", RequestID: "req-1", Route: LoginRoute}
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
)

// LoginRoute is the path whose rate-limit bucket is cleared after a successful login.
const LoginRoute = "/auth/login"

// Burned on unknown emails so the response time does not reveal whether an account exists.
const timingPassword = "timing-equalization-placeholder"

const accountLockedMessage = "too many failed sign-in attempts, please try again later"

// authService implements the AuthUsecase interface.
type authService struct {
	hasher     service.PasswordHasher
	repo       repository.PrincipalRepository
	tokens     service.TokenService
	revocation service.TokenRevocationStore
	limiter    service.RateLimiter
	lockout    service.AccountLockout
	audit      service.AuditLogger
	clock      service.Clock
	logger     *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	repo repository.PrincipalRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	revocation service.TokenRevocationStore,
	limiter service.RateLimiter,
	lockout service.AccountLockout,
	audit service.AuditLogger,
	clock service.Clock,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		hasher:     hasher,
		repo:       repo,
		tokens:     tokens,
		revocation: revocation,
		limiter:    limiter,
		lockout:    lockout,
		audit:      audit,
		clock:      clock,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) record(ctx context.Context, eventType entity.EventType, meta usecase.RequestMeta, email string, subjectID *uuid.UUID, details map[string]any) {
	srv.audit.Record(ctx, &entity.SecurityEvent{
		EventType:        eventType,
		SubjectID:        subjectID,
		Email:            email,
		SourceIdentifier: meta.Identifier,
		UserAgent:        meta.UserAgent,
		RequestID:        meta.RequestID,
		Route:            meta.Route,
		Details:          details,
	})
}

// Signup creates a customer and signs them in.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthResult, error) {
	email := entity.NormalizeEmail(input.Email)

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.record(ctx, entity.EventSignupFailed, input.Meta, email, nil, map[string]any{"reason": "weak_password"})

		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "hash password")
	}

	principal := &entity.Principal{
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
	}
	if err := srv.repo.Create(ctx, principal); err != nil {
		if errors.Is(err, repository.ErrPrincipalExists) {
			srv.record(ctx, entity.EventSignupFailed, input.Meta, email, nil, map[string]any{"reason": "email_taken"})

			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, infrastructureError(err, "create principal")
	}

	pair, err := srv.tokens.IssuePair(principal.ID, principal.Email, principal.Role)
	if err != nil {
		return nil, infrastructureError(err, "issue tokens")
	}

	srv.record(ctx, entity.EventSignupSuccess, input.Meta, email, &principal.ID, map[string]any{"role": principal.Role.String()})
	srv.log(ctx).Info("Principal signed up", slog.String("principal_id", principal.ID.String()))

	return &usecase.AuthResult{Principal: principal, Tokens: pair}, nil
}

// Login verifies credentials, upgrades legacy hashes and issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.record(ctx, entity.EventLoginAttempt, input.Meta, email, nil, nil)

	// Unknown emails lock the same way so a lock does not reveal that an account exists.
	retryAfter, locked, err := srv.lockout.Locked(ctx, email)
	if err != nil {
		return nil, infrastructureError(err, "check account lockout")
	}
	if locked {
		srv.record(ctx, entity.EventLoginFailed, input.Meta, email, nil, map[string]any{
			"reason":            "account_locked",
			"retryAfterSeconds": retryAfter,
		})

		return nil, domainerrors.NewRateLimitedError(LoginRoute, retryAfter, accountLockedMessage)
	}

	principal, err := srv.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, infrastructureError(err, "find principal")
		}
		srv.hasher.Verify(input.Password, srv.timingHash())
		srv.record(ctx, entity.EventLoginFailed, input.Meta, email, nil, map[string]any{"reason": "unknown_email"})
		srv.countFailure(ctx, email, nil, input.Meta)

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if !srv.hasher.Verify(input.Password, principal.PasswordHash) {
		srv.record(ctx, entity.EventLoginFailed, input.Meta, email, &principal.ID, map[string]any{"reason": "bad_password"})
		srv.countFailure(ctx, email, &principal.ID, input.Meta)

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	rehashed := srv.upgradeHash(ctx, principal, input.Password)

	pair, err := srv.tokens.IssuePair(principal.ID, principal.Email, principal.Role)
	if err != nil {
		return nil, infrastructureError(err, "issue tokens")
	}

	if err := srv.limiter.Reset(ctx, input.Meta.Identifier, LoginRoute); err != nil {
		srv.log(ctx).Warn("Failed to reset login rate limit", slog.Any("error", err))
	}
	if err := srv.lockout.Clear(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to clear account lockout", slog.Any("error", err))
	}

	srv.record(ctx, entity.EventLoginSuccess, input.Meta, email, &principal.ID, map[string]any{
		"role":     principal.Role.String(),
		"rehashed": rehashed,
	})

	return &usecase.AuthResult{Principal: principal, Tokens: pair}, nil
}

// countFailure feeds the account lockout and records the lock when this failure engages it.
// A store failure only costs the count; the login was rejected either way.
func (srv *authService) countFailure(ctx context.Context, email string, subjectID *uuid.UUID, meta usecase.RequestMeta) {
	failures, lockedNow, err := srv.lockout.Fail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Failed to count failed login", slog.Any("error", err))

		return
	}
	if !lockedNow {
		return
	}

	retryAfter, _, err := srv.lockout.Locked(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Failed to read account lockout", slog.Any("error", err))
	}
	srv.record(ctx, entity.EventAccountLockout, meta, email, subjectID, map[string]any{
		"reason":            "repeated_login_failures",
		"failedAttempts":    failures,
		"retryAfterSeconds": retryAfter,
	})
	srv.log(ctx).Warn("Account locked after repeated login failures", slog.Int("failures", failures))
}

// upgradeHash re-hashes the password with the current parameters. Failures only cost the upgrade.
func (srv *authService) upgradeHash(ctx context.Context, principal *entity.Principal, password string) bool {
	if !srv.hasher.NeedsRehash(principal.PasswordHash) {
		return false
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to upgrade password hash", slog.Any("error", err))

		return false
	}
	if err := srv.repo.UpdatePasswordHash(ctx, principal.ID, hash); err != nil {
		srv.log(ctx).Warn("Failed to store upgraded password hash", slog.Any("error", err))

		return false
	}
	principal.PasswordHash = hash

	return true
}

func (srv *authService) timingHash() string {
	srv.dummyOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingPassword)
		if err != nil {
			srv.logger.Warn("Failed to prepare timing hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

// Refresh exchanges a refresh token for a new pair and revokes the presented one.
func (srv *authService) Refresh(ctx context.Context, refreshToken string, meta usecase.RequestMeta) (*usecase.AuthResult, error) {
	claims, err := srv.tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return nil, srv.rejectToken(ctx, err, entity.TokenTypeRefresh, meta)
	}

	if err := srv.revocation.Revoke(ctx, claims.ID, claims.ExpiresAt); err != nil {
		return nil, infrastructureError(err, "revoke refresh token")
	}

	principal, err := srv.repo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			srv.record(ctx, entity.EventTokenInvalid, meta, claims.Email, &claims.SubjectID, map[string]any{
				"reason":    "unknown_subject",
				"tokenType": string(entity.TokenTypeRefresh),
			})

			return nil, errors.WithStack(domainerrors.ErrInvalidToken)
		}

		return nil, infrastructureError(err, "find principal")
	}

	pair, err := srv.tokens.IssuePair(principal.ID, principal.Email, principal.Role)
	if err != nil {
		return nil, infrastructureError(err, "issue tokens")
	}

	srv.record(ctx, entity.EventTokenRefreshed, meta, principal.Email, &principal.ID, map[string]any{"jti": claims.ID})

	return &usecase.AuthResult{Principal: principal, Tokens: pair}, nil
}

// rejectToken audits a verification failure. Errors without a token reason are store failures.
func (srv *authService) rejectToken(ctx context.Context, err error, tokenType entity.TokenType, meta usecase.RequestMeta) error {
	reason := auth.TokenFailureReasonOf(err)
	if reason == "" {
		return infrastructureError(err, "verify token")
	}

	eventType := entity.EventTokenInvalid
	if reason == entity.TokenFailureExpired {
		eventType = entity.EventTokenExpired
	}
	srv.record(ctx, eventType, meta, "", nil, map[string]any{
		"reason":    string(reason),
		"tokenType": string(tokenType),
	})

	return err
}

// Logout revokes the access token and, when it belongs to the same subject, the refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	access := input.Access
	if err := srv.revocation.Revoke(ctx, access.ID, access.ExpiresAt); err != nil {
		return infrastructureError(err, "revoke access token")
	}

	refreshRevoked := false
	if input.RefreshToken != "" {
		refresh, err := srv.tokens.VerifyRefresh(ctx, input.RefreshToken)
		if err == nil && refresh.SubjectID == access.SubjectID {
			if err := srv.revocation.Revoke(ctx, refresh.ID, refresh.ExpiresAt); err != nil {
				return infrastructureError(err, "revoke refresh token")
			}
			refreshRevoked = true
		}
	}

	srv.record(ctx, entity.EventLogout, input.Meta, access.Email, &access.SubjectID, map[string]any{
		"jti":    access.ID,
		"reason": logoutReason(refreshRevoked),
	})

	return nil
}

func logoutReason(refreshRevoked bool) string {
	if refreshRevoked {
		return "session_ended"
	}

	return "access_only"
}

// Me returns the principal behind an access token.
func (srv *authService) Me(ctx context.Context, subjectID uuid.UUID) (*entity.Principal, error) {
	principal, err := srv.repo.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidToken)
		}

		return nil, infrastructureError(err, "find principal")
	}

	return principal, nil
}

// RevokeSubject invalidates all tokens issued to the target up to now.
func (srv *authService) RevokeSubject(ctx context.Context, input *usecase.RevokeSubjectInput) error {
	if _, err := srv.repo.FindByID(ctx, input.TargetID); err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return infrastructureError(err, "find principal")
	}

	if err := srv.revocation.RevokeSubject(ctx, input.TargetID, srv.clock.Now(), srv.tokens.RefreshTTL()); err != nil {
		return infrastructureError(err, "revoke subject")
	}

	srv.record(ctx, entity.EventAdminAccess, input.Meta, input.Actor.Email, &input.Actor.SubjectID, map[string]any{
		"reason":          "subject_revoked",
		"targetSubjectId": input.TargetID.String(),
	})
	srv.log(ctx).Info("Subject tokens revoked",
		slog.String("actor_id", input.Actor.SubjectID.String()),
		slog.String("target_id", input.TargetID.String()),
	)

	return nil
}

// infrastructureError keeps AppErrors as they are and maps anything else to a 500.
func infrastructureError(err error, message string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, message)
	}

	return errors.Wrap(errors.Join(domainerrors.ErrInfrastructure, err), message)
}

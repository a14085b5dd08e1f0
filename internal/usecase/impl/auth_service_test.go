package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"
)

func TestAuthService_Signup_Success(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()

	result, err := f.service.Signup(ctx, &usecase.SignupInput{
		Email:    " New.Shopper@Example.com ",
		Password: testPassword,
		Meta:     usecase.RequestMeta{Identifier: testIP, Route: "/auth/signup"},
	})
	require.NoError(t, err)

	assert.Equal(t, "new.shopper@example.com", result.Principal.Email)
	assert.Equal(t, entity.RoleCustomer, result.Principal.Role)
	assert.NotEqual(t, testPassword, result.Principal.PasswordHash)
	assert.NotEmpty(t, result.Tokens.AccessToken)

	claims, err := f.tokens.VerifyAccess(ctx, result.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.Principal.ID, claims.SubjectID)

	events := f.eventsOfType(t, entity.EventSignupSuccess)
	require.Len(t, events, 1)
	assert.Equal(t, entity.SeverityInfo, events[0].Severity)
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	f := newAuthFixtures(t)

	_, err := f.service.Signup(context.Background(), &usecase.SignupInput{Email: "a@example.com", Password: "short"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())

	events := f.eventsOfType(t, entity.EventSignupFailed)
	require.Len(t, events, 1)
	assert.Equal(t, "weak_password", events[0].Details["reason"])
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	f := newAuthFixtures(t)
	f.createPrincipal(t, "taken@example.com", entity.RoleCustomer)

	_, err := f.service.Signup(context.Background(), &usecase.SignupInput{Email: "TAKEN@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	events := f.eventsOfType(t, entity.EventSignupFailed)
	require.Len(t, events, 1)
	assert.Equal(t, "email_taken", events[0].Details["reason"])
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	principal := f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	for range 3 {
		_, err := f.limiter.Check(ctx, testIP, LoginRoute)
		require.NoError(t, err)
	}

	result, err := f.service.Login(ctx, &usecase.LoginInput{Email: "Shopper@Example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)
	assert.Equal(t, principal.ID, result.Principal.ID)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	decision, err := f.limiter.Check(ctx, testIP, LoginRoute)
	require.NoError(t, err)
	assert.Equal(t, 1, decision.Count, "successful login clears the bucket")

	success := f.eventsOfType(t, entity.EventLoginSuccess)
	require.Len(t, success, 1)
	assert.Equal(t, entity.SeverityInfo, success[0].Severity)
	assert.Equal(t, "req-1", success[0].RequestID)
	require.NotNil(t, success[0].SubjectID)
	assert.Equal(t, principal.ID, *success[0].SubjectID)
	assert.Len(t, f.eventsOfType(t, entity.EventLoginAttempt), 1)
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	_, errWrong := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: "WrongPass123!", Meta: loginMeta()})
	_, errUnknown := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: testPassword, Meta: loginMeta()})

	require.ErrorIs(t, errWrong, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)

	var wrongApp, unknownApp domainerrors.AppError
	require.True(t, errors.As(errWrong, &wrongApp))
	require.True(t, errors.As(errUnknown, &unknownApp))
	assert.Equal(t, wrongApp.Message(), unknownApp.Message())
	assert.Equal(t, wrongApp.HTTPCode(), unknownApp.HTTPCode())

	failed := f.eventsOfType(t, entity.EventLoginFailed)
	require.Len(t, failed, 2)
	assert.Equal(t, "unknown_email", failed[0].Details["reason"])
	assert.Equal(t, "bad_password", failed[1].Details["reason"])
}

func TestAuthService_Login_UpgradesLegacyHash(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	principal := &entity.Principal{Email: "legacy@example.com", PasswordHash: string(legacy), Role: entity.RoleCustomer}
	require.NoError(t, f.repo.Create(ctx, principal))

	_, err = f.service.Login(ctx, &usecase.LoginInput{Email: "legacy@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)

	stored, err := f.repo.FindByID(ctx, principal.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.PasswordHash, "$argon2id$")
	assert.False(t, f.hasher.NeedsRehash(stored.PasswordHash))

	success := f.eventsOfType(t, entity.EventLoginSuccess)
	require.Len(t, success, 1)
	assert.Equal(t, true, success[0].Details["rehashed"])
}

func TestAuthService_Login_RepositoryFailureIsInfrastructure(t *testing.T) {
	f := newAuthFixtures(t)
	repo := mockRepo.NewMockPrincipalRepository(t)
	audit := mockSvc.NewMockAuditLogger(t)
	svc := NewAuthService(repo, f.hasher, f.tokens, f.revocations, f.limiter, f.lockout, audit, f.clock, newDiscardLogger())

	audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(ev *entity.SecurityEvent) bool {
		return ev.EventType == entity.EventLoginAttempt
	})).Return().Once()
	repo.EXPECT().FindByEmail(mock.Anything, "shopper@example.com").Return(nil, errors.New("connection refused")).Once()

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	assert.ErrorIs(t, err, domainerrors.ErrInfrastructure)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_RehashFailureDoesNotBlockLogin(t *testing.T) {
	f := newAuthFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	repo := mockRepo.NewMockPrincipalRepository(t)
	audit := mockSvc.NewMockAuditLogger(t)
	svc := NewAuthService(repo, hasher, f.tokens, f.revocations, f.limiter, f.lockout, audit, f.clock, newDiscardLogger())

	principal := &entity.Principal{ID: uuid.New(), Email: "shopper@example.com", PasswordHash: "$2a$legacy", Role: entity.RoleCustomer}
	audit.EXPECT().Record(mock.Anything, mock.Anything).Return()
	repo.EXPECT().FindByEmail(mock.Anything, "shopper@example.com").Return(principal, nil).Once()
	hasher.EXPECT().Verify(testPassword, "$2a$legacy").Return(true).Once()
	hasher.EXPECT().NeedsRehash("$2a$legacy").Return(true).Once()
	hasher.EXPECT().Hash(testPassword).Return("", errors.New("entropy exhausted")).Once()

	result, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)
	assert.NotNil(t, result.Tokens)
}

func TestAuthService_Refresh_RotatesAndRejectsReuse(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	login, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	refreshed, err := f.service.Refresh(ctx, login.Tokens.RefreshToken, usecase.RequestMeta{Identifier: testIP})
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.RefreshToken, refreshed.Tokens.RefreshToken)
	assert.Len(t, f.eventsOfType(t, entity.EventTokenRefreshed), 1)

	_, err = f.service.Refresh(ctx, login.Tokens.RefreshToken, usecase.RequestMeta{Identifier: testIP})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	invalid := f.eventsOfType(t, entity.EventTokenInvalid)
	require.Len(t, invalid, 1)
	assert.Equal(t, "revoked", invalid[0].Details["reason"])
	assert.Equal(t, "refresh", invalid[0].Details["tokenType"])
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	login, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)

	_, err = f.service.Refresh(ctx, login.Tokens.AccessToken, usecase.RequestMeta{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	invalid := f.eventsOfType(t, entity.EventTokenInvalid)
	require.Len(t, invalid, 1)
	assert.Equal(t, "wrong_type", invalid[0].Details["reason"])
}

func TestAuthService_Refresh_Expired(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	login, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)

	f.clock.Advance(7*24*time.Hour + time.Second)
	_, err = f.service.Refresh(ctx, login.Tokens.RefreshToken, usecase.RequestMeta{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Len(t, f.eventsOfType(t, entity.EventTokenExpired), 1)
}

func TestAuthService_Logout_RevokesBothTokens(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	login, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)

	err = f.service.Logout(ctx, &usecase.LogoutInput{
		Access:       login.Tokens.AccessClaims,
		RefreshToken: login.Tokens.RefreshToken,
		Meta:         loginMeta(),
	})
	require.NoError(t, err)

	_, err = f.tokens.VerifyAccess(ctx, login.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	_, err = f.tokens.VerifyRefresh(ctx, login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	logout := f.eventsOfType(t, entity.EventLogout)
	require.Len(t, logout, 1)
	assert.Equal(t, "session_ended", logout[0].Details["reason"])
}

func TestAuthService_Me(t *testing.T) {
	f := newAuthFixtures(t)
	principal := f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	got, err := f.service.Me(context.Background(), principal.ID)
	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", got.Email)

	_, err = f.service.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_RevokeSubject(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	admin := f.createPrincipal(t, "admin@example.com", entity.RoleAdmin)
	target := f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	login, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)

	actor := &entity.TokenClaims{SubjectID: admin.ID, Email: admin.Email, Role: entity.RoleAdmin}
	require.NoError(t, f.service.RevokeSubject(ctx, &usecase.RevokeSubjectInput{Actor: actor, TargetID: target.ID}))

	_, err = f.tokens.VerifyAccess(ctx, login.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	f.clock.Advance(time.Second)
	relogin, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)
	_, err = f.tokens.VerifyAccess(ctx, relogin.Tokens.AccessToken)
	assert.NoError(t, err, "tokens issued after the cutoff stay valid")

	admins := f.eventsOfType(t, entity.EventAdminAccess)
	require.Len(t, admins, 1)
	assert.Equal(t, target.ID.String(), admins[0].Details["targetSubjectId"])

	err = f.service.RevokeSubject(ctx, &usecase.RevokeSubjectInput{Actor: actor, TargetID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

var _ repository.PrincipalRepository = (*mockRepo.MockPrincipalRepository)(nil)

func TestAuthService_Login_LocksAccountAcrossIdentifiers(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	for i := range 10 {
		meta := loginMeta()
		meta.Identifier = fmt.Sprintf("198.51.100.%d", i+1)
		_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: "WrongPass123!", Meta: meta})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}

	lockouts := f.eventsOfType(t, entity.EventAccountLockout)
	require.Len(t, lockouts, 1)
	assert.Equal(t, "repeated_login_failures", lockouts[0].Details["reason"])
	assert.Equal(t, entity.SeverityCritical, lockouts[0].Severity)

	f.clock.Advance(10 * time.Minute)
	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	var limited *domainerrors.RateLimitedError
	require.True(t, errors.As(err, &limited))
	assert.Equal(t, 1200, limited.RetryAfterSeconds)
	assert.Equal(t, 429, limited.HTTPCode())
	assert.Empty(t, f.eventsOfType(t, entity.EventLoginSuccess))

	failed := f.eventsOfType(t, entity.EventLoginFailed)
	require.Len(t, failed, 11)
	assert.Equal(t, "account_locked", failed[0].Details["reason"])

	f.clock.Advance(20 * time.Minute)
	_, err = f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)
	assert.Len(t, f.eventsOfType(t, entity.EventAccountLockout), 1)
}

func TestAuthService_Login_UnknownEmailLocksLikeKnownOne(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()

	for range 10 {
		_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: testPassword, Meta: loginMeta()})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: testPassword, Meta: loginMeta()})
	var limited *domainerrors.RateLimitedError
	assert.True(t, errors.As(err, &limited))
}

func TestAuthService_Login_SuccessClearsFailureCount(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	for range 9 {
		_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: "WrongPass123!", Meta: loginMeta()})
		require.Error(t, err)
	}
	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)

	_, err = f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: "WrongPass123!", Meta: loginMeta()})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, f.eventsOfType(t, entity.EventAccountLockout))
}

func TestAuthService_Login_LockoutStoreFailure(t *testing.T) {
	f := newAuthFixtures(t)
	lockout := mockSvc.NewMockAccountLockout(t)
	svc := NewAuthService(f.repo, f.hasher, f.tokens, f.revocations, f.limiter, lockout, f.audit, f.clock, newDiscardLogger())
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	lockout.EXPECT().Locked(mock.Anything, "shopper@example.com").Return(0, false, errors.New("connection refused")).Once()

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	assert.ErrorIs(t, err, domainerrors.ErrInfrastructure)
	assert.Empty(t, f.eventsOfType(t, entity.EventLoginSuccess))
}

func TestAuthService_Login_FailureCountErrorStillRejects(t *testing.T) {
	f := newAuthFixtures(t)
	lockout := mockSvc.NewMockAccountLockout(t)
	svc := NewAuthService(f.repo, f.hasher, f.tokens, f.revocations, f.limiter, lockout, f.audit, f.clock, newDiscardLogger())
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	lockout.EXPECT().Locked(mock.Anything, "shopper@example.com").Return(0, false, nil).Once()
	lockout.EXPECT().Fail(mock.Anything, "shopper@example.com").Return(0, false, errors.New("connection refused")).Once()

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "shopper@example.com", Password: "WrongPass123!", Meta: loginMeta()})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Len(t, f.eventsOfType(t, entity.EventLoginFailed), 1)
}

func TestAuthService_Refresh_RevocationStoreFailure(t *testing.T) {
	f := newAuthFixtures(t)
	ctx := context.Background()
	f.createPrincipal(t, "shopper@example.com", entity.RoleCustomer)

	login, err := f.service.Login(ctx, &usecase.LoginInput{Email: "shopper@example.com", Password: testPassword, Meta: loginMeta()})
	require.NoError(t, err)
	claims, err := f.tokens.VerifyRefresh(ctx, login.Tokens.RefreshToken)
	require.NoError(t, err)

	revocations := mockSvc.NewMockTokenRevocationStore(t)
	revocations.EXPECT().Revoke(mock.Anything, claims.ID, mock.AnythingOfType("time.Time")).Return(errors.New("connection refused")).Once()
	svc := NewAuthService(f.repo, f.hasher, f.tokens, revocations, f.limiter, f.lockout, f.audit, f.clock, newDiscardLogger())

	_, err = svc.Refresh(ctx, login.Tokens.RefreshToken, usecase.RequestMeta{Identifier: testIP})
	assert.ErrorIs(t, err, domainerrors.ErrInfrastructure)
	assert.Empty(t, f.eventsOfType(t, entity.EventTokenRefreshed))

	_, err = f.tokens.VerifyRefresh(ctx, login.Tokens.RefreshToken)
	assert.NoError(t, err, "the presented token stays usable when rotation fails")
}

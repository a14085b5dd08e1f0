// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestMeta is the request context copied into security events.
type RequestMeta struct {
	Identifier string // Client identifier resolved by the rate limiter.
	UserAgent  string
	RequestID  string
	Route      string
}

// SignupInput defines the input for creating a customer account.
type SignupInput struct {
	Email    string
	Password string
	Meta     RequestMeta
}

// LoginInput defines the input for password login.
type LoginInput struct {
	Email    string
	Password string
	Meta     RequestMeta
}

// LogoutInput carries the tokens presented on logout.
type LogoutInput struct {
	Access       *entity.TokenClaims
	RefreshToken string // Optional; revoked when it verifies.
	Meta         RequestMeta
}

// RevokeSubjectInput asks to invalidate every token of a principal.
type RevokeSubjectInput struct {
	Actor    *entity.TokenClaims
	TargetID uuid.UUID
	Meta     RequestMeta
}

// AuthResult is returned by every operation that issues tokens.
type AuthResult struct {
	Principal *entity.Principal
	Tokens    *entity.TokenPair
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Signup creates a customer and signs them in.
	Signup(ctx context.Context, input *SignupInput) (*AuthResult, error)

	// Login verifies credentials, upgrades legacy hashes and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// Refresh exchanges a refresh token for a new pair. The presented token is single use.
	Refresh(ctx context.Context, refreshToken string, meta RequestMeta) (*AuthResult, error)

	// Logout revokes the presented tokens.
	Logout(ctx context.Context, input *LogoutInput) error

	// Me returns the principal behind an access token.
	Me(ctx context.Context, subjectID uuid.UUID) (*entity.Principal, error)

	// RevokeSubject invalidates all tokens issued to the target so far.
	RevokeSubject(ctx context.Context, input *RevokeSubjectInput) error
}

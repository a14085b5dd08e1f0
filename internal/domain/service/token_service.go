package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gatekeeper/internal/domain/entity"
)

// Claims defines the custom claims carried by signed tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"typ"`
	// MintedAt is the issuance time in Unix milliseconds, compared against subject cutoffs.
	MintedAt int64 `json:"iat_ms,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// IssueAccess signs a short-lived access token.
	IssueAccess(subjectID uuid.UUID, email string, role entity.Role) (string, *entity.TokenClaims, error)

	// IssueRefresh signs a long-lived refresh token.
	IssueRefresh(subjectID uuid.UUID, email string, role entity.Role) (string, *entity.TokenClaims, error)

	// IssuePair signs an access and a refresh token for the same principal.
	IssuePair(subjectID uuid.UUID, email string, role entity.Role) (*entity.TokenPair, error)

	// VerifyAccess validates an access token. Any failure yields ErrInvalidToken.
	VerifyAccess(ctx context.Context, token string) (*entity.TokenClaims, error)

	// VerifyRefresh validates a refresh token. Any failure yields ErrInvalidToken.
	VerifyRefresh(ctx context.Context, token string) (*entity.TokenClaims, error)

	// AccessTTL returns the configured lifetime of access tokens.
	AccessTTL() time.Duration

	// RefreshTTL returns the configured lifetime of refresh tokens.
	RefreshTTL() time.Duration
}

// TokenRevocationStore remembers revoked token IDs until their natural expiry.
type TokenRevocationStore interface {
	// Revoke marks a jti as revoked until the given instant.
	Revoke(ctx context.Context, jti string, until time.Time) error

	// IsRevoked reports whether the jti was revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// RevokeSubject invalidates every token of the subject issued before the given instant.
	// The marker is kept for ttl, which should be at least the refresh token lifetime.
	RevokeSubject(ctx context.Context, subjectID uuid.UUID, before time.Time, ttl time.Duration) error

	// SubjectRevokedBefore returns the subject-wide cutoff, if any.
	SubjectRevokedBefore(ctx context.Context, subjectID uuid.UUID) (time.Time, bool, error)

	// Sweep drops expired markers. Stores with native expiry return zero.
	Sweep(ctx context.Context, now time.Time) (int, error)
}

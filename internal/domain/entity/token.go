package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	// TokenTypeAccess authorizes API calls for a short period.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh may only be exchanged for a new token pair.
	TokenTypeRefresh TokenType = "refresh"
)

// TokenClaims is the verified content of a signed token. It is never stored server side.
type TokenClaims struct {
	ID        string    // Unique token identifier (jti), used for revocation.
	SubjectID uuid.UUID // Principal the token was issued to.
	Email     string
	Role      Role
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
	// MintedAt is the issuance instant at millisecond precision; iat only carries seconds.
	MintedAt time.Time
}

// TokenPair bundles a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken   string
	AccessClaims  *TokenClaims
	RefreshToken  string
	RefreshClaims *TokenClaims
}

// TokenFailureReason is the internal cause of a token rejection.
// It is recorded in audit events and never returned to the client.
type TokenFailureReason string

const (
	TokenFailureMalformed TokenFailureReason = "malformed"
	TokenFailureSignature TokenFailureReason = "signature"
	TokenFailureExpired   TokenFailureReason = "expired"
	TokenFailureWrongType TokenFailureReason = "wrong_type"
	TokenFailureRevoked   TokenFailureReason = "revoked"
	TokenFailureMissing   TokenFailureReason = "missing"
)

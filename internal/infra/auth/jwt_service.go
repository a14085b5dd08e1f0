package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

const minSecretLength = 32

// localEnv is the only environment allowed to run with sample secrets.
const localEnv = "local"

var placeholderSecretMarkers = []string{"change-me", "changeme"}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	issuer        string
	clock         service.Clock
	revocations   service.TokenRevocationStore
	parser        *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// Secrets are read once; they must be distinct and at least 32 bytes long.
// Sample secrets are refused outside the local environment.
func NewJWTService(cfg *config.Config, clock service.Clock, revocations service.TokenRevocationStore) (service.TokenService, error) {
	access, refresh := cfg.SecretKey.Access, cfg.SecretKey.Refresh
	switch {
	case access == "" || refresh == "":
		return nil, errors.New("jwt secrets must be provided")
	case len(access) < minSecretLength || len(refresh) < minSecretLength:
		return nil, errors.Errorf("jwt secrets must be at least %d bytes", minSecretLength)
	case access == refresh:
		return nil, errors.New("access and refresh secrets must differ")
	case cfg.Env.Env != localEnv && (isPlaceholderSecret(access) || isPlaceholderSecret(refresh)):
		return nil, errors.Errorf("jwt secrets are sample values; inject real secrets for env %q", cfg.Env.Env)
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	issuer := "gatekeeper"
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.Issuer != "" {
			issuer = cfg.Auth.Issuer
		}
	}

	return &jwtService{
		accessSecret:  []byte(access),
		refreshSecret: []byte(refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        issuer,
		clock:         clock,
		revocations:   revocations,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(clock.Now),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// IssueAccess signs a short-lived access token.
func (s *jwtService) IssueAccess(subjectID uuid.UUID, email string, role entity.Role) (string, *entity.TokenClaims, error) {
	return s.issue(subjectID, email, role, entity.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

// IssueRefresh signs a long-lived refresh token.
func (s *jwtService) IssueRefresh(subjectID uuid.UUID, email string, role entity.Role) (string, *entity.TokenClaims, error) {
	return s.issue(subjectID, email, role, entity.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
}

// IssuePair signs an access and a refresh token for the same principal.
func (s *jwtService) IssuePair(subjectID uuid.UUID, email string, role entity.Role) (*entity.TokenPair, error) {
	access, accessClaims, err := s.IssueAccess(subjectID, email, role)
	if err != nil {
		return nil, err
	}

	refresh, refreshClaims, err := s.IssueRefresh(subjectID, email, role)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:   access,
		AccessClaims:  accessClaims,
		RefreshToken:  refresh,
		RefreshClaims: refreshClaims,
	}, nil
}

// VerifyAccess validates an access token.
func (s *jwtService) VerifyAccess(ctx context.Context, token string) (*entity.TokenClaims, error) {
	return s.verify(ctx, token, s.accessSecret, entity.TokenTypeAccess)
}

// VerifyRefresh validates a refresh token.
func (s *jwtService) VerifyRefresh(ctx context.Context, token string) (*entity.TokenClaims, error) {
	return s.verify(ctx, token, s.refreshSecret, entity.TokenTypeRefresh)
}

// AccessTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

// RefreshTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// issue is a private helper to create a JWT with specific claims.
func (s *jwtService) issue(subjectID uuid.UUID, email string, role entity.Role, tokenType entity.TokenType, ttl time.Duration, secret []byte) (string, *entity.TokenClaims, error) {
	// NumericDate has second precision, so the returned claims match what a verifier will decode.
	minted := s.clock.Now().Truncate(time.Millisecond)
	now := minted.Truncate(time.Second)
	jti := uuid.NewString()

	claims := service.Claims{
		Email:    email,
		Role:     role.String(),
		Type:     string(tokenType),
		MintedAt: minted.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign token")
	}

	return signed, &entity.TokenClaims{
		ID:        jti,
		SubjectID: subjectID,
		Email:     email,
		Role:      role,
		Type:      tokenType,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		MintedAt:  minted,
	}, nil
}

func (s *jwtService) verify(ctx context.Context, raw string, secret []byte, want entity.TokenType) (*entity.TokenClaims, error) {
	if raw == "" {
		return nil, newTokenError(entity.TokenFailureMissing, nil)
	}

	parsed := &service.Claims{}
	_, err := s.parser.ParseWithClaims(raw, parsed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil {
		return nil, newTokenError(classifyParseError(err), err)
	}

	if entity.TokenType(parsed.Type) != want {
		return nil, newTokenError(entity.TokenFailureWrongType, nil)
	}

	claims, err := toTokenClaims(parsed)
	if err != nil {
		return nil, newTokenError(entity.TokenFailureMalformed, err)
	}

	if err := s.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *jwtService) checkRevoked(ctx context.Context, claims *entity.TokenClaims) error {
	if s.revocations == nil {
		return nil
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return errors.Wrap(errors.Join(domainerrors.ErrInfrastructure, err), "revocation lookup failed")
	}
	if revoked {
		return newTokenError(entity.TokenFailureRevoked, nil)
	}

	before, ok, err := s.revocations.SubjectRevokedBefore(ctx, claims.SubjectID)
	if err != nil {
		return errors.Wrap(errors.Join(domainerrors.ErrInfrastructure, err), "revocation lookup failed")
	}
	if ok && !claims.MintedAt.After(before.Truncate(time.Millisecond)) {
		return newTokenError(entity.TokenFailureRevoked, nil)
	}

	return nil
}

func isPlaceholderSecret(secret string) bool {
	lower := strings.ToLower(secret)
	for _, marker := range placeholderSecretMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

func classifyParseError(err error) entity.TokenFailureReason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return entity.TokenFailureExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return entity.TokenFailureSignature
	default:
		return entity.TokenFailureMalformed
	}
}

func toTokenClaims(c *service.Claims) (*entity.TokenClaims, error) {
	subjectID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}
	if c.ID == "" {
		return nil, errors.New("missing jti")
	}
	if c.IssuedAt == nil || c.ExpiresAt == nil {
		return nil, errors.New("missing iat or exp")
	}

	role, ok := entity.ParseRole(c.Role)
	if !ok {
		return nil, errors.Errorf("unknown role %q", c.Role)
	}

	minted := c.IssuedAt.Time
	if c.MintedAt > 0 {
		minted = time.UnixMilli(c.MintedAt)
	}

	return &entity.TokenClaims{
		ID:        c.ID,
		SubjectID: subjectID,
		Email:     c.Email,
		Role:      role,
		Type:      entity.TokenType(c.Type),
		IssuedAt:  c.IssuedAt.Time,
		ExpiresAt: c.ExpiresAt.Time,
		MintedAt:  minted,
	}, nil
}

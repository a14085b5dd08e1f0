package context

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyClaims is the key for storing verified access token claims.
const KeyClaims ContextKey = "claims"

// SetClaims stores the verified claims in both echo.Context and the request context.
func SetClaims(c echo.Context, claims *entity.TokenClaims) {
	c.Set(string(KeyClaims), claims)
	c.SetRequest(c.Request().WithContext(WithClaims(c.Request().Context(), claims)))
}

// GetClaims returns the claims set by the authentication middleware, or nil.
func GetClaims(c echo.Context) *entity.TokenClaims {
	claims, _ := c.Get(string(KeyClaims)).(*entity.TokenClaims)

	return claims
}

// WithClaims returns a new context with the claims.
func WithClaims(ctx context.Context, claims *entity.TokenClaims) context.Context {
	return context.WithValue(ctx, KeyClaims, claims)
}

// GetClaimsFromContext extracts the claims from standard context.Context.
func GetClaimsFromContext(ctx context.Context) *entity.TokenClaims {
	claims, _ := ctx.Value(KeyClaims).(*entity.TokenClaims)

	return claims
}

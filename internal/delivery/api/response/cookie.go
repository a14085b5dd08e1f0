package response

import (
	"net/http"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionCookies writes and reads the access and refresh token cookies.
type SessionCookies struct {
	accessName  string
	refreshName string
	refreshPath string
	domain      string
	secure      bool
}

// NewSessionCookies builds the cookie settings from the cookies config section.
func NewSessionCookies(cfg *config.Config) *SessionCookies {
	sc := &SessionCookies{
		accessName:  "access_token",
		refreshName: "refresh_token",
		refreshPath: "/auth",
		secure:      true,
	}
	if cfg.Cookies == nil {
		return sc
	}

	if cfg.Cookies.AccessName != "" {
		sc.accessName = cfg.Cookies.AccessName
	}
	if cfg.Cookies.RefreshName != "" {
		sc.refreshName = cfg.Cookies.RefreshName
	}
	if cfg.Cookies.RefreshPath != "" {
		sc.refreshPath = cfg.Cookies.RefreshPath
	}
	sc.domain = cfg.Cookies.Domain
	sc.secure = cfg.Cookies.Secure

	return sc
}

// Set writes both token cookies. Max-Age follows each token's expiry.
func (sc *SessionCookies) Set(c echo.Context, pair *entity.TokenPair, now time.Time) {
	c.SetCookie(sc.cookie(sc.accessName, pair.AccessToken, "/", maxAge(pair.AccessClaims.ExpiresAt, now)))
	c.SetCookie(sc.cookie(sc.refreshName, pair.RefreshToken, sc.refreshPath, maxAge(pair.RefreshClaims.ExpiresAt, now)))
}

// Clear expires both token cookies.
func (sc *SessionCookies) Clear(c echo.Context) {
	c.SetCookie(sc.cookie(sc.accessName, "", "/", -1))
	c.SetCookie(sc.cookie(sc.refreshName, "", sc.refreshPath, -1))
}

// AccessToken returns the access token cookie value, if any.
func (sc *SessionCookies) AccessToken(c echo.Context) string {
	return cookieValue(c, sc.accessName)
}

// RefreshToken returns the refresh token cookie value, if any.
func (sc *SessionCookies) RefreshToken(c echo.Context) string {
	return cookieValue(c, sc.refreshName)
}

func (sc *SessionCookies) cookie(name, value, path string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   sc.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   sc.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func maxAge(expiresAt, now time.Time) int {
	seconds := int(expiresAt.Sub(now) / time.Second)
	if seconds < 1 {
		return -1
	}

	return seconds
}

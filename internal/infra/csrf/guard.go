// Package csrf implements the double-submit cookie defense against cross-site request forgery.
package csrf

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

const tokenBytes = 32

// FailureReason is the internal cause of a CSRF rejection, recorded for audit only.
type FailureReason string

const (
	FailureMissingCookie FailureReason = "missing_cookie"
	FailureMissingHeader FailureReason = "missing_header"
	FailureMismatch      FailureReason = "mismatch"
)

type guard struct {
	cookieName string
	headerName string
	ttl        time.Duration
	secure     bool
	domain     string
	rand       io.Reader
}

// NewGuard creates the CSRF guard from the csrf and cookies config sections.
func NewGuard(cfg *config.Config) service.CSRFGuard {
	g := &guard{
		cookieName: "csrf_token",
		headerName: "X-CSRF-Token",
		ttl:        24 * time.Hour,
		secure:     true,
		rand:       rand.Reader,
	}
	if cfg.CSRF != nil {
		if cfg.CSRF.CookieName != "" {
			g.cookieName = cfg.CSRF.CookieName
		}
		if cfg.CSRF.HeaderName != "" {
			g.headerName = cfg.CSRF.HeaderName
		}
		if cfg.CSRF.TTL > 0 {
			g.ttl = cfg.CSRF.TTL
		}
	}
	if cfg.Cookies != nil {
		g.secure = cfg.Cookies.Secure
		g.domain = cfg.Cookies.Domain
	}

	return g
}

// Generate returns 32 random bytes, hex encoded.
func (g *guard) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return "", errors.Wrap(err, "failed to generate csrf token")
	}

	return hex.EncodeToString(buf), nil
}

// Attach sets the token cookie and mirrors the token in the response header for SPA clients.
func (g *guard) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     g.cookieName,
		Value:    token,
		Path:     "/",
		Domain:   g.domain,
		MaxAge:   int(g.ttl / time.Second),
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteStrictMode,
	})
	w.Header().Set(g.headerName, token)
}

// Validate requires the cookie and header to be present and byte-for-byte equal.
func (g *guard) Validate(r *http.Request) error {
	cookie, err := r.Cookie(g.cookieName)
	if err != nil || cookie.Value == "" {
		return newFailure(FailureMissingCookie)
	}

	header := r.Header.Get(g.headerName)
	if header == "" {
		return newFailure(FailureMissingHeader)
	}

	if !tokensEqual(cookie.Value, header) {
		return newFailure(FailureMismatch)
	}

	return nil
}

func (g *guard) HeaderName() string {
	return g.headerName
}

// tokensEqual compares in time that depends only on the header length.
// Every byte is folded into the accumulator; there is no early exit.
func tokensEqual(expected, actual string) bool {
	var diff byte
	if len(expected) != len(actual) {
		diff = 1
	}

	for i := 0; i < len(actual); i++ {
		var e byte
		if i < len(expected) {
			e = expected[i]
		}
		diff |= e ^ actual[i]
	}

	return diff == 0
}

type failure struct {
	reason FailureReason
}

func newFailure(reason FailureReason) error {
	return errors.WithStack(&failure{reason: reason})
}

func (f *failure) Error() string {
	return "csrf validation failed: " + string(f.reason)
}

func (f *failure) Unwrap() error {
	return domainerrors.ErrCSRFValidationFailed
}

// FailureReasonOf extracts the rejection reason from a Validate error.
func FailureReasonOf(err error) FailureReason {
	var f *failure
	if errors.As(err, &f) {
		return f.reason
	}

	return ""
}

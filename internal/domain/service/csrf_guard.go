package service

import "net/http"

// CSRFGuard implements the double-submit token pattern.
type CSRFGuard interface {
	// Generate returns a fresh random token.
	Generate() (string, error)

	// Attach writes the token as a cookie and echoes it in the response header.
	Attach(w http.ResponseWriter, token string)

	// Validate checks the cookie against the request header. Any failure yields ErrCSRFValidationFailed.
	Validate(r *http.Request) error

	// HeaderName returns the request header clients echo the token in.
	HeaderName() string
}

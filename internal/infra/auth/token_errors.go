package auth

import (
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
)

// tokenError carries the internal rejection reason behind ErrInvalidToken.
// The reason is for audit records only; clients always see the generic error.
type tokenError struct {
	reason entity.TokenFailureReason
	cause  error
}

func newTokenError(reason entity.TokenFailureReason, cause error) error {
	return errors.WithStack(&tokenError{reason: reason, cause: cause})
}

func (e *tokenError) Error() string {
	if e.cause != nil {
		return "invalid token (" + string(e.reason) + "): " + e.cause.Error()
	}

	return "invalid token (" + string(e.reason) + ")"
}

func (e *tokenError) Unwrap() []error {
	if e.cause != nil {
		return []error{domainerrors.ErrInvalidToken, e.cause}
	}

	return []error{domainerrors.ErrInvalidToken}
}

// TokenFailureReasonOf extracts the rejection reason from a verification error.
// It returns an empty reason for errors that did not come from token verification.
func TokenFailureReasonOf(err error) entity.TokenFailureReason {
	var te *tokenError
	if errors.As(err, &te) {
		return te.reason
	}

	return ""
}

package validator

import (
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, v.Validate(&credentials{Email: "a@example.com", Password: "secret"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&credentials{Email: "not-an-email"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.HTTPCode())
		assert.Contains(t, appErr.Details(), "email must be a valid email address")
		assert.Contains(t, appErr.Details(), "password is required")
	})
}

package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactor_Redact(t *testing.T) {
	r := NewRedactor(nil)

	got := r.Redact(map[string]any{
		"reason":       "bad_password",
		"password":     "hunter2",
		"refreshToken": "eyJhbGciOi",
		"tokenType":    "refresh",
		"favouriteDog": "rex",
		"count":        3,
	})

	assert.Equal(t, map[string]any{
		"reason":    "bad_password",
		"tokenType": "refresh",
		"count":     3,
	}, got)
}

func TestRedactor_SecretKeysWinOverAllowList(t *testing.T) {
	r := NewRedactor([]string{"password", "card_number", "reason"})

	got := r.Redact(map[string]any{
		"password":    "hunter2",
		"card_number": "4111111111111111",
		"reason":      "x",
	})

	assert.Equal(t, map[string]any{"reason": "x"}, got)
}

func TestRedactor_MasksCardNumbers(t *testing.T) {
	r := NewRedactor([]string{"reason"})

	got := r.Redact(map[string]any{"reason": "4111 1111 1111 1111"})
	assert.Equal(t, "************1111", got["reason"])

	got = r.Redact(map[string]any{"reason": "4111111111111112"})
	assert.Equal(t, "4111111111111112", got["reason"], "fails the Luhn check")

	got = r.Redact(map[string]any{"reason": "order 12345"})
	assert.Equal(t, "order 12345", got["reason"])
}

func TestRedactor_NilDetails(t *testing.T) {
	got := NewRedactor(nil).Redact(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

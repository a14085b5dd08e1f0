package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
)

// ValidatePasswordStrength checks the password against the configured policy.
func (h *argon2Hasher) ValidatePasswordStrength(password string) error {
	p := h.policy
	length := utf8.RuneCountInString(password)

	if p.MinLength > 0 && length < p.MinLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "must be at least %d characters long", p.MinLength)
	}
	if p.MaxLength > 0 && length > p.MaxLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "must be at most %d characters long", p.MaxLength)
	}
	if p.RequireLowercase && !h.hasLowercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one lowercase letter")
	}
	if p.RequireUppercase && !h.hasUppercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one uppercase letter")
	}
	if p.RequireNumbers && !h.hasNumbers(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one number")
	}
	if p.RequireSpecial && !h.hasSpecialChars(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one special character")
	}
	if h.containsForbiddenWords(password, p.ForbiddenWords) {
		return errors.Wrap(domainerrors.ErrPasswordForbiddenWords, "contains forbidden words")
	}

	return nil
}

func (h *argon2Hasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *argon2Hasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *argon2Hasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *argon2Hasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *argon2Hasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if word != "" && strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}

	return false
}

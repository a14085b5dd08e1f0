package audit

import (
	"strings"
	"unicode"
)

// DefaultAllowedDetailKeys is used when no allow-list is configured.
var DefaultAllowedDetailKeys = []string{
	"reason", "route", "method", "path", "role", "requiredRole",
	"count", "limit", "retryAfterSeconds", "failedAttempts", "threshold",
	"tokenType", "jti", "targetSubjectId", "rehashed",
}

// Keys that never survive redaction even if someone adds them to the allow-list.
var secretKeys = map[string]struct{}{
	"password":        {},
	"passwd":          {},
	"newpassword":     {},
	"currentpassword": {},
	"passwordhash":    {},
	"secret":          {},
	"token":           {},
	"accesstoken":     {},
	"refreshtoken":    {},
	"csrftoken":       {},
	"authorization":   {},
	"cookie":          {},
	"card":            {},
	"cardnumber":      {},
	"pan":             {},
	"cvv":             {},
	"cvc":             {},
	"ssn":             {},
}

// Redactor filters event details through an allow-list.
type Redactor struct {
	allowed map[string]struct{}
}

// NewRedactor builds a redactor. An empty list falls back to DefaultAllowedDetailKeys.
func NewRedactor(allowedKeys []string) *Redactor {
	if len(allowedKeys) == 0 {
		allowedKeys = DefaultAllowedDetailKeys
	}

	allowed := make(map[string]struct{}, len(allowedKeys))
	for _, key := range allowedKeys {
		allowed[key] = struct{}{}
	}

	return &Redactor{allowed: allowed}
}

// Redact returns a copy of details holding only allowed, non-secret keys.
// String values that look like payment card numbers are masked.
func (r *Redactor) Redact(details map[string]any) map[string]any {
	out := make(map[string]any, len(details))
	for key, value := range details {
		if isSecretKey(key) {
			continue
		}
		if _, ok := r.allowed[key]; !ok {
			continue
		}
		out[key] = r.redactValue(value)
	}

	return out
}

func (r *Redactor) redactValue(value any) any {
	switch v := value.(type) {
	case string:
		return maskCardNumber(v)
	case map[string]any:
		return r.Redact(v)
	case []string:
		masked := make([]string, len(v))
		for i, s := range v {
			masked[i] = maskCardNumber(s)
		}

		return masked
	default:
		return value
	}
}

func isSecretKey(key string) bool {
	normalized := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}

		return unicode.ToLower(r)
	}, key)

	_, ok := secretKeys[normalized]

	return ok
}

// maskCardNumber replaces any 13 to 19 digit run (spaces and dashes allowed) that passes
// the Luhn check with a mask keeping only the last four digits.
func maskCardNumber(s string) string {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c == ' ' || c == '-':
		default:
			return s
		}
	}

	if len(digits) < 13 || len(digits) > 19 || !luhnValid(digits) {
		return s
	}

	return strings.Repeat("*", len(digits)-4) + string(digits[len(digits)-4:])
}

func luhnValid(digits []byte) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
		retryAfter  string
	}{
		{
			name:        "rate limited",
			err:         errors.WithStack(domainerrors.NewRateLimitedError("/auth/login", 42, "")),
			wantStatus:  http.StatusTooManyRequests,
			wantCode:    "RATE_LIMITED",
			wantDetails: map[string]any{"retryAfterSeconds": float64(42)},
			retryAfter:  "42",
		},
		{
			name:        "validation keeps context",
			err:         errors.Wrap(domainerrors.ErrValidationFailed, "unknown severity \"LOUD\""),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "unknown severity \"LOUD\"",
		},
		{
			name:       "credentials carry no details",
			err:        errors.Wrap(domainerrors.ErrInvalidCredentials, "bad_password"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "infrastructure hides cause",
			err:        errors.Wrap(errors.Join(domainerrors.ErrInfrastructure, errors.New("dial tcp: refused")), "find principal"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INFRASTRUCTURE_ERROR",
		},
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/auth/login")
			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.retryAfter, rec.Header().Get("Retry-After"))

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "dial tcp")
		})
	}
}

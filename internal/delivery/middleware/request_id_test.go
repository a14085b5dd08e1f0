package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "missing id is generated", inbound: ""},
		{name: "id at column width is kept", inbound: strings.Repeat("a", entity.MaxEventRequestIDLength), keep: true},
		{name: "oversized id is replaced", inbound: strings.Repeat("a", entity.MaxEventRequestIDLength+1)},
		{name: "id with spaces is replaced", inbound: "req 1"},
		{name: "plain id is kept", inbound: "req-1", keep: true},
	}

	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.inbound)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var fromCtx string
			err := mw.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, fromCtx)
			assert.LessOrEqual(t, len(got), entity.MaxEventRequestIDLength)
			if tt.keep {
				assert.Equal(t, tt.inbound, got)
			} else {
				assert.NotEqual(t, tt.inbound, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

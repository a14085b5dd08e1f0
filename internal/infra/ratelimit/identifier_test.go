package ratelimit

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gatekeeper/internal/domain/entity"
)

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		remoteAddr string
		want       string
	}{
		{name: "first forwarded hop", xff: "203.0.113.7, 10.0.0.1", remoteAddr: "10.0.0.1:1234", want: "203.0.113.7"},
		{name: "forwarded hop is trimmed", xff: "  198.51.100.2  ", remoteAddr: "10.0.0.1:1234", want: "198.51.100.2"},
		{name: "empty first hop falls back", xff: " , 10.0.0.9", remoteAddr: "192.0.2.1:5555", want: "192.0.2.1"},
		{name: "remote addr host", remoteAddr: "192.0.2.1:5555", want: "192.0.2.1"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
		{name: "nothing known", remoteAddr: "", want: UnknownIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}

			assert.Equal(t, tt.want, ResolveIdentifier(req))
		})
	}
}

func TestResolveIdentifier_BoundsOversizedHop(t *testing.T) {
	long := strings.Repeat("a", 300)

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", long+", 10.0.0.1")

	got := ResolveIdentifier(req)
	assert.LessOrEqual(t, len(got), entity.MaxEventIdentifierLength)
	assert.True(t, strings.HasPrefix(got, hashedIdentifierPrefix))
	assert.Equal(t, got, ResolveIdentifier(req), "same client maps to the same bucket")

	other := httptest.NewRequest("GET", "/", nil)
	other.Header.Set("X-Forwarded-For", strings.Repeat("b", 300))
	assert.NotEqual(t, got, ResolveIdentifier(other))

	edge := httptest.NewRequest("GET", "/", nil)
	edge.Header.Set("X-Forwarded-For", strings.Repeat("c", entity.MaxEventIdentifierLength))
	assert.Equal(t, strings.Repeat("c", entity.MaxEventIdentifierLength), ResolveIdentifier(edge))
}

// Package ratelimit implements fixed-window request budgets per client identifier and route pattern.
package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"

	"gatekeeper/internal/domain/entity"
)

// UnknownIdentifier is used when no client address can be determined.
const UnknownIdentifier = "unknown"

// hashedIdentifierPrefix marks identifiers that were too long to keep verbatim.
const hashedIdentifierPrefix = "sha256:"

// ResolveIdentifier derives the client identifier: the first X-Forwarded-For hop,
// else the host part of RemoteAddr, else UnknownIdentifier.
// Deployments must strip client-supplied X-Forwarded-For at the edge proxy.
// Oversized values are replaced by their digest so they still fit audit storage.
func ResolveIdentifier(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return boundIdentifier(first)
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return boundIdentifier(host)
	}

	if addr := strings.TrimSpace(r.RemoteAddr); addr != "" {
		return boundIdentifier(addr)
	}

	return UnknownIdentifier
}

func boundIdentifier(id string) string {
	if len(id) <= entity.MaxEventIdentifierLength {
		return id
	}
	sum := sha256.Sum256([]byte(id))

	return hashedIdentifierPrefix + hex.EncodeToString(sum[:])
}

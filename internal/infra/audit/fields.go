package audit

import (
	"strings"
	"unicode/utf8"

	"gatekeeper/internal/domain/entity"
)

// Bounds for text columns that have no declared width.
const (
	maxUserAgentLength = 512
	maxRouteLength     = 512
)

// fitEvent keeps client-influenced fields storable as text within their column widths.
func fitEvent(ev *entity.SecurityEvent) {
	ev.Email = fitText(ev.Email, entity.MaxEventEmailLength)
	ev.SourceIdentifier = fitText(ev.SourceIdentifier, entity.MaxEventIdentifierLength)
	ev.RequestID = fitText(ev.RequestID, entity.MaxEventRequestIDLength)
	ev.UserAgent = fitText(ev.UserAgent, maxUserAgentLength)
	ev.Route = fitText(ev.Route, maxRouteLength)
}

// fitText cuts s to at most limit bytes on a rune boundary.
func fitText(s string, limit int) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "?")
	}
	s = strings.ReplaceAll(s, "\x00", "")
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

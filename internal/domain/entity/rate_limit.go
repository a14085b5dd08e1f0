package entity

import "time"

// RouteLimit is the rate-limit policy attached to a route pattern.
// A pattern ending in "*" matches every path with that prefix.
type RouteLimit struct {
	Pattern     string
	Window      time.Duration
	MaxRequests int
	Message     string
}

// IsPrefix reports whether the pattern is a prefix match.
func (l RouteLimit) IsPrefix() bool {
	return len(l.Pattern) > 0 && l.Pattern[len(l.Pattern)-1] == '*'
}

// RateLimitEntry is the fixed-window counter for one identifier on one route pattern.
type RateLimitEntry struct {
	Identifier   string
	Route        string
	Count        int
	WindowStart  time.Time
	WindowLength time.Duration
	Limit        int
}

// WindowEnd is the instant the entry expires.
func (e RateLimitEntry) WindowEnd() time.Time {
	return e.WindowStart.Add(e.WindowLength)
}

// Expired reports whether the window has elapsed at now.
func (e RateLimitEntry) Expired(now time.Time) bool {
	return !now.Before(e.WindowEnd())
}

// RateLimitDecision is the outcome of a single rate-limit check.
type RateLimitDecision struct {
	Allowed           bool
	Route             string
	Identifier        string
	Count             int
	Limit             int
	RetryAfterSeconds int
	Message           string
}

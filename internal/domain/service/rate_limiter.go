package service

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
)

// RateLimiter enforces fixed-window budgets per identifier and route pattern.
type RateLimiter interface {
	// Check counts one request for the identifier on the path.
	// Paths without a configured limit are always allowed and not counted.
	Check(ctx context.Context, identifier, path string) (*entity.RateLimitDecision, error)

	// Reset clears the identifier's budget on the route pattern that governs the path.
	Reset(ctx context.Context, identifier, path string) error

	// Sweep removes expired entries and reports how many were dropped.
	Sweep(ctx context.Context) (int, error)
}

// RateLimitStore holds fixed-window counters. Hit must be atomic per key.
type RateLimitStore interface {
	// Hit creates or resets an expired entry with count 1, otherwise increments it.
	// The count never grows beyond limit+1.
	Hit(ctx context.Context, key string, window time.Duration, limit int, now time.Time) (*entity.RateLimitEntry, error)

	// Peek returns the live entry for key without counting, or nil when there is none.
	Peek(ctx context.Context, key string, window time.Duration, now time.Time) (*entity.RateLimitEntry, error)

	// Reset removes the entry for key.
	Reset(ctx context.Context, key string) error

	// Sweep removes entries whose window elapsed before now.
	Sweep(ctx context.Context, now time.Time) (int, error)
}

// AccountLockout blocks logins to an email after repeated failures, whichever client sent them.
type AccountLockout interface {
	// Locked reports whether logins to the email are blocked and for how many more seconds.
	Locked(ctx context.Context, email string) (retryAfterSeconds int, locked bool, err error)

	// Fail counts one failed login. lockedNow is true only for the failure that engaged the lock.
	Fail(ctx context.Context, email string) (failures int, lockedNow bool, err error)

	// Clear forgets the failures of the email.
	Clear(ctx context.Context, email string) error
}

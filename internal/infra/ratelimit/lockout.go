package ratelimit

import (
	"context"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/util"
)

// LockoutKey builds the store key that counts failed logins for an email.
func LockoutKey(email string) string {
	return "lockout:" + email
}

type lockout struct {
	store     service.RateLimitStore
	clock     service.Clock
	threshold int
	window    time.Duration
}

// NewLockout counts failed logins per email in a fixed window on the rate-limit store.
// The account stays locked from the threshold-th failure until the window ends.
func NewLockout(cfg *config.Config, store service.RateLimitStore, clock service.Clock) service.AccountLockout {
	if cfg.Auth == nil {
		cfg.ApplyDefaults()
	}

	return &lockout{
		store:     store,
		clock:     clock,
		threshold: cfg.Auth.Lockout.Threshold,
		window:    cfg.Auth.Lockout.Window,
	}
}

func (l *lockout) Locked(ctx context.Context, email string) (int, bool, error) {
	now := l.clock.Now()
	entry, err := l.store.Peek(ctx, LockoutKey(email), l.window, now)
	if err != nil {
		return 0, false, errors.Wrap(err, "read account lockout")
	}
	if entry == nil || entry.Count < l.threshold {
		return 0, false, nil
	}

	return util.CeilSeconds(entry.WindowEnd().Sub(now)), true, nil
}

func (l *lockout) Fail(ctx context.Context, email string) (int, bool, error) {
	entry, err := l.store.Hit(ctx, LockoutKey(email), l.window, l.threshold, l.clock.Now())
	if err != nil {
		return 0, false, errors.Wrap(err, "count failed login")
	}

	return entry.Count, entry.Count == l.threshold, nil
}

func (l *lockout) Clear(ctx context.Context, email string) error {
	return errors.WithStack(l.store.Reset(ctx, LockoutKey(email)))
}

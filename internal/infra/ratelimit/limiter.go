package ratelimit

import (
	"context"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/util"
)

// Key builds the store key for an identifier on a route pattern.
func Key(pattern, identifier string) string {
	return "rl:" + pattern + ":" + identifier
}

type limiter struct {
	registry *Registry
	store    service.RateLimitStore
	clock    service.Clock
}

// NewLimiter creates the fixed-window limiter on top of a store.
func NewLimiter(registry *Registry, store service.RateLimitStore, clock service.Clock) service.RateLimiter {
	return &limiter{registry: registry, store: store, clock: clock}
}

// Check counts one request. A request is rejected once the window count exceeds the limit.
func (l *limiter) Check(ctx context.Context, identifier, path string) (*entity.RateLimitDecision, error) {
	limit, ok := l.registry.Match(path)
	if !ok {
		return &entity.RateLimitDecision{Allowed: true, Identifier: identifier}, nil
	}

	now := l.clock.Now()
	entry, err := l.store.Hit(ctx, Key(limit.Pattern, identifier), limit.Window, limit.MaxRequests, now)
	if err != nil {
		return nil, errors.Wrapf(err, "rate limit hit on %s", limit.Pattern)
	}

	decision := &entity.RateLimitDecision{
		Allowed:    entry.Count <= limit.MaxRequests,
		Route:      limit.Pattern,
		Identifier: identifier,
		Count:      entry.Count,
		Limit:      limit.MaxRequests,
		Message:    limit.Message,
	}
	if !decision.Allowed {
		decision.RetryAfterSeconds = util.CeilSeconds(entry.WindowEnd().Sub(now))
	}

	return decision, nil
}

// Reset clears the identifier's budget on the pattern governing path.
func (l *limiter) Reset(ctx context.Context, identifier, path string) error {
	limit, ok := l.registry.Match(path)
	if !ok {
		return nil
	}

	return errors.WithStack(l.store.Reset(ctx, Key(limit.Pattern, identifier)))
}

// Sweep drops expired entries from the store.
func (l *limiter) Sweep(ctx context.Context) (int, error) {
	return l.store.Sweep(ctx, l.clock.Now())
}

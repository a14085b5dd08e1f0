package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

// hitScript increments the counter and starts the window on the first hit.
// Once the count passes the limit it is left untouched. Returns {count, pttl}.
var hitScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current and tonumber(current) > tonumber(ARGV[2]) then
	return {tonumber(current), redis.call('PTTL', KEYS[1])}
end
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// redisStore shares counters between instances. Windows expire through key TTLs.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a counter table backed by Redis.
func NewRedisStore(client *redis.Client) service.RateLimitStore {
	return &redisStore{client: client}
}

func (s *redisStore) Hit(ctx context.Context, key string, window time.Duration, limit int, now time.Time) (*entity.RateLimitEntry, error) {
	res, err := hitScript.Run(ctx, s.client, []string{key}, window.Milliseconds(), limit).Int64Slice()
	if err != nil {
		return nil, errors.Wrap(err, "redis rate limit script failed")
	}
	if len(res) != 2 {
		return nil, errors.Errorf("unexpected rate limit script reply %v", res)
	}

	remaining := time.Duration(res[1]) * time.Millisecond

	return &entity.RateLimitEntry{
		Count:        int(res[0]),
		WindowStart:  now.Add(remaining - window),
		WindowLength: window,
		Limit:        limit,
	}, nil
}

func (s *redisStore) Peek(ctx context.Context, key string, window time.Duration, now time.Time) (*entity.RateLimitEntry, error) {
	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, key)
	ttlCmd := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, errors.Wrap(err, "failed to read rate limit")
	}

	count, err := getCmd.Int()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rate limit")
	}
	remaining := ttlCmd.Val()
	if remaining <= 0 {
		return nil, nil
	}

	return &entity.RateLimitEntry{
		Count:        count,
		WindowStart:  now.Add(remaining - window),
		WindowLength: window,
	}, nil
}

func (s *redisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to reset rate limit")
	}

	return nil
}

// Sweep is a no-op; Redis expires windows itself.
func (s *redisStore) Sweep(context.Context, time.Time) (int, error) {
	return 0, nil
}

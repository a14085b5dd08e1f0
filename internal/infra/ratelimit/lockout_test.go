package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/util"
)

func newTestLockout(t *testing.T, store service.RateLimitStore) (service.AccountLockout, *util.ManualClock) {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		Lockout: config.LockoutConfig{Threshold: 3, Window: 10 * time.Minute},
	}}
	clock := util.NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	return NewLockout(cfg, store, clock), clock
}

func TestLockout_LocksAtThresholdUntilWindowEnds(t *testing.T) {
	ctx := context.Background()
	l, clock := newTestLockout(t, NewMemoryStore())
	const email = "shopper@example.com"

	for i := 1; i <= 2; i++ {
		failures, lockedNow, err := l.Fail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, i, failures)
		assert.False(t, lockedNow)
	}
	_, locked, err := l.Locked(ctx, email)
	require.NoError(t, err)
	assert.False(t, locked)

	failures, lockedNow, err := l.Fail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, 3, failures)
	assert.True(t, lockedNow)

	_, lockedNow, err = l.Fail(ctx, email)
	require.NoError(t, err)
	assert.False(t, lockedNow, "lock is reported once per window")

	clock.Advance(4 * time.Minute)
	retry, locked, err := l.Locked(ctx, email)
	require.NoError(t, err)
	assert.True(t, locked)
	assert.Equal(t, 360, retry)

	_, locked, err = l.Locked(ctx, "other@example.com")
	require.NoError(t, err)
	assert.False(t, locked)

	clock.Advance(6 * time.Minute)
	_, locked, err = l.Locked(ctx, email)
	require.NoError(t, err)
	assert.False(t, locked)

	failures, _, err = l.Fail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, 1, failures, "a new window starts from zero")
}

func TestLockout_ClearUnlocks(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLockout(t, NewMemoryStore())
	const email = "shopper@example.com"

	for range 3 {
		_, _, err := l.Fail(ctx, email)
		require.NoError(t, err)
	}
	_, locked, err := l.Locked(ctx, email)
	require.NoError(t, err)
	require.True(t, locked)

	require.NoError(t, l.Clear(ctx, email))

	_, locked, err = l.Locked(ctx, email)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestLockout_RedisStore(t *testing.T) {
	ctx := context.Background()
	store, mr := newMiniredisStore(t)
	l, _ := newTestLockout(t, store)
	const email = "shopper@example.com"

	for range 3 {
		_, _, err := l.Fail(ctx, email)
		require.NoError(t, err)
	}

	retry, locked, err := l.Locked(ctx, email)
	require.NoError(t, err)
	assert.True(t, locked)
	assert.Equal(t, 600, retry)
	assert.True(t, mr.Exists(LockoutKey(email)))

	mr.FastForward(10*time.Minute + time.Second)
	_, locked, err = l.Locked(ctx, email)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestMemoryStore_PeekDoesNotCount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entry, err := store.Peek(ctx, "k", time.Minute, now)
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = store.Hit(ctx, "k", time.Minute, 5, now)
	require.NoError(t, err)

	for range 3 {
		entry, err = store.Peek(ctx, "k", time.Minute, now.Add(10*time.Second))
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, 1, entry.Count)
	}
	assert.Equal(t, now.Add(time.Minute), entry.WindowEnd())

	entry, err = store.Peek(ctx, "k", time.Minute, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestRedisStore_PeekReadsRemainingWindow(t *testing.T) {
	ctx := context.Background()
	store, mr := newMiniredisStore(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entry, err := store.Peek(ctx, "k", time.Minute, now)
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = store.Hit(ctx, "k", time.Minute, 5, now)
	require.NoError(t, err)
	_, err = store.Hit(ctx, "k", time.Minute, 5, now)
	require.NoError(t, err)

	mr.FastForward(20 * time.Second)
	entry, err = store.Peek(ctx, "k", time.Minute, now)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 2, entry.Count)
	assert.Equal(t, 40, util.CeilSeconds(entry.WindowEnd().Sub(now)))
}

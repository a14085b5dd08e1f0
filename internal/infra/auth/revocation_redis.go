package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

const (
	revokedTokenKeyPrefix   = "revoked:jti:"
	revokedSubjectKeyPrefix = "revoked:sub:"
)

// redisRevocationStore shares the revocation list between instances. Keys expire on their own.
type redisRevocationStore struct {
	client *redis.Client
	clock  service.Clock
}

// NewRedisRevocationStore creates a revocation list backed by Redis.
func NewRedisRevocationStore(client *redis.Client, clock service.Clock) service.TokenRevocationStore {
	return &redisRevocationStore{client: client, clock: clock}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := until.Sub(s.clock.Now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store revoked token")
	}

	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenKeyPrefix+jti).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check revoked token")
	}

	return n > 0, nil
}

func (s *redisRevocationStore) RevokeSubject(ctx context.Context, subjectID uuid.UUID, before time.Time, ttl time.Duration) error {
	value := strconv.FormatInt(before.UnixMilli(), 10)
	if err := s.client.Set(ctx, revokedSubjectKeyPrefix+subjectID.String(), value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store subject revocation")
	}

	return nil
}

func (s *redisRevocationStore) SubjectRevokedBefore(ctx context.Context, subjectID uuid.UUID) (time.Time, bool, error) {
	raw, err := s.client.Get(ctx, revokedSubjectKeyPrefix+subjectID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "failed to load subject revocation")
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "corrupt subject revocation marker")
	}

	return time.UnixMilli(millis), true, nil
}

// Sweep is a no-op; Redis expires keys itself.
func (s *redisRevocationStore) Sweep(context.Context, time.Time) (int, error) {
	return 0, nil
}

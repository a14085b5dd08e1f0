// Package cache provides the shared Redis client used by the rate limiter and the revocation list.
package cache

import (
	"context"
	"log/slog"
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/domain/lifecycle"
	"gatekeeper/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client. The connection is verified on start and closed on stop.
func New(params Params) (*redis.Client, error) {
	opts, err := Options(params.Config.Redis)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", opts.Addr), slog.Int("db", opts.DB))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// Options converts the config into client options. Addr may also be a redis:// URL.
func Options(cfg *config.RedisConfig) (*redis.Options, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis backend selected but redis.addr is not configured")
	}

	if strings.HasPrefix(cfg.Addr, "redis://") || strings.HasPrefix(cfg.Addr, "rediss://") {
		opts, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse Redis URL")
		}

		return opts, nil
	}

	return &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

// Package cache provides the Redis client used for short-lived state.
package cache

import (
	"context"
	"log/slog"

	"guardian/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the Redis client
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns a client only when transition detection needs
// one. Every-sample detection keeps no state and gets nil.
func NewRedisClient(params ClientParams) (*redis.Client, error) {
	cfg := params.Config
	if cfg.Geofence == nil || cfg.Geofence.Detection != config.DetectionTransition {
		return nil, nil
	}
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, errors.New("redis address is required for transition detection")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Connected to redis", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

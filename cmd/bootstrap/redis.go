package bootstrap

import (
	"context"
	"log/slog"

	"concert-reservation/internal/infra/lock"
	"concert-reservation/internal/infra/redisclient"
	"concert-reservation/internal/pkg/config"
	"concert-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewRedisLock,
			fx.As(new(shared.Locker)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := redisclient.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewRedisLock(client *redis.Client, cfg config.Config, metrics *lock.Metrics, logger *slog.Logger) *lock.RedisLock {
	return lock.NewRedisLock(client,
		lock.WithRetryPolicy(lock.RetryPolicy{
			MaxAttempts: cfg.Lock.RetryAttempts,
			Delay:       cfg.Lock.RetryDelay,
		}),
		lock.WithDefaultTTL(cfg.Lock.DefaultTTL),
		lock.WithMetrics(metrics),
		lock.WithLogger(logger),
	)
}

package bootstrap

import (
	"context"

	"flash-coupon/internal/infra/redisstore"
	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewRedis,
			fx.As(new(redis.UniversalClient)),
		),
		NewAllocationStore,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := redisstore.Connect(cfg.Redis)
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

func NewAllocationStore(client redis.UniversalClient, cfg config.Config) shared.AllocationStore {
	return redisstore.NewAllocationStore(client, cfg.Allocation)
}

package bootstrap

import (
	"context"
	"log/slog"

	"shareit/internal/infra/idempotency"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/shared"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore returns a nil store when no Redis address is configured;
// booking creation then ignores Idempotency-Key.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.IdempotencyStore {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured, idempotency keys disabled")
		return nil
	}
	client := idempotency.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, idempotency store will fail open", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return idempotency.NewRedisStore(client, cfg.Redis.IdempotencyTTL)
}

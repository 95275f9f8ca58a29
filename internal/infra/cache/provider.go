package cache

import (
	"context"
	"log/slog"

	"quickmart/config"
	"quickmart/internal/domain/lifecycle"
	"quickmart/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// CartCacheParams defines the dependencies of the cart cache
type CartCacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCartCache returns the Redis cache when redis.addr is set, otherwise the in-memory one.
func NewCartCache(params CartCacheParams) (repository.CartCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Using in-memory cart cache")

		return NewMemoryCache(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "connect redis %s", cfg.Addr)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Using Redis cart cache", slog.String("addr", cfg.Addr))

	return NewRedisCache(client, cfg.CartTTL, params.Logger), nil
}

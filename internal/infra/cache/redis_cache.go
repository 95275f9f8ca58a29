package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const updatesChannelPrefix = "cart-updates:"

// redisCache stores carts as JSON under cart:<session> and announces changes
// on cart-updates:<session>, so every BFF instance can stream them.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache wraps a connected client.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) repository.CartCache {
	return &redisCache{client: client, ttl: ttl, logger: logger}
}

func cartKey(sessionID uuid.UUID) string {
	return constants.CartKeyPrefix + sessionID.String()
}

func updatesChannel(sessionID uuid.UUID) string {
	return updatesChannelPrefix + sessionID.String()
}

func (c *redisCache) Get(ctx context.Context, sessionID uuid.UUID) (*entity.Cart, error) {
	raw, err := c.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errors.WithStack(domainerrors.ErrCartNotCached)
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get cart")
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, errors.Wrap(err, "decode cached cart")
	}

	return &cart, nil
}

func (c *redisCache) Set(ctx context.Context, sessionID uuid.UUID, cart *entity.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, cartKey(sessionID), payload, c.ttl)
	pipe.Publish(ctx, updatesChannel(sessionID), payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "redis set cart")
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := c.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return errors.Wrap(err, "redis delete cart")
	}

	return nil
}

func (c *redisCache) Subscribe(ctx context.Context, sessionID uuid.UUID) (<-chan *entity.Cart, error) {
	pubsub := c.client.Subscribe(ctx, updatesChannel(sessionID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, errors.Wrap(err, "redis subscribe cart")
	}

	out := make(chan *entity.Cart, 1)

	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var cart entity.Cart
				if err := json.Unmarshal([]byte(msg.Payload), &cart); err != nil {
					c.logger.WarnContext(ctx, "Dropping undecodable cart update",
						slog.String("channel", msg.Channel),
						slog.Any("error", err),
					)

					continue
				}

				offer(out, &cart)
			}
		}
	}()

	return out, nil
}

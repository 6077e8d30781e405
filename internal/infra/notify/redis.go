package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"stock-ledger/internal/pkg/config"
	"stock-ledger/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher is the subset of redis.Cmdable the notifier needs.
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes StockChanged as JSON on one pub/sub channel.
type RedisNotifier struct {
	client  RedisPublisher
	channel string
}

func NewRedisNotifier(client RedisPublisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (n *RedisNotifier) Publish(ctx context.Context, event shared.StockChanged) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal stock event: %w", err)
	}
	if err := n.client.Publish(ctx, n.channel, body).Err(); err != nil {
		return fmt.Errorf("could not publish to redis channel %s: %w", n.channel, err)
	}
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

type EventRepository interface {
	Publish(ctx context.Context, event entity.MoveEvent) error
	Subscribe(ctx context.Context, gameID string) *redis.PubSub
}

type redisEvents struct {
	client *redis.Client
	prefix string
}

// NewEventRepository - publishes move events on "<prefix>:<gameID>" channels.
func NewEventRepository(client *redis.Client, prefix string) EventRepository {
	return &redisEvents{
		client: client,
		prefix: prefix,
	}
}

func (that *redisEvents) Publish(ctx context.Context, event entity.MoveEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal move event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel(event.GameID), eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish move event: %w", err)
	}

	return nil
}

func (that *redisEvents) Subscribe(ctx context.Context, gameID string) *redis.PubSub {
	return that.client.Subscribe(ctx, that.channel(gameID))
}

func (that *redisEvents) channel(gameID string) string {
	return that.prefix + ":" + gameID
}

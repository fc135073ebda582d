package store

import (
	"context"
	"encoding/json"

	"github.com/coolurl/coolurl/internal/analytics"
	"github.com/redis/go-redis/v9"
)

// Redis persists raw lifecycle events as JSON lines in per-topic Redis lists.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a new Redis-backed analytics store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{
		client: client,
		prefix: "events:",
	}
}

func (r *Redis) SaveURLCreated(ctx context.Context, event *analytics.URLCreatedEvent) error {
	return r.push(ctx, analytics.TopicURLCreated, event)
}

func (r *Redis) SaveURLClicked(ctx context.Context, event *analytics.URLClickedEvent) error {
	return r.push(ctx, analytics.TopicURLClicked, event)
}

func (r *Redis) SaveURLDeleted(ctx context.Context, event *analytics.URLDeletedEvent) error {
	return r.push(ctx, analytics.TopicURLDeleted, event)
}

func (r *Redis) push(ctx context.Context, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.client.RPush(ctx, r.prefix+topic, payload).Err()
}

package store

import (
	"context"
	"fmt"

	"github.com/coolurl/coolurl/internal/ratelimit"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimitRedisStore is a Redis implementation of ratelimit.Store. Entries
// for a client hash live in one sorted set, scored by their timestamp, so
// eviction is a single range delete.
type RateLimitRedisStore struct {
	client *redis.Client
	prefix string
}

// NewRateLimitRedisStore creates a new Redis-backed rate limit entry store.
func NewRateLimitRedisStore(client *redis.Client) *RateLimitRedisStore {
	return &RateLimitRedisStore{
		client: client,
		prefix: "ratelimit:",
	}
}

func (s *RateLimitRedisStore) Entries(ctx context.Context, clientHash string) ([]ratelimit.Entry, error) {
	members, err := s.client.ZRangeWithScores(ctx, s.prefix+clientHash, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]ratelimit.Entry, 0, len(members))
	for _, member := range members {
		entries = append(entries, ratelimit.Entry{
			ClientHash: clientHash,
			When:       int64(member.Score),
		})
	}

	return entries, nil
}

func (s *RateLimitRedisStore) Insert(ctx context.Context, entry ratelimit.Entry) error {
	// Members must be distinct even when two requests land on the same
	// millisecond, so each carries a fresh UUID.
	member := fmt.Sprintf("%d:%s", entry.When, uuid.NewString())

	return s.client.ZAdd(ctx, s.prefix+entry.ClientHash, redis.Z{
		Score:  float64(entry.When),
		Member: member,
	}).Err()
}

func (s *RateLimitRedisStore) EvictBefore(ctx context.Context, clientHash string, cutoff int64) error {
	max := fmt.Sprintf("(%d", cutoff)

	return s.client.ZRemRangeByScore(ctx, s.prefix+clientHash, "-inf", max).Err()
}

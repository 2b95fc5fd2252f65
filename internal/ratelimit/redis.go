package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps fixed-window counters in Redis, so multiple instances
// of the service share one window per client.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a store backed by the given client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Incr bumps the counter and pins its expiry to the window boundary.
// The first increment of a window sets the TTL; later increments reuse it.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	pipe := s.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	count := incr.Val()
	now := time.Now()

	if count == 1 || ttl.Val() < 0 {
		if err := s.rdb.Expire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		return count, now.Add(window), nil
	}

	return count, now.Add(ttl.Val()), nil
}

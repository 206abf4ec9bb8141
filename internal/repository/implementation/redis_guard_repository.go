package implementation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGuardRepository backs one-time milestone keys with Redis so the
// disclosure and lead-save guards survive process restarts. SetNX gives
// the exactly-one-winner semantics MarkOnce requires.
type RedisGuardRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuardRepository(redisURL string, ttl time.Duration) (*RedisGuardRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisGuardRepository{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

func (r *RedisGuardRepository) MarkOnce(ctx context.Context, key string) (bool, error) {
	return r.client.SetNX(ctx, key, "1", r.ttl).Result()
}

func (r *RedisGuardRepository) Seen(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisGuardRepository) Close() error {
	return r.client.Close()
}

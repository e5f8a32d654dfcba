package storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "burger_club:"

// Redis is a KV backed by a Redis server. Keys are namespaced under
// "burger_club:" so the widget's two keys do not collide with other users
// of the instance.
type Redis struct {
	rdb *redis.Client
}

// NewRedis parses redisURL, connects and verifies the connection.
func NewRedis(redisURL string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{rdb: rdb}, nil
}

func (r *Redis) Get(key string) (string, bool, error) {
	ctx := context.Background()
	val, err := r.rdb.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return val, true, nil
}

func (r *Redis) Set(key, value string) error {
	ctx := context.Background()
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

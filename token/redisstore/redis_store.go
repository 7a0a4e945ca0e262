package redisstore

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
	"github.com/jrsteele09/go-photo-session/token"
	"github.com/redis/go-redis/v9"
)

var _ token.Store = (*RedisStore)(nil)

// RedisStore keeps the token under a single Redis key with no TTL.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

func New(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = token.DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Get(ctx context.Context) (string, error) {
	result, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrTokenNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return result, nil
}

func (r *RedisStore) Set(ctx context.Context, t string) error {
	if err := r.client.Set(ctx, r.key, t, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"tg_dealshell/internal/domain"
	"tg_dealshell/pkg/errcodes"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errNotFound()
		}

		return "", domain.WrapError(err, errcodes.CacheUnavailable, "redis get")
	}

	return v, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return domain.WrapError(err, errcodes.CacheUnavailable, "redis ping")
	}

	return nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return domain.WrapError(err, errcodes.CacheUnavailable, "redis set")
	}

	return nil
}

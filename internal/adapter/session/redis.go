package session

import (
	"context"
	"errors"
	"time"

	domain "buffrlend-backend/internal/domain/session"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

var _ domain.Store = (*RedisStore)(nil)

type RedisStore struct{ rdb redis.Cmdable }

func NewRedisStore(rdb redis.Cmdable) *RedisStore { return &RedisStore{rdb: rdb} }

func key(token string) string { return keyPrefix + token }

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	v, err := s.rdb.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	return v, err
}

func (s *RedisStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(token), userID, ttl).Err()
}

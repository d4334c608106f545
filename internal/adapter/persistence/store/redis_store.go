package store

import (
	"context"
	"errors"

	"estimate_app/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each document as a plain string value under prefix+key.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
}

var _ interfaces.IRecordStore = (*RedisStore)(nil)

func NewRedisStore(rdb redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, payload []byte) error {
	return s.rdb.Set(ctx, s.prefix+key, payload, 0).Err()
}

package profile

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "profile:"

// RedisStore keeps the picture under profile:{user_id}.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore returns a store backed by rdb.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func redisKey(userID int64) string {
	return redisKeyPrefix + strconv.FormatInt(userID, 10)
}

// PutProfileAttribute sets the key of userID without expiry, replacing any previous value.
func (s *RedisStore) PutProfileAttribute(ctx context.Context, userID int64, value string) error {
	if err := s.rdb.Set(ctx, redisKey(userID), value, 0).Err(); err != nil {
		return unavailable("put profile attribute", userID, err)
	}
	return nil
}

// GetProfileAttribute reads the key of userID. A missing key is reported as not found.
func (s *RedisStore) GetProfileAttribute(ctx context.Context, userID int64) (string, bool, error) {
	v, err := s.rdb.Get(ctx, redisKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("get profile attribute", userID, err)
	}
	return v, true, nil
}

// Ping checks that the Redis server answers.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

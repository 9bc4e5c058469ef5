package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:%s"

// RedisStore is a Store backed by Redis with a sliding expiration: reading a
// session refreshes its TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Store persisting sessions in Redis with the given TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(keyPrefix, sessionID)
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (uint, bool, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		// A corrupt entry is treated as no session rather than a hard failure.
		_ = s.client.Del(ctx, sessionKey(sessionID)).Err()
		return 0, false, nil
	}

	// Sliding expiration: active clients stay logged in.
	_ = s.client.Expire(ctx, sessionKey(sessionID), s.ttl).Err()

	return uint(userID), true, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, userID uint) error {
	return s.client.Set(ctx, sessionKey(sessionID), strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

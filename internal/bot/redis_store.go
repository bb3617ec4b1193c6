package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so multiple processes can share them.
// Unlike MemoryStore it applies a TTL, so abandoned sessions eventually
// disappear from the shared backend.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Session, bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("bot: redis get: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, false, fmt.Errorf("bot: decode session: %w", err)
	}
	return &sess, true, nil
}

func (s *RedisStore) Put(ctx context.Context, sess *Session) error {
	sess.touch()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("bot: encode session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.Key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("bot: redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) (*Session, error) {
	fresh := NewSession(key)
	if err := s.Put(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

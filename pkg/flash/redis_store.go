package flash

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a Redis client. Flashed payloads are
// written with a TTL so abandoned sessions do not leak keys; Get uses GETDEL
// to enforce read-once semantics atomically.
//
// Redis has no notion of request cycles, so a payload becomes readable as
// soon as it is written. The per-request bag lifecycle still yields the
// intended behavior: a bag loads before it adds, so payloads flashed while
// handling a request are only observed by the bag of a later request.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// DefaultFlashTTL bounds how long an unread flash payload survives in Redis.
const DefaultFlashTTL = 15 * time.Minute

// NewRedisStore creates a Redis-backed flash store. A non-positive ttl falls
// back to DefaultFlashTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultFlashTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get consumes the payload flashed for key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoFlashData
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Flash stores the payload for key, overwriting any prior value.
func (s *RedisStore) Flash(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

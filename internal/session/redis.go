package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("session")

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed session Store. Tokens live under
// "session:<token>" keys so they can be inspected and bulk-expired with
// ordinary Redis tooling.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *redisStore) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "SessionStore.Save")
	defer span.End()

	return s.rdb.Set(ctx, sessionKey(token), userID, ttl).Err()
}

func (s *redisStore) Lookup(ctx context.Context, token string, ttl time.Duration) (int64, bool, error) {
	ctx, span := tracer.Start(ctx, "SessionStore.Lookup")
	defer span.End()

	key := sessionKey(token)
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// A corrupt value is unusable; treat the session as gone.
		return 0, false, nil
	}

	if ttl > 0 {
		// Idle timeout: each resolved request pushes the deadline out.
		if err := s.rdb.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, false, err
		}
	}
	return userID, true, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	ctx, span := tracer.Start(ctx, "SessionStore.Delete")
	defer span.End()

	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skema/internal/config"
	"skema/internal/domain"
	"skema/internal/port"
)

// NewClient opens a Redis connection pool and verifies it with a ping.
func NewClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

type redisStore struct {
	client   *redis.Client
	maxTurns int
	ttl      time.Duration
}

// NewStore creates a Redis-backed SessionStore holding at most maxTurns turns
// per session. A non-zero ttl refreshes the session key's expiry on every
// append.
func NewStore(client *redis.Client, maxTurns int, ttl time.Duration) port.SessionStore {
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &redisStore{client: client, maxTurns: maxTurns, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "skema:session:" + sessionID
}

func (s *redisStore) Get(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	items, err := s.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redisStore.Get: %w", err)
	}

	turns := make([]domain.Turn, 0, len(items))
	for _, item := range items {
		var turn domain.Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("redisStore.Get: decoding turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *redisStore) Append(ctx context.Context, sessionID string, turn domain.Turn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("redisStore.Append: encoding turn: %w", err)
	}

	key := sessionKey(sessionID)

	// RPUSH and LTRIM run as one transaction so concurrent appends never
	// leave the list over capacity.
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, int64(-s.maxTurns), -1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redisStore.Append: %w", err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redisStore.Clear: %w", err)
	}
	return nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStorage persists auth state in Redis so sessions survive restarts
// and are shared between instances.
type RedisStorage struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStorage stores entries under prefix with the given lifetime.
func NewRedisStorage(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *RedisStorage) key(sessionID string) string {
	return r.prefix + ":" + sessionID
}

func (r *RedisStorage) Load(ctx context.Context, sessionID string) (AuthState, error) {
	bs, err := r.rdb.Get(ctx, r.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return AuthState{}, nil
	}
	if err != nil {
		return AuthState{}, fmt.Errorf("load session: %w", err)
	}
	var st AuthState
	if err := json.Unmarshal(bs, &st); err != nil {
		return AuthState{}, fmt.Errorf("decode session: %w", err)
	}
	return st, nil
}

func (r *RedisStorage) Save(ctx context.Context, sessionID string, st AuthState) error {
	bs, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(sessionID), bs, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *RedisStorage) Clear(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

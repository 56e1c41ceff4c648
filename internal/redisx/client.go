package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/kv"
	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func Exists(ctx context.Context, rdb redis.Cmdable, key string) (bool, error) {
	n, err := rdb.Exists(ctx, key).Result()
	return n > 0, err
}

// MarkOnce sets key if absent and reports whether this call set it.
func MarkOnce(ctx context.Context, rdb redis.Cmdable, key string, ttl time.Duration) (bool, error) {
	return rdb.SetNX(ctx, key, "1", ttl).Result()
}

// Store is a kv.Store over Redis strings. Every write refreshes the TTL so an
// active session never expires under its owner.
type Store struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ kv.Store = (*Store)(nil)

func NewStore(rdb redis.Cmdable, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = TTLSession
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Session scopes a Store to one session id.
func Session(s kv.Store, sessionID string) kv.Store {
	return kv.Prefixed{Store: s, Prefix: fmt.Sprintf(KeySessionPrefix, sessionID)}
}

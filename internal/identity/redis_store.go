package identity

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "luxuria:session:"

// RedisStore persists sessions in Redis so multiple API instances can share them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds connection settings for the session store.
type RedisConfig struct {
	Addr     string
	Password string
	TLS      bool
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(cfg RedisConfig, ttl time.Duration) *RedisStore {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}
}

// NewRedisStoreWithClient allows injecting a client, used with miniredis in tests.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Put stores or refreshes a session with the configured TTL.
func (s *RedisStore) Put(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("identity: marshal session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("identity: store session: %w", err)
	}
	return nil
}

// Get retrieves a live session by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("identity: load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("identity: unmarshal session: %w", err)
	}
	return &sess, nil
}

// Delete removes a session outright.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("identity: delete session: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)

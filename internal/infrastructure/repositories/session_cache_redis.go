package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/willcheung/robinhood-export-function/domain"
)

// SessionCacheRedis implements domain.SessionCache using Redis
type SessionCacheRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSessionCache creates a new Redis-backed session cache. A zero ttl
// keeps records until explicitly deleted.
func NewRedisSessionCache(client *redis.Client, ttl time.Duration) domain.SessionCache {
	return &SessionCacheRedis{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

// Get implements domain.SessionCache
func (r *SessionCacheRedis) Get(ctx context.Context, username string) (*domain.SessionRecord, error) {
	key := r.prefix + username
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	var record domain.SessionRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session record: %w", err)
	}

	return &record, nil
}

// Put implements domain.SessionCache
func (r *SessionCacheRedis) Put(ctx context.Context, record *domain.SessionRecord) error {
	key := r.prefix + record.Username
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// Delete implements domain.SessionCache
func (r *SessionCacheRedis) Delete(ctx context.Context, username string) error {
	key := r.prefix + username
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/homevista/homevista_backend/internal/core/domain"
	portsrepo "github.com/homevista/homevista_backend/internal/core/ports/repositories"
)

const propertyKeyPrefix = "property:"

// RedisPropertyCache caches property lookups in Redis under a fixed TTL.
// Entries are stored as JSON; a miss is reported as (nil, nil) so callers
// fall through to the repository.
type RedisPropertyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPropertyCache creates a property cache backed by the given client.
func NewRedisPropertyCache(client *redis.Client, ttl time.Duration) *RedisPropertyCache {
	return &RedisPropertyCache{client: client, ttl: ttl}
}

// Ensure RedisPropertyCache implements portsrepo.PropertyCache
var _ portsrepo.PropertyCache = (*RedisPropertyCache)(nil)

func (c *RedisPropertyCache) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	payload, err := c.client.Get(ctx, propertyKeyPrefix+propertyID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read property %s from cache: %w", propertyID, err)
	}

	var property domain.Property
	if err := json.Unmarshal(payload, &property); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it
		return nil, fmt.Errorf("failed to decode cached property %s: %w", propertyID, err)
	}
	return &property, nil
}

func (c *RedisPropertyCache) SetProperty(ctx context.Context, property domain.Property) error {
	payload, err := json.Marshal(property)
	if err != nil {
		return fmt.Errorf("failed to encode property %s for cache: %w", property.PropertyID, err)
	}

	if err := c.client.Set(ctx, propertyKeyPrefix+property.PropertyID, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write property %s to cache: %w", property.PropertyID, err)
	}
	return nil
}

func (c *RedisPropertyCache) InvalidateProperty(ctx context.Context, propertyID string) error {
	if err := c.client.Del(ctx, propertyKeyPrefix+propertyID).Err(); err != nil {
		return fmt.Errorf("failed to invalidate property %s in cache: %w", propertyID, err)
	}
	return nil
}

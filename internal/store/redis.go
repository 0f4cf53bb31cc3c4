package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a best-effort JSON cache over redis. All methods are nil-safe so
// the API keeps working when redis is unreachable or not configured.
type Cache struct {
	Client *redis.Client
}

// NewCache connects to redis with short timeouts.
func NewCache(addr string) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Cache{Client: client}
}

// Healthy verifies redis connectivity.
func (c *Cache) Healthy(ctx context.Context) bool {
	if c == nil || c.Client == nil {
		return false
	}
	return c.Client.Ping(ctx).Err() == nil
}

// GetJSON unmarshals a cached value into dest, reporting whether it was
// found. Errors are swallowed: a cache miss and a cache failure look the
// same to the caller.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.Client == nil {
		return false
	}
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores a value with a TTL, best-effort.
func (c *Cache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	if c == nil || c.Client == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	c.Client.Set(ctx, key, raw, ttl)
}

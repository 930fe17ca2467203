package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLListings = 30 * time.Second // listing lists churn constantly
	TTLListing  = 2 * time.Minute  // single listing detail
	TTLProfile  = 10 * time.Minute // display names rarely change
	TTLDefault  = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixListing  = "listing:"
	PrefixListings = "listings:"
	PrefixProfile  = "profile:"
)

// ErrMiss is returned when a key is not in the cache
var ErrMiss = errors.New("cache miss")

// Service is the Redis cache interface used by the services layer
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetListing(ctx context.Context, listingID string, dest interface{}) error
	SetListing(ctx context.Context, listingID string, data interface{}) error
	InvalidateListing(ctx context.Context, listingID string) error

	GetListingPage(ctx context.Context, pageKey string, dest interface{}) error
	SetListingPage(ctx context.Context, pageKey string, data interface{}) error
	InvalidateListingPages(ctx context.Context) error

	GetProfileName(ctx context.Context, profileID string) (string, error)
	SetProfileName(ctx context.Context, profileID, name string) error
	InvalidateProfile(ctx context.Context, profileID string) error

	IsAvailable() bool
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a Redis-backed cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	if c.client == nil {
		return false
	}
	return c.client.Ping(context.Background()).Err() == nil
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) GetListing(ctx context.Context, listingID string, dest interface{}) error {
	return c.Get(ctx, PrefixListing+listingID, dest)
}

func (c *redisCache) SetListing(ctx context.Context, listingID string, data interface{}) error {
	return c.Set(ctx, PrefixListing+listingID, data, TTLListing)
}

func (c *redisCache) InvalidateListing(ctx context.Context, listingID string) error {
	return c.Delete(ctx, PrefixListing+listingID)
}

func (c *redisCache) GetListingPage(ctx context.Context, pageKey string, dest interface{}) error {
	return c.Get(ctx, PrefixListings+pageKey, dest)
}

func (c *redisCache) SetListingPage(ctx context.Context, pageKey string, data interface{}) error {
	return c.Set(ctx, PrefixListings+pageKey, data, TTLListings)
}

// InvalidateListingPages drops all cached listing pages.
// SCAN instead of KEYS so a big keyspace does not block Redis.
func (c *redisCache) InvalidateListingPages(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, PrefixListings+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan listing pages: %w", err)
	}
	return c.Delete(ctx, keys...)
}

func (c *redisCache) GetProfileName(ctx context.Context, profileID string) (string, error) {
	name, err := c.client.Get(ctx, PrefixProfile+profileID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return "", err
	}
	return name, nil
}

func (c *redisCache) SetProfileName(ctx context.Context, profileID, name string) error {
	return c.client.Set(ctx, PrefixProfile+profileID, name, TTLProfile).Err()
}

func (c *redisCache) InvalidateProfile(ctx context.Context, profileID string) error {
	return c.Delete(ctx, PrefixProfile+profileID)
}

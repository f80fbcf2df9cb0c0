package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client is a thin catalog cache over Redis. Product list and detail
// responses are stored as JSON under a short TTL and dropped whenever the
// catalog mutates.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient creates a new Redis client and verifies connectivity.
func NewClient(addr, password string, db int, ttl time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// ProductoKey is the cache key for a single product.
func ProductoKey(id int64) string {
	return fmt.Sprintf("catalog:producto:%d", id)
}

// ProductoListKey is the cache key for a product listing, per category
// filter. categoriaID nil means the unfiltered listing.
func ProductoListKey(categoriaID *int64) string {
	if categoriaID == nil {
		return "catalog:productos:all"
	}
	return fmt.Sprintf("catalog:productos:cat:%d", *categoriaID)
}

// GetJSON loads a cached value into dest. Returns false on miss.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a value under the configured TTL.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// InvalidateProducto drops the cached entries a product mutation touches:
// the product itself and every listing.
func (c *Client) InvalidateProducto(ctx context.Context, id int64) error {
	if err := c.rdb.Del(ctx, ProductoKey(id)).Err(); err != nil {
		return err
	}
	return c.InvalidateListings(ctx)
}

// InvalidateListings drops every cached product listing.
func (c *Client) InvalidateListings(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "catalog:productos:*", 100).Iterator()
	keys := []string{}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

package redis

import (
	"context"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"
)

// Client wraps a go-redis client whose handle can be replaced in place
// after a transient connectivity failure. The handle is guarded by a
// read-write mutex and a generation counter, so concurrent message
// handlers sharing the connection cannot clobber each other's replacement.
type Client struct {
	url string

	mu         sync.RWMutex
	rdb        *goredis.Client
	generation uint64
}

// NewClient creates a new Redis client from a URL (e.g., "redis://localhost:6379").
func NewClient(redisURL string) (*Client, error) {
	rdb, err := dial(redisURL)
	if err != nil {
		return nil, err
	}
	return &Client{url: redisURL, rdb: rdb}, nil
}

func dial(redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	// Retries happen one level up via the reconnect discipline; the
	// driver must not add its own.
	opts.MaxRetries = -1

	rdb := goredis.NewClient(opts)
	rdb.AddHook(&MetricsHook{})
	return rdb, nil
}

// current returns the active handle together with its generation. Callers
// pass the generation back to Reconnect so a swap that already happened is
// not repeated.
func (c *Client) current() (*goredis.Client, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rdb, c.generation
}

// Reconnect replaces the handle with a freshly dialed client using the
// same configured URL. If the handle has already been swapped since the
// caller observed it, Reconnect is a no-op.
func (c *Client) Reconnect(observed uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != observed {
		return nil
	}

	fresh, err := dial(c.url)
	if err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}

	old := c.rdb
	c.rdb = fresh
	c.generation++
	go func() { _ = old.Close() }()

	return nil
}

// Ping verifies the Redis connection.
func (c *Client) Ping(ctx context.Context) error {
	rdb, _ := c.current()
	return rdb.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rdb.Close()
}

// Package cache stores ladder results in Redis, keyed by dictionary
// fingerprint and normalized query, and collapses concurrent identical
// misses into one search.
//
// Both found ladders and "no ladder" answers are cached: for a fixed
// dictionary the answer to a query never changes. Validation failures are
// never cached. Redis failures degrade to a miss and are logged.
//
// A shared search runs detached from the cancellation of whichever caller
// started it, bounded by its own timeout. Each caller still stops waiting
// when its own context is done.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wordzzule/ladder"
	"github.com/katalvlaran/wordzzule/logging"
	"github.com/katalvlaran/wordzzule/metrics"
)

const (
	defaultPrefix         = "wordzzule:"
	defaultComputeTimeout = 30 * time.Second
)

// Entry is the stored form of one answer.
type Entry struct {
	Ladder ladder.Ladder `json:"ladder,omitempty"`
	Found  bool          `json:"found"`
}

// Cache is a Redis-backed ladder result cache. Safe for concurrent use.
type Cache struct {
	client  *backend.Client
	prefix  string
	ttl     time.Duration
	timeout time.Duration
	group   singleflight.Group
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the expiration of cached answers. 0 keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithComputeTimeout bounds a shared search. 0 leaves it unbounded.
func WithComputeTimeout(d time.Duration) Option {
	return func(c *Cache) { c.timeout = d }
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

// WithLogger sets the logger used for degraded Redis operations.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records hit/miss/error counts.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Cache) { c.metrics = m }
}

// New creates a cache connected to the Redis server at address.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix:  defaultPrefix,
		timeout: defaultComputeTimeout,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "ladder-cache")

	return c
}

// Ping verifies the connection.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Key returns the Redis key for a normalized query under a dictionary.
func (c *Cache) Key(fingerprint, start, end string) string {
	return fmt.Sprintf("%sladder:%s:%s:%s", c.prefix, fingerprint, start, end)
}

// Get looks up a stored answer. Redis failures are returned as errors,
// a missing key as ok == false.
func (c *Cache) Get(ctx context.Context, key string) (Entry, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, backend.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, false, fmt.Errorf("cache decode %s: %w", key, err)
	}

	return e, true, nil
}

// Set stores an answer with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

// GetOrCompute returns the cached answer for the query, or runs compute
// once per key across concurrent callers and stores its answer.
// hit reports whether the answer came from Redis. A cached "no ladder"
// answer is returned as ladder.ErrNotFound. The returned ladder is a
// fresh copy owned by the caller.
//
// compute receives a context that keeps ctx's values but not its
// cancellation. A caller whose ctx ends gets ctx.Err() while the search
// keeps running for the others.
func (c *Cache) GetOrCompute(
	ctx context.Context,
	fingerprint, start, end string,
	compute func(context.Context) (ladder.Ladder, error),
) (l ladder.Ladder, hit bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	key := c.Key(fingerprint, start, end)
	if e, ok := c.lookup(ctx, key); ok {
		l, err = e.answer()
		return l, true, err
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		shared, cancel := c.detach(ctx)
		defer cancel()

		res, err := compute(shared)
		switch {
		case err == nil:
			c.store(shared, key, Entry{Ladder: res, Found: true})
		case errors.Is(err, ladder.ErrNotFound):
			c.store(shared, key, Entry{})
		}
		return res, err
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, false, r.Err
		}
		return append(ladder.Ladder(nil), r.Val.(ladder.Ladder)...), false, nil
	}
}

// detach strips ctx's cancellation and applies the compute timeout.
func (c *Cache) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	shared := context.WithoutCancel(ctx)
	if c.timeout <= 0 {
		return shared, func() {}
	}

	return context.WithTimeout(shared, c.timeout)
}

// Invalidate removes every answer stored for a dictionary fingerprint and
// returns the number of keys deleted.
func (c *Cache) Invalidate(ctx context.Context, fingerprint string) (int64, error) {
	pattern := c.prefix + "ladder:" + fingerprint + ":*"
	var deleted int64
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, fmt.Errorf("deleting key %s: %w", iter.Val(), err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scanning pattern %s: %w", pattern, err)
	}

	return deleted, nil
}

// lookup wraps Get with logging and hit/miss accounting.
func (c *Cache) lookup(ctx context.Context, key string) (Entry, bool) {
	e, ok, err := c.Get(ctx, key)
	switch {
	case err != nil:
		c.logger.Warn("cache lookup failed", "key", key, "error", err)
		c.metrics.ObserveCache(metrics.CacheError)
	case ok:
		c.metrics.ObserveCache(metrics.CacheHit)
	default:
		c.metrics.ObserveCache(metrics.CacheMiss)
	}

	return e, ok
}

// store writes an answer, logging instead of failing.
func (c *Cache) store(ctx context.Context, key string, e Entry) {
	if err := c.Set(ctx, key, e); err != nil {
		c.logger.Warn("cache store failed", "key", key, "error", err)
	}
}

// answer converts a stored entry back into Solve's return shape.
func (e Entry) answer() (ladder.Ladder, error) {
	if !e.Found {
		return nil, ladder.ErrNotFound
	}

	return append(ladder.Ladder(nil), e.Ladder...), nil
}

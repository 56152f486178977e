package cache

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/core"
)

var (
	// ErrNotFound is returned when a cache entry is not found
	ErrNotFound = errors.New("cache entry not found")
)

// MemoryCache is an in-memory implementation of the CacheRepository
// interface backed by go-cache.
type MemoryCache struct {
	entries *gocache.Cache
	logger  *zap.Logger
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(logger *zap.Logger, cleanupFreq time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: gocache.New(gocache.NoExpiration, cleanupFreq),
		logger:  logger,
	}
}

// Get retrieves a cached entry by text hash
func (c *MemoryCache) Get(ctx context.Context, textHash string) (*core.CacheEntry, error) {
	value, ok := c.entries.Get(textHash)
	if !ok {
		return nil, ErrNotFound
	}

	entry, ok := value.(*core.CacheEntry)
	if !ok {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Set stores a cache entry, expiring at the entry's ExpiresAt
func (c *MemoryCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	c.entries.Set(entry.TextHash, entry, ttl)
	return nil
}

// Delete removes a cache entry
func (c *MemoryCache) Delete(ctx context.Context, textHash string) error {
	c.entries.Delete(textHash)
	return nil
}

// Cleanup removes expired entries
func (c *MemoryCache) Cleanup(ctx context.Context) error {
	before := c.entries.ItemCount()
	c.entries.DeleteExpired()
	c.logger.Debug("Cleaned up expired cache entries",
		zap.Int("expired_count", before-c.entries.ItemCount()))
	return nil
}

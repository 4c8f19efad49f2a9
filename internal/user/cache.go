package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/kingdomroll/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string       `json:"version"`
	User     *domain.User `json:"user"`
	CachedAt time.Time    `json:"cached_at"`
}

// userCache provides an in-memory LRU cache for user lookups by Discord ID,
// with time-based expiration and version-based invalidation.
type userCache struct {
	lru *expirable.LRU[string, *cachedUserEntry]
}

func newUserCache(size int, ttl time.Duration) *userCache {
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](size, nil, ttl),
	}
}

// Get retrieves a user from the cache. Entries with a mismatched schema
// version are removed and reported as a miss.
func (c *userCache) Get(discordID string) (*domain.User, bool) {
	entry, found := c.lru.Get(discordID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(discordID)
		return nil, false
	}
	return entry.User, true
}

// Set stores a user in the cache with the current schema version.
func (c *userCache) Set(discordID string, user *domain.User) {
	c.lru.Add(discordID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a user from the cache after a write.
func (c *userCache) Invalidate(discordID string) {
	c.lru.Remove(discordID)
}

// Clear removes all entries from the cache.
func (c *userCache) Clear() {
	c.lru.Purge()
}

// Len returns the number of live cache entries.
func (c *userCache) Len() int {
	return c.lru.Len()
}

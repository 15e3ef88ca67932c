package feed

import (
	"sync"
	"time"
)

// Cache keeps normalized feed documents for a bounded short interval so
// repeated requests do not hammer the upstream source. Entries are keyed
// strictly on the exact feed URL; responses for different URLs are never
// merged.
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	data      *FeedData
	fetchedAt time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cache) Get(url string) (*FeedData, bool) {
	c.mu.RLock()
	entry, ok := c.entries[url]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.fetchedAt) > c.ttl {
		c.mu.Lock()
		if stale, ok := c.entries[url]; ok && c.now().Sub(stale.fetchedAt) > c.ttl {
			delete(c.entries, url)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.data, true
}

func (c *Cache) Set(url string, data *FeedData) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Opportunistic sweep keeps the map bounded for one-off URLs
	for key, entry := range c.entries {
		if c.now().Sub(entry.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
	}

	c.entries[url] = cacheEntry{data: data, fetchedAt: c.now()}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

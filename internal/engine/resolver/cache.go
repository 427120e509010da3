package resolver

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modres/internal/core/domain"
)

const cacheShards = 32

// Cache memoizes resolved paths by lookup key. Entries are never evicted or overwritten.
type Cache struct {
	shards [cacheShards]cacheShard
}

type cacheShard struct {
	mu      sync.RWMutex
	entries map[string]domain.ResolvedPath
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i].entries = make(map[string]domain.ResolvedPath)
	}
	return c
}

// Get returns the path stored under key.
func (c *Cache) Get(key string) (domain.ResolvedPath, bool) {
	s := c.shard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.entries[key]
	return p, ok
}

// Put stores p under key unless key is already present, and returns the stored value.
func (c *Cache) Put(key string, p domain.ResolvedPath) domain.ResolvedPath {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[key]; ok {
		return existing
	}
	s.entries[key] = p
	return p
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

func (c *Cache) shard(key string) *cacheShard {
	return &c.shards[xxhash.Sum64String(key)%cacheShards]
}

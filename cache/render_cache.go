// Package cache memoizes rendered SQL text keyed by query fingerprint.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// RenderCache is an LRU of dialect-specific SQL text keyed by a uint64
// fingerprint of (dialect, canonical text). Only text is cached: parameter
// values belong to each query instance, not to the shape of its SQL.
type RenderCache struct {
	cache *lru.Cache[uint64, string]
	mu    sync.RWMutex
}

func NewRenderCache(size int) *RenderCache {
	cache, _ := lru.New[uint64, string](size)
	return &RenderCache{cache: cache}
}

func (c *RenderCache) Get(key uint64) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Get(key)
}

func (c *RenderCache) Set(key uint64, sql string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, sql)
}

// Len reports the number of cached entries.
func (c *RenderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

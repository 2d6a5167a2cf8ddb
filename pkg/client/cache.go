package client

import (
	"sync"
)

// QueryCache holds the last fetched value per endpoint key so views render
// instantly while a refetch runs. Optimistic writes snapshot the previous
// value, letting a failed mutation roll back to exactly what was on screen.
type QueryCache struct {
	mu        sync.RWMutex
	entries   map[string]any
	snapshots map[string]any
}

func NewQueryCache() *QueryCache {
	return &QueryCache{
		entries:   make(map[string]any),
		snapshots: make(map[string]any),
	}
}

func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *QueryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	delete(c.snapshots, key)
}

// SetOptimistic stores value under key while remembering what was there
// before. A later Set or Commit discards the snapshot; Rollback restores it.
func (c *QueryCache) SetOptimistic(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, pending := c.snapshots[key]; !pending {
		if prev, ok := c.entries[key]; ok {
			c.snapshots[key] = prev
		} else {
			c.snapshots[key] = nil
		}
	}
	c.entries[key] = value
}

// Rollback restores the value captured by the earliest un-committed
// SetOptimistic for key. It is a no-op when nothing is pending.
func (c *QueryCache) Rollback(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, pending := c.snapshots[key]
	if !pending {
		return
	}
	delete(c.snapshots, key)
	if prev == nil {
		delete(c.entries, key)
		return
	}
	c.entries[key] = prev
}

// Commit drops the rollback snapshot for key, keeping the optimistic value.
func (c *QueryCache) Commit(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, key)
}

func (c *QueryCache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		delete(c.snapshots, key)
	}
}

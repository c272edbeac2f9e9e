package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture path to a decoded image.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache shared by render workers.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Resolve loads and caches a texture. Returns nil for an empty path or a file
// that failed to load; the failure is remembered, see Err.
func (c *Cache) Resolve(path string) *image.NRGBA {
	if path == "" {
		return nil
	}
	return c.load(path).img
}

// Err returns the load error recorded for path, if any.
func (c *Cache) Err(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if entry, ok := c.items[path]; ok {
		return entry.err
	}
	return nil
}

func (c *Cache) load(path string) *cacheEntry {
	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry
	}
	entry := &cacheEntry{img: img, err: err}
	c.items[path] = entry
	return entry
}

package plancache_test

import (
	"context"
	"strings"
	"sync"
	"time"
)

// memoryCache is a minimal in-process plancache.Cache used only by this
// package's tests; real callers are expected to bring their own
// implementation (Redis, Memcached, ...), per the Cache interface doc.
type memoryCache struct {
	mu      sync.RWMutex
	values  map[string][]byte
	expires map[string]time.Time
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}, expires: map[string]time.Time{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if exp, ok := c.expires[key]; ok && time.Now().After(exp) {
		return nil, nil
	}
	return c.values[key], nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	if ttl > 0 {
		c.expires[key] = time.Now().Add(ttl)
	} else {
		delete(c.expires, key)
	}
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	delete(c.expires, key)
	return nil
}

func (c *memoryCache) DeletePrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.values {
		if strings.HasPrefix(k, prefix) {
			delete(c.values, k)
			delete(c.expires, k)
		}
	}
	return nil
}

func (c *memoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = map[string][]byte{}
	c.expires = map[string]time.Time{}
	return nil
}

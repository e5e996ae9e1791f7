// Package cache provides the in-process view cache used by the read usecases.
package cache

import (
	"strings"
	"sync"

	"acorn/config"
	"acorn/internal/domain/service"
	"acorn/internal/infra/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	keySeparator = "\x00"

	// revalidatedPaths bounds how many per-path revalidation stamps are remembered.
	// Paths evicted from it fall back to the floor, which only makes Put stricter.
	revalidatedPaths = 4096
)

// lruViewCache keys entries as path + NUL + variant so a path owns an exact key prefix.
type lruViewCache struct {
	entries *expirable.LRU[string, any]
	metrics *metrics.Metrics

	mu sync.Mutex
	// clock advances on every Revalidate.
	clock uint64
	// stamps holds the clock value of each path's last Revalidate.
	stamps *lru.Cache[string, uint64]
	// floor is the newest stamp evicted from stamps.
	floor uint64
}

// NewViewCache builds a size-bounded cache whose entries also expire after the configured TTL.
func NewViewCache(cfg *config.Config, m *metrics.Metrics) service.ViewCache {
	c := &lruViewCache{
		entries: expirable.NewLRU[string, any](cfg.Cache.Size, nil, cfg.Cache.TTL),
		metrics: m,
	}

	// onEvict runs inside stamps.Add, which is only called with mu held.
	stamps, err := lru.NewWithEvict[string, uint64](revalidatedPaths, func(_ string, stamp uint64) {
		if stamp > c.floor {
			c.floor = stamp
		}
	})
	if err != nil {
		panic(err) // only fails for a non-positive size
	}
	c.stamps = stamps

	return c
}

func cacheKey(path, variant string) string {
	return path + keySeparator + variant
}

func (c *lruViewCache) Get(path, variant string) (any, bool) {
	value, ok := c.entries.Get(cacheKey(path, variant))
	if c.metrics != nil {
		c.metrics.CacheLookup(ok)
	}

	return value, ok
}

func (c *lruViewCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.clock
}

func (c *lruViewCache) Put(path, variant string, generation uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stamp, ok := c.stamps.Peek(path)
	if !ok {
		stamp = c.floor
	}
	if stamp > generation {
		if c.metrics != nil {
			c.metrics.CacheStalePutDropped()
		}

		return
	}

	c.entries.Add(cacheKey(path, variant), value)
}

// Revalidate drops the variants of path only; sub-paths such as path+"/{id}" are kept.
func (c *lruViewCache) Revalidate(path string) {
	c.mu.Lock()
	c.clock++
	c.stamps.Add(path, c.clock)

	prefix := path + keySeparator
	for _, key := range c.entries.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.entries.Remove(key)
		}
	}
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.CacheRevalidated(path)
	}
}

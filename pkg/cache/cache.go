package cache

import (
	"log"
	"sync"
	"time"
)

type entry struct {
	mu        sync.Mutex
	value     any
	fetchedAt time.Time
	filled    bool
}

// Cache is a process-wide, time-expiring store for reference data that is
// expensive or flaky to fetch upstream. Refreshes happen inline on the read
// that observes staleness, so that read pays the refresh latency; there is
// no background refresh.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// GetOrRefresh returns the cached value for key if it is younger than ttl,
// otherwise calls refresh and stores the result. If refresh fails and a
// stale value is present, the stale value is served instead of the error.
// Each key has its own lock, held across the refresh: concurrent readers of
// one key share a single refresh, while a slow refresh never blocks reads
// of other keys.
func (c *Cache) GetOrRefresh(key string, ttl time.Duration, refresh func() (any, error)) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.filled && c.now().Sub(e.fetchedAt) < ttl {
		return e.value, nil
	}

	value, err := refresh()
	if err != nil {
		if e.filled {
			log.Printf("[Cache] refresh of %q failed, serving stale entry: %v", key, err)
			return e.value, nil
		}
		return nil, err
	}

	e.value = value
	e.fetchedAt = c.now()
	e.filled = true
	return value, nil
}

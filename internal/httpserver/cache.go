package httpserver

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cachedPage struct {
	body    []byte
	etag    string
	expires time.Time
}

// pageCache keeps rendered pages for ttl. Concurrent misses for one key share a single build.
// A ttl of zero disables storage but still collapses concurrent builds.
type pageCache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.RWMutex
	items map[string]cachedPage
}

func newPageCache(ttl time.Duration) *pageCache {
	return &pageCache{
		ttl:   ttl,
		now:   time.Now,
		items: map[string]cachedPage{},
	}
}

// get reports whether the page was served from storage.
func (c *pageCache) get(key string, build func() ([]byte, error)) (cachedPage, bool, error) {
	if page, ok := c.lookup(key); ok {
		return page, true, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		if page, ok := c.lookup(key); ok {
			return page, nil
		}
		body, err := build()
		if err != nil {
			return cachedPage{}, err
		}
		page := cachedPage{body: body, etag: computeETag(body), expires: c.now().Add(c.ttl)}
		c.store(key, page)
		return page, nil
	})
	if err != nil {
		return cachedPage{}, false, err
	}
	return v.(cachedPage), false, nil
}

func (c *pageCache) lookup(key string) (cachedPage, bool) {
	if c.ttl <= 0 {
		return cachedPage{}, false
	}
	c.mu.RLock()
	page, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(page.expires) {
		return cachedPage{}, false
	}
	return page, true
}

func (c *pageCache) store(key string, page cachedPage) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = page
}

func (c *pageCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func computeETag(body []byte) string {
	return fmt.Sprintf("W/\"%x\"", sha256.Sum256(body))
}

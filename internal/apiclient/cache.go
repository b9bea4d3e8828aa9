package apiclient

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	body     []byte
	storedAt time.Time
}

// ResponseCache is a time-boxed cache of upstream response bodies keyed by
// the request's path and canonical query string. Keys are indexed by their
// first path segment so a whole entity family ("questions", "categories")
// can be invalidated at once after a mutation.
type ResponseCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	entries  map[string]cacheEntry
	segments map[string]map[string]struct{}
	now      func() time.Time
}

// NewResponseCache creates a cache whose entries expire after ttl.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
		segments: make(map[string]map[string]struct{}),
		now:      time.Now,
	}
}

// Get returns the cached body for key if present and not expired.
func (c *ResponseCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		c.removeLocked(key)
		return nil, false
	}
	return entry.body, true
}

// Put stores a response body under key.
func (c *ResponseCache) Put(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{body: body, storedAt: c.now()}

	seg := keySegment(key)
	if c.segments[seg] == nil {
		c.segments[seg] = make(map[string]struct{})
	}
	c.segments[seg][key] = struct{}{}
}

// Invalidate drops every entry whose first path segment matches prefix.
func (c *ResponseCache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.segments[prefix] {
		delete(c.entries, key)
	}
	delete(c.segments, prefix)
}

// Clear drops all entries.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
	c.segments = make(map[string]map[string]struct{})
}

// Len reports the number of live entries, expired or not.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ResponseCache) removeLocked(key string) {
	delete(c.entries, key)
	seg := keySegment(key)
	if keys, ok := c.segments[seg]; ok {
		delete(keys, key)
		if len(keys) == 0 {
			delete(c.segments, seg)
		}
	}
}

// keySegment extracts the first path segment of a cache key:
// "questions/answered?page=1" -> "questions".
func keySegment(key string) string {
	if i := strings.IndexAny(key, "/?"); i >= 0 {
		return key[:i]
	}
	return key
}

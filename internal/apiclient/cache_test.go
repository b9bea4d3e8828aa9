package apiclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponseCacheHitWithinTTL(t *testing.T) {
	cache := NewResponseCache(3 * time.Minute)
	cache.Put("questions?page=1", []byte(`[1]`))

	body, ok := cache.Get("questions?page=1")
	assert.True(t, ok)
	assert.Equal(t, []byte(`[1]`), body)

	_, ok = cache.Get("questions?page=2")
	assert.False(t, ok)
}

func TestResponseCacheExpiry(t *testing.T) {
	cache := NewResponseCache(3 * time.Minute)

	now := time.Now()
	cache.now = func() time.Time { return now }
	cache.Put("questions", []byte(`[]`))

	cache.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, ok := cache.Get("questions")
	assert.True(t, ok)

	cache.now = func() time.Time { return now.Add(4 * time.Minute) }
	_, ok = cache.Get("questions")
	assert.False(t, ok)
	assert.Zero(t, cache.Len())
}

func TestResponseCacheInvalidateByPrefix(t *testing.T) {
	cache := NewResponseCache(time.Minute)
	cache.Put("questions?page=1", []byte(`a`))
	cache.Put("questions/answered", []byte(`b`))
	cache.Put("categories", []byte(`c`))

	cache.Invalidate("questions")

	_, ok := cache.Get("questions?page=1")
	assert.False(t, ok)
	_, ok = cache.Get("questions/answered")
	assert.False(t, ok)
	_, ok = cache.Get("categories")
	assert.True(t, ok)
}

func TestResponseCacheClear(t *testing.T) {
	cache := NewResponseCache(time.Minute)
	cache.Put("questions", []byte(`a`))
	cache.Put("categories", []byte(`b`))

	cache.Clear()

	assert.Zero(t, cache.Len())
	_, ok := cache.Get("questions")
	assert.False(t, ok)
}

func TestKeySegment(t *testing.T) {
	assert.Equal(t, "questions", keySegment("questions?page=1"))
	assert.Equal(t, "questions", keySegment("questions/answered"))
	assert.Equal(t, "categories", keySegment("categories"))
}

package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/storefront/checkout-service/pkg/cache"
)

func TestLRUCache_SetGet(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("pi_1", []byte("one"))

	got, ok := c.Get("pi_1")
	assert.True(t, ok)
	assert.Equal(t, []byte("one"), got)

	_, ok = c.Get("pi_missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	// touch "a" so "b" becomes the eviction candidate
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("c", []byte("3"))

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_TTL(t *testing.T) {
	c := cache.NewLRUCache(10, 10*time.Millisecond)

	c.Set("pi_1", []byte("one"))
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("pi_1")
	assert.False(t, ok)
}

func TestLRUCache_Delete(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("pi_1", []byte("one"))
	c.Delete("pi_1")

	_, ok := c.Get("pi_1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_Overwrite(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("pi_1", []byte("one"))
	c.Set("pi_1", []byte("two"))

	got, ok := c.Get("pi_1")
	assert.True(t, ok)
	assert.Equal(t, []byte("two"), got)
	assert.Equal(t, 1, c.Size())
}

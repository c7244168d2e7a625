package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

// Cache is a thread-safe LRU cache
type Cache struct {
	container *lru.Cache
}

// NewCache creates a new instance of Cache
func NewCache(capacity int) *Cache {
	c := new(Cache)
	c.container, _ = lru.New(capacity)
	return c
}

// Add adds an item. If the cache is full, the oldest item is
// evicted to make room.
func (c *Cache) Add(key, val interface{}) {
	c.container.Add(key, val)
}

// Get gets an item and updates the newness of the item
func (c *Cache) Get(key interface{}) interface{} {
	v, _ := c.container.Get(key)
	return v
}

// Peek gets an item without updating the newness of the item
func (c *Cache) Peek(key interface{}) interface{} {
	v, _ := c.container.Peek(key)
	return v
}

// Has checks whether an item is in the cache without
// updating the newness of the item
func (c *Cache) Has(key interface{}) bool {
	return c.container.Contains(key)
}

// Keys returns all keys in the cache
func (c *Cache) Keys() []interface{} {
	return c.container.Keys()
}

// Remove removes an item from the cache
func (c *Cache) Remove(key interface{}) {
	c.container.Remove(key)
}

// Len returns the number of items in the cache
func (c *Cache) Len() int {
	return c.container.Len()
}

package flyweight

import (
	"fmt"
	"sort"
)

// Cache maps keys to shared resources. Entries are created on first request and
// never evicted, so the cache only grows during a session.
//
// A Cache is meant to be driven from a single frame loop and holds no lock.
// Give each concurrent session its own Cache.
type Cache struct {
	pool map[Key]*Resource
}

// NewCache creates an empty cache. The zero value is also ready to use.
func NewCache() *Cache {
	return &Cache{pool: make(map[Key]*Resource)}
}

// Get returns the shared resource for key, building it on first use.
// Structurally equal keys always yield the same *Resource. Invalid keys return
// ErrInvalidKey and leave the cache untouched.
func (c *Cache) Get(key Key) (*Resource, error) {
	if res, ok := c.pool[key]; ok {
		return res, nil
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if c.pool == nil {
		c.pool = make(map[Key]*Resource)
	}
	res := newResource(key)
	c.pool[key] = res
	return res, nil
}

// MustGet is like Get but panics on an invalid key.
// Intended for constant style tables known to be valid.
func (c *Cache) MustGet(key Key) *Resource {
	res, err := c.Get(key)
	if err != nil {
		panic(fmt.Sprintf("flyweight: MustGet(%s): %v", key, err))
	}
	return res
}

// Count returns the number of distinct resources built so far.
func (c *Cache) Count() int {
	return len(c.pool)
}

// Keys returns the cached keys in a stable order.
func (c *Cache) Keys() []Key {
	keys := make([]Key, 0, len(c.pool))
	for k := range c.pool {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	})
	return keys
}

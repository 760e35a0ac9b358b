// Package cache provides a small bounded LRU used to memoize
// deterministic computation results
package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity applies when a caller passes a non-positive capacity
const DefaultCapacity = 1024

// LRU is a mutex-guarded least-recently-used map from string keys to V.
// Entries never expire: cached values are deterministic functions of
// their key, so only capacity pressure evicts
type LRU[V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

type lruEntry[V any] struct {
	key string
	val V
}

// NewLRU creates an LRU holding at most capacity entries
func NewLRU[V any](capacity int) *LRU[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[V]{
		capacity: capacity,
		items:    map[string]*list.Element{},
		order:    list.New(),
	}
}

// Get returns the cached value and marks it most recently used
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry[V]).val, true
}

// Set stores val under key, evicting the oldest entry at capacity
func (c *LRU[V]) Set(key string, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry[V]).val = val
		c.order.MoveToFront(el)
		return
	}
	for len(c.items) >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		e := oldest.Value.(*lruEntry[V])
		c.order.Remove(oldest)
		delete(c.items, e.key)
	}
	c.items[key] = c.order.PushFront(&lruEntry[V]{key: key, val: val})
}

// Len returns the number of cached entries
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear drops every entry
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = map[string]*list.Element{}
	c.order.Init()
}

// Package lru implements the classic recency-ordered LRU eviction policy:
// a single doubly linked list with the most-recently-used entry at the
// head and O(1) promotion on every access.
//
// Core is the unlocked building block (a map plus one dlist.List); Cache
// adds the single mutex the Policy contract requires. engine/lruk reuses
// Core directly, covering both the main cache and the history side-table
// with its own single lock, so the pair never ends up with two locks
// where the contract asks for one.
package lru

import (
	"sync"

	"github.com/arnegrey/evictcache/internal/dlist"
)

type entry[K comparable, V any] struct {
	key K
	val V
}

// Core is the lock-free core of the LRU policy: a hash map from key to
// intrusive list node, plus the recency list itself (head=MRU, tail=LRU).
// Callers must serialize access externally — Core itself never locks.
type Core[K comparable, V any] struct {
	cap int
	m   map[K]*dlist.Node[*entry[K, V]]
	l   *dlist.List[*entry[K, V]]
}

// NewCore returns an empty Core bounded at capacity entries. A negative
// capacity is clamped to 0, which makes every mutating call a no-op and
// every lookup a miss.
func NewCore[K comparable, V any](capacity int) *Core[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Core[K, V]{
		cap: capacity,
		m:   make(map[K]*dlist.Node[*entry[K, V]], capacity),
		l:   dlist.New[*entry[K, V]](),
	}
}

// Put inserts or replaces key→value, evicting the current LRU entry first
// if the cache is full and key is new.
func (c *Core[K, V]) Put(key K, val V) {
	if c.cap == 0 {
		return
	}
	if n, ok := c.m[key]; ok {
		n.Value.val = val
		c.l.MoveToFront(n)
		return
	}
	if c.l.Len() >= c.cap {
		if tail := c.l.Back(); tail != nil {
			delete(c.m, tail.Value.key)
			c.l.Remove(tail)
		}
	}
	n := c.l.PushFront(&entry[K, V]{key: key, val: val})
	c.m[key] = n
}

// Get looks up key, promoting it to MRU on a hit.
func (c *Core[K, V]) Get(key K) (V, bool) {
	n, ok := c.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.l.MoveToFront(n)
	return n.Value.val, true
}

// Peek looks up key without promoting it. Used by LRU-K, whose own
// promotion semantics are driven by the history counter, not by Core's.
func (c *Core[K, V]) Peek(key K) (V, bool) {
	n, ok := c.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.Value.val, true
}

// Remove deletes key if present.
func (c *Core[K, V]) Remove(key K) bool {
	n, ok := c.m[key]
	if !ok {
		return false
	}
	c.l.Remove(n)
	delete(c.m, key)
	return true
}

// Purge clears every entry.
func (c *Core[K, V]) Purge() {
	c.m = make(map[K]*dlist.Node[*entry[K, V]], c.cap)
	c.l = dlist.New[*entry[K, V]]()
}

// Len reports the number of resident entries.
func (c *Core[K, V]) Len() int { return c.l.Len() }

// Back returns the current least-recently-used key and value, or false if
// empty. It does not change recency order.
func (c *Core[K, V]) Back() (key K, val V, ok bool) {
	n := c.l.Back()
	if n == nil {
		return key, val, false
	}
	return n.Value.key, n.Value.val, true
}

// Cache is the lock-protected LRU engine satisfying engine.Engine.
type Cache[K comparable, V any] struct {
	mu   sync.Mutex
	core *Core[K, V]
}

// New constructs an LRU cache bounded at capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{core: NewCore[K, V](capacity)}
}

// Put inserts or replaces key→value.
func (c *Cache[K, V]) Put(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.core.Put(key, val)
}

// Get looks up key, promoting it to MRU on a hit.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.Get(key)
}

// Remove deletes key if present.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.Remove(key)
}

// Purge clears every entry.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.core.Purge()
}

// Len reports the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.core.Len()
}

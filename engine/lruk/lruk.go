// Package lruk implements LRU-K: entries are only admitted into the main
// LRU cache once they have been observed K times; until then they sit in a
// recency-ordered history side-table that itself evicts stale candidates
// under its own (separate) capacity, H.
//
// Grounded in the original source's KLruKCache, which composes a main
// LRUCache<Key,Value> with a second LRUCache<Key,size_t> as its history —
// here both halves are lru.Core values (unlocked) sharing the single mutex
// on Cache, rather than two independently-locked LRU instances, so the
// Policy contract's "exactly one lock per instance" holds literally.
package lruk

import (
	"sync"

	"github.com/arnegrey/evictcache/engine/lru"
)

// pending holds a candidate's most recent value and observation count
// while it waits in the history table for its K-th access. hasVal is false
// until a Put records an actual value; a pure Get can create or bump this
// entry but can never promote it on its own, since there is nothing to
// hand to the main cache yet.
type pending[V any] struct {
	count  int
	val    V
	hasVal bool
}

// Cache is the LRU-K engine satisfying engine.Engine.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	main    *lru.Core[K, V]
	history *lru.Core[K, *pending[V]]
	k       int
}

// New constructs an LRU-K cache: capacity is the main cache's size,
// historyCapacity bounds the side-table of not-yet-promoted candidates,
// and k is the number of observations required before promotion. k<1 is
// clamped to 1, which reduces LRU-K to plain LRU (promotion on first
// observation).
func New[K comparable, V any](capacity, historyCapacity, k int) *Cache[K, V] {
	if k < 1 {
		k = 1
	}
	return &Cache[K, V]{
		main:    lru.NewCore[K, V](capacity),
		history: lru.NewCore[K, *pending[V]](historyCapacity),
		k:       k,
	}
}

// Get looks up key. A hit in the main cache is served directly and does not
// touch the history table. Otherwise the observation counter in the history
// table is bumped by exactly one (a get that triggers promotion counts as a
// single observation, not two — see DESIGN.md for this choice).
// A key that is in neither the main cache nor the history table starts a
// fresh history entry at count 1 with no recorded value, so it still
// registers as one observation even though it has never been Put. Reaching
// k promotes the candidate into the main cache and returns its value with
// hit=true, but only once a Put has actually recorded a value for it.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.main.Get(key); ok {
		return v, true
	}

	p, inHistory := c.history.Peek(key)
	if !inHistory {
		c.history.Put(key, &pending[V]{count: 1})
		var zero V
		return zero, false
	}
	p.count++
	c.history.Get(key) // bump recency within the history window

	if p.hasVal && p.count >= c.k {
		c.history.Remove(key)
		c.main.Put(key, p.val)
		return p.val, true
	}
	var zero V
	return zero, false
}

// Put inserts or updates key→value. An already-admitted key is updated in
// place in the main cache. A new or still-probationary key is recorded (or
// refreshed) in the history table and promoted once its observation count
// reaches k.
func (c *Cache[K, V]) Put(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.main.Peek(key); ok {
		c.main.Put(key, val)
		return
	}

	p, inHistory := c.history.Peek(key)
	if !inHistory {
		p = &pending[V]{}
	}
	p.count++
	p.val = val
	p.hasVal = true
	c.history.Put(key, p)

	if p.count >= c.k {
		c.history.Remove(key)
		c.main.Put(key, val)
	}
}

// Remove deletes key from whichever region holds it (main cache or
// history); a key is never resident in both at once, so checking each
// region in turn is sufficient.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.main.Remove(key) {
		return true
	}
	return c.history.Remove(key)
}

// Purge clears both the main cache and the history table.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.main.Purge()
	c.history.Purge()
}

// Len reports the number of entries admitted into the main cache. History
// candidates are probationary and are not counted as live entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.main.Len()
}

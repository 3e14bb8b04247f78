// Package arc implements the Adaptive Replacement Cache policy: a
// self-tuning split between a recency list (T1) and a frequency list (T2),
// each backed by a ghost list (B1, B2) of evicted keys that retunes the
// split parameter p from recent eviction history.
//
// Grounded in the original source's ArcCacheNode/ArcCache shape (a node
// carrying an access count, and LRU/LFU "parts" that cooperate through
// ghost lists) and in the teacher repo's policy/twoq package, whose
// resident/ghost list pairing and OnRemove ghost-capacity eviction loop is
// the closest idiom in the pack to ARC's own ghost bookkeeping — twoq's
// single ghost list here becomes two (B1 and B2), each paired with its own
// resident list (T1 and T2) instead of one shared "Am".
package arc

import (
	"sync"

	"github.com/arnegrey/evictcache/internal/dlist"
)

// Cache is the ARC engine satisfying engine.Engine.
type Cache[K comparable, V any] struct {
	mu sync.Mutex

	cap int
	p   int

	promoteAfter int // classical rule (2) unless overridden at construction

	t1, t2 *dlist.List[*resident[K, V]]
	b1, b2 *dlist.List[K]

	t1idx map[K]*dlist.Node[*resident[K, V]]
	t2idx map[K]*dlist.Node[*resident[K, V]]
	b1idx map[K]*dlist.Node[K]
	b2idx map[K]*dlist.Node[K]
}

type resident[K comparable, V any] struct {
	key     K
	val     V
	inT1Cnt int // accesses while resident in T1, consulted against promoteAfter; admission itself counts as access 1
}

// New constructs an ARC cache bounded at capacity live entries (T1 ∪ T2);
// ghost lists B1 and B2 are bounded independently so that each resident
// list's ghost history can grow to track its own eviction activity.
// promoteAfter, if > 0, requires that many accesses to a T1 entry before it
// promotes to T2 (an optional "transition threshold" knob); 0 or negative
// selects the classical rule — promotion on any second access.
func New[K comparable, V any](capacity, promoteAfter int) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	if promoteAfter < 1 {
		promoteAfter = 2 // classical rule: promote on any second access
	}
	return &Cache[K, V]{
		cap:          capacity,
		promoteAfter: promoteAfter,
		t1:           dlist.New[*resident[K, V]](),
		t2:           dlist.New[*resident[K, V]](),
		b1:           dlist.New[K](),
		b2:           dlist.New[K](),
		t1idx:        make(map[K]*dlist.Node[*resident[K, V]]),
		t2idx:        make(map[K]*dlist.Node[*resident[K, V]]),
		b1idx:        make(map[K]*dlist.Node[K]),
		b2idx:        make(map[K]*dlist.Node[K]),
	}
}

// Get: a T2 hit refreshes recency in place; a T1 hit promotes once the
// entry has been seen promoteAfter times (2 under the classical rule —
// admission to T1 already counts as the first access, so a single
// subsequent Get reaches it). A miss touches no ghost list.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.t2idx[key]; ok {
		c.t2.MoveToFront(n)
		return n.Value.val, true
	}
	if n, ok := c.t1idx[key]; ok {
		n.Value.inT1Cnt++
		if n.Value.inT1Cnt >= c.promoteAfter {
			c.t1.Remove(n)
			delete(c.t1idx, key)
			c.t2idx[key] = c.t2.PushFront(n.Value)
		} else {
			c.t1.MoveToFront(n)
		}
		return n.Value.val, true
	}
	var zero V
	return zero, false
}

// Put: five branches — T2 hit, T1 hit, B1 ghost hit, B2 ghost hit, and true
// miss — including the two ghost hits' p-adaptation and the REPLACE(p)
// calls that precede insertion.
func (c *Cache[K, V]) Put(key K, val V) {
	if c.cap == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.t2idx[key]; ok {
		n.Value.val = val
		c.t2.MoveToFront(n)
		return
	}
	if n, ok := c.t1idx[key]; ok {
		n.Value.val = val
		c.t1.Remove(n)
		delete(c.t1idx, key)
		c.t2idx[key] = c.t2.PushFront(n.Value)
		return
	}
	if gn, ok := c.b1idx[key]; ok {
		c.adaptGrow()
		c.replace(key)
		c.b1.Remove(gn)
		delete(c.b1idx, key)
		c.t2idx[key] = c.t2.PushFront(&resident[K, V]{key: key, val: val, inT1Cnt: 1})
		return
	}
	if gn, ok := c.b2idx[key]; ok {
		c.adaptShrink()
		c.replace(key)
		c.b2.Remove(gn)
		delete(c.b2idx, key)
		c.t2idx[key] = c.t2.PushFront(&resident[K, V]{key: key, val: val, inT1Cnt: 1})
		return
	}

	// True miss.
	if c.t1.Len()+c.b1.Len() == c.cap {
		if c.t1.Len() < c.cap {
			c.dropB1LRU()
			c.replace(key)
		} else {
			c.dropT1LRU()
		}
	} else if c.total() >= c.cap {
		if c.total() >= 2*c.cap {
			c.dropB2LRU()
		}
		c.replace(key)
	}
	c.t1idx[key] = c.t1.PushFront(&resident[K, V]{key: key, val: val, inT1Cnt: 1})
}

func (c *Cache[K, V]) total() int {
	return c.t1.Len() + c.t2.Len() + c.b1.Len() + c.b2.Len()
}

func (c *Cache[K, V]) adaptGrow() {
	delta := 1
	if c.b1.Len() > 0 {
		if d := c.b2.Len() / c.b1.Len(); d > delta {
			delta = d
		}
	}
	c.p += delta
	if c.p > c.cap {
		c.p = c.cap
	}
}

func (c *Cache[K, V]) adaptShrink() {
	delta := 1
	if c.b2.Len() > 0 {
		if d := c.b1.Len() / c.b2.Len(); d > delta {
			delta = d
		}
	}
	c.p -= delta
	if c.p < 0 {
		c.p = 0
	}
}

// replace is the classical ARC REPLACE(p) procedure: evict T1's LRU to B1
// when T1 exceeds its target size p (or, on a B2 hit exactly at the
// boundary, when |T1| == p); otherwise evict T2's LRU to B2.
func (c *Cache[K, V]) replace(keyOnB2Path K) {
	_, onB2 := c.b2idx[keyOnB2Path]
	if c.t1.Len() > 0 && (c.t1.Len() > c.p || (onB2 && c.t1.Len() == c.p)) {
		n := c.t1.Back()
		if n == nil {
			return
		}
		k := n.Value.key
		c.t1.Remove(n)
		delete(c.t1idx, k)
		c.b1idx[k] = c.b1.PushFront(k)
		return
	}
	n := c.t2.Back()
	if n == nil {
		return
	}
	k := n.Value.key
	c.t2.Remove(n)
	delete(c.t2idx, k)
	c.b2idx[k] = c.b2.PushFront(k)
}

func (c *Cache[K, V]) dropB1LRU() {
	n := c.b1.Back()
	if n == nil {
		return
	}
	delete(c.b1idx, n.Value)
	c.b1.Remove(n)
}

func (c *Cache[K, V]) dropB2LRU() {
	n := c.b2.Back()
	if n == nil {
		return
	}
	delete(c.b2idx, n.Value)
	c.b2.Remove(n)
}

func (c *Cache[K, V]) dropT1LRU() {
	n := c.t1.Back()
	if n == nil {
		return
	}
	delete(c.t1idx, n.Value.key)
	c.t1.Remove(n)
}

// Remove deletes key from whichever list holds it, live or ghost.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.t1idx[key]; ok {
		c.t1.Remove(n)
		delete(c.t1idx, key)
		return true
	}
	if n, ok := c.t2idx[key]; ok {
		c.t2.Remove(n)
		delete(c.t2idx, key)
		return true
	}
	if n, ok := c.b1idx[key]; ok {
		c.b1.Remove(n)
		delete(c.b1idx, key)
		return true
	}
	if n, ok := c.b2idx[key]; ok {
		c.b2.Remove(n)
		delete(c.b2idx, key)
		return true
	}
	return false
}

// Purge clears all four lists and resets p to 0.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t1 = dlist.New[*resident[K, V]]()
	c.t2 = dlist.New[*resident[K, V]]()
	c.b1 = dlist.New[K]()
	c.b2 = dlist.New[K]()
	c.t1idx = make(map[K]*dlist.Node[*resident[K, V]])
	c.t2idx = make(map[K]*dlist.Node[*resident[K, V]])
	c.b1idx = make(map[K]*dlist.Node[K])
	c.b2idx = make(map[K]*dlist.Node[K])
	c.p = 0
}

// Len reports the number of live entries, |T1| + |T2|. Ghost entries hold
// no value and are not counted.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t1.Len() + c.t2.Len()
}

package cache

import "github.com/arnegrey/evictcache/engine"

// EvictReason explains why an entry was removed. The Policy contract has
// exactly one eviction trigger — the active engine's own policy — since
// this cache has no TTL or cost-based admission to distinguish further.
type EvictReason int

// EvictPolicy is the sole EvictReason: the entry was removed by the
// owning shard's eviction engine to make room for a new key.
const EvictPolicy EvictReason = 0

// Metrics exposes cache-level observability hooks. A NoopMetrics
// implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// Options configures the cache. Zero values are safe; sane defaults are
// applied in New():
//   - nil NewEngine => plain LRU
//   - Shards <= 0   => auto (≈ 2*GOMAXPROCS, rounded up to a power of two)
//   - nil Metrics   => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the total entry count limit across all shards.
	Capacity int

	// Shards defines the number of shards. If 0, an automatic value is
	// chosen and rounded to the next power of two so shard routing can use
	// a mask instead of a modulo.
	Shards int

	// NewEngine constructs the eviction engine backing each shard, given
	// that shard's share of Capacity (ceil(Capacity/Shards)). nil selects
	// plain LRU — see engine/lru, engine/lruk, engine/lfu, engine/arc for
	// the available factories.
	NewEngine engine.Factory[K, V]

	Metrics Metrics
}

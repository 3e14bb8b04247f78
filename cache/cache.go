package cache

import (
	"github.com/arnegrey/evictcache/engine"
	"github.com/arnegrey/evictcache/engine/lru"
	"github.com/arnegrey/evictcache/internal/util"
)

// evictCache is a sharded, in-memory KV store backed by a pluggable
// eviction engine per shard. All methods are safe for concurrent use by
// multiple goroutines.
type evictCache[K comparable, V any] struct {
	shards []*shard[K, V]
}

// New constructs a cache with the provided Options. A zero or negative
// Capacity is legal and yields an always-empty cache backed by
// zero-capacity shards, matching every individual engine constructor.
// Defaults:
//   - nil Metrics   -> NoopMetrics
//   - nil NewEngine -> plain LRU
//   - Shards <= 0   -> util.ReasonableShardCount() (2×GOMAXPROCS, clamped to
//     256), then rounded up to the next power of two
func New[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	if opt.Capacity < 0 {
		opt.Capacity = 0
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.NewEngine == nil {
		opt.NewEngine = func(capacity int) engine.Engine[K, V] { return lru.New[K, V](capacity) }
	}

	sh := opt.Shards
	if sh <= 0 {
		sh = util.ReasonableShardCount()
	}
	sh = int(util.NextPow2(uint64(sh)))
	if sh < 1 {
		sh = 1
	}

	shards := make([]*shard[K, V], sh)
	perShardCap := (opt.Capacity + sh - 1) / sh // split capacity evenly (ceil)
	for i := range shards {
		shards[i] = newShard[K, V](opt.NewEngine(perShardCap), opt.Metrics)
	}

	// Return pointer-to-impl as the interface (avoids unexported-return lint).
	return &evictCache[K, V]{shards: shards}
}

// getShard picks a shard by hashing the key and routing through
// util.ShardIndex, which takes the mask fast path since len(c.shards) is
// always a power of two.
func (c *evictCache[K, V]) getShard(k K) *shard[K, V] {
	return c.shards[util.ShardIndex(util.Hash64(k), len(c.shards))]
}

func (c *evictCache[K, V]) Put(k K, v V) { c.getShard(k).Put(k, v) }

func (c *evictCache[K, V]) Get(k K) (V, bool) { return c.getShard(k).Get(k) }

func (c *evictCache[K, V]) Remove(k K) bool { return c.getShard(k).Remove(k) }

// Purge clears every shard. There is no cross-shard atomicity: a
// concurrent Put on another shard while Purge is in flight is unaffected.
func (c *evictCache[K, V]) Purge() {
	for _, s := range c.shards {
		s.Purge()
	}
}

// Len returns the total number of resident entries across all shards.
func (c *evictCache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.Len()
	}
	return total
}

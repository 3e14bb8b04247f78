// Package cache provides a fast, generic, sharded in-memory cache with a
// pluggable eviction engine (LRU, LRU-K, LFU with optional aging, or ARC)
// and lightweight metrics hooks.
//
// Design
//
//   - Concurrency: the cache is split into shards, each an independent,
//     self-locking engine instance (engine.Engine). The default shard
//     count is chosen by a heuristic (≈ 2*GOMAXPROCS) and is always a
//     power of two, so routing can mask instead of mod. Picking shards
//     reduces contention while keeping memory overhead small.
//
//   - Storage: each engine keeps its own map(s) and intrusive list(s);
//     see engine/lru, engine/lruk, engine/lfu, engine/arc for their
//     individual data layouts. All operations are O(1) expected.
//
//   - Engines: the backing algorithm is pluggable via Options.NewEngine.
//     Plain LRU is the default. LRU-K, LFU, and ARC are provided; wrap the
//     chosen constructor in an engine.Factory closure, as shown below.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Size signals. By default
//     NoopMetrics is used; plug the metrics/prom adapter to export to
//     Prometheus.
//
// Basic usage
//
//	// A plain LRU cache with capacity for 10k entries.
//	c := cache.New[string, []byte](cache.Options[string, []byte]{Capacity: 10_000})
//	c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Remove("a")
//
// Choosing an algorithm
//
//	c := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 50_000,
//	    NewEngine: func(capacity int) engine.Engine[string, string] {
//	        return arc.New[string, string](capacity, 0) // classical ARC
//	    },
//	})
//
// Exporting metrics (example Prometheus adapter)
//
//	m := prom.New(nil, "evictcache", "demo", nil) // implements Metrics
//	c := cache.New[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
//
// Thread-safety & complexity
//
// All methods on Cache are safe for concurrent use. Typical operation cost
// is O(1) expected time. Eviction work is O(1) amortized per shard for
// every engine except ARC, whose REPLACE step is O(1) worst case.
//
// See package cache/options.go for all available Options fields and
// package engine for the Engine/Factory interfaces used to plug in a
// custom algorithm.
package cache

package cache

import "github.com/arnegrey/evictcache/internal/util"

// shard pairs one eviction engine with this cache's metrics hooks. The
// engine itself holds the only lock covering its index structures; shard
// adds no locking of its own.
type shard[K comparable, V any] struct {
	eng     engineLike[K, V]
	metrics Metrics

	// ---- hot counters (separate cache lines to avoid false sharing) ----
	_      util.CacheLinePad
	hits   util.PaddedAtomicInt64
	misses util.PaddedAtomicInt64
}

// engineLike is the subset of engine.Engine a shard needs; declared
// locally so this file does not have to import the engine package just to
// name the parameter type in newShard.
type engineLike[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Remove(key K) bool
	Purge()
	Len() int
}

func newShard[K comparable, V any](eng engineLike[K, V], metrics Metrics) *shard[K, V] {
	return &shard[K, V]{eng: eng, metrics: metrics}
}

// Put delegates to the engine and republishes the shard's size. The
// Policy contract gives engines no way to report which key an insertion
// evicted without a side-effecting lookup of its own, so Metrics.Evict is
// not fired from here — see DESIGN.md for why that hook stays unwired at
// the shard level.
func (s *shard[K, V]) Put(k K, v V) {
	s.eng.Put(k, v)
	s.metrics.Size(s.eng.Len())
}

func (s *shard[K, V]) Get(k K) (V, bool) {
	v, ok := s.eng.Get(k)
	if ok {
		s.hits.Add(1)
		s.metrics.Hit()
	} else {
		s.misses.Add(1)
		s.metrics.Miss()
	}
	return v, ok
}

func (s *shard[K, V]) Remove(k K) bool {
	ok := s.eng.Remove(k)
	if ok {
		s.metrics.Size(s.eng.Len())
	}
	return ok
}

func (s *shard[K, V]) Purge() {
	s.eng.Purge()
	s.metrics.Size(0)
}

func (s *shard[K, V]) Len() int { return s.eng.Len() }

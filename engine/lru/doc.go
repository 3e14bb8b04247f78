// See lru.go for the Core/Cache split. Cache.Get/Put/Remove/Purge are
// O(1) amortized: one map access plus a constant number of pointer fixes
// in the intrusive recency list.
package lru

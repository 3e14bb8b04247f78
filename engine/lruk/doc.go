// Package lruk implements the LRU-K eviction policy: promotion from a
// probationary history window into a main LRU cache after K observations.
package lruk

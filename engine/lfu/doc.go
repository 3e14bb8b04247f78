// Package lfu implements the LFU eviction policy, with an optional
// periodic aging pass that halves every live entry's frequency to bound
// the influence of historical hot spots.
package lfu

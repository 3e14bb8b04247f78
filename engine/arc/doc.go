// Package arc implements the Adaptive Replacement Cache policy: T1/T2
// resident lists, B1/B2 ghost lists, and a self-tuning split parameter p
// adjusted on every ghost hit.
package arc

// Package conv provides safe integer conversions for slot addressing.
//
// Slot offsets are products of a slot index and a slot size and can overflow
// int64 for very large sequences or capacities. These helpers check bounds
// instead of wrapping silently.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead.
package conv

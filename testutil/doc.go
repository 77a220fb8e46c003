// Package testutil provides testing utilities for bigseq.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a plain in-memory reference
// model that sequences can be checked against.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	at := rng.Intn(seq.Len() + 1)
//	vals := rng.Int64s(1000)
//
// # Reference Model
//
//	var m testutil.Model
//	m.Append(1)
//	m.Insert(0, 42)
//	assert.Equal(t, m.Values(), got)
package testutil

// Package testutil provides testing utilities for hybridvec.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vals := testutil.Slice[float64](rng, 17)  // exact small integers
//	idx := rng.SparsePattern(64, 0.1)         // sorted sparse indices
//
// # Sizes
//
//	for _, n := range testutil.RaggedSizes(32, 4) { ... }  // sizes ending in a partial lane
package testutil

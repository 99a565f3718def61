// Package testutil provides testing utilities for doubleint.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible integers that cluster around the edges of the
// double-precision safe range, where range checks are most likely to be off
// by one.
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.Int64s(1000)
package testutil

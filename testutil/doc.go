// Package testutil provides testing utilities for colstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random source for column data and helpers
// that build populated tables.
//
// # Random Column Data
//
//	rng := testutil.NewRNG(seed)
//	ints := rng.Int32s(1000, 50)          // uniform in [0, 50)
//	skewed := rng.ZipfInt32s(1000, 50, 1.5) // heavy-tail distribution
//	names := rng.Strings(1000, 20)          // drawn from 20 distinct strings
//
// # Tables
//
//	tbl, err := testutil.BuildTable(4, []testutil.Column{
//	    {Name: "a", Kind: variant.KindInt32},
//	}, testutil.Int32Rows(1, 5, 3, 5, 2))
package testutil

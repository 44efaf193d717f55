// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking when converting Go's
// platform-dependent int into the fixed-width identifier types of the model
// package (ChunkID, ChunkOffset, ValueID).
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices below a segment size), use direct type casts instead to avoid overhead.
package conv

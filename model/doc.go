// Package model defines the identifier types and the error taxonomy shared by
// every colstore package.
//
// # Identity Types
//
//   - ColumnID: position of a column within a table (uint16)
//   - ChunkID: position of a chunk within a table (uint32)
//   - ChunkOffset: row position within a chunk (uint32)
//   - ValueID: index into a dictionary (uint32, InvalidValueID reserved)
//   - RowID: (ChunkID, ChunkOffset), table-relative row address
//   - PosList: ordered list of RowIDs, duplicates allowed
//
// The identifier types are distinct Go types on purpose: a ChunkID cannot be
// passed where a ColumnID is expected without an explicit conversion.
//
// # Errors
//
// Every failure is reported as a typed error that unwraps to one of the
// sentinels (ErrSchema, ErrNotFound, ErrImmutable, ErrTypeMismatch,
// ErrCapacity), so callers can use errors.Is for the kind and errors.As for
// the failing argument.
package model

package model

import (
	"fmt"
	"math"
)

// ColumnID is the 0-based position of a column within a table.
type ColumnID uint16

// ChunkID is the 0-based position of a chunk within a table.
type ChunkID uint32

// ChunkOffset is the 0-based row position within a chunk.
type ChunkOffset uint32

// ValueID indexes an entry of a dictionary.
//
// Attribute vectors store ValueIDs in 8, 16 or 32 bits. The logical type is
// always 32 bits wide so ids of every width compare against InvalidValueID.
type ValueID uint32

// InvalidValueID is returned by dictionary lookups that find no entry.
const InvalidValueID = ValueID(math.MaxUint32)

// MaxChunkOffset is the largest addressable row offset within a chunk.
const MaxChunkOffset = ChunkOffset(math.MaxUint32)

// RowID identifies a row within a specific table.
//
// It is table-relative: a RowID stays meaningful across a compression swap of
// the addressed chunk because chunk positions and row offsets are preserved.
type RowID struct {
	ChunkID     ChunkID
	ChunkOffset ChunkOffset
}

// String returns a string representation of the RowID.
func (r RowID) String() string {
	return fmt.Sprintf("Row(%d:%d)", r.ChunkID, r.ChunkOffset)
}

// Less reports whether r sorts before other in (ChunkID, ChunkOffset) order.
func (r RowID) Less(other RowID) bool {
	if r.ChunkID != other.ChunkID {
		return r.ChunkID < other.ChunkID
	}
	return r.ChunkOffset < other.ChunkOffset
}

// PosList is an ordered sequence of RowIDs.
//
// The order defines the row order of whatever consumes the list. Duplicates
// are permitted. A PosList handed to a ReferenceSegment must not be mutated
// afterwards; several segments may share the same list.
type PosList []RowID

// Len returns the number of positions.
func (p PosList) Len() int { return len(p) }

// IsSorted reports whether the list is in strictly ascending order.
func (p PosList) IsSorted() bool {
	for i := 1; i < len(p); i++ {
		if !p[i-1].Less(p[i]) {
			return false
		}
	}
	return true
}

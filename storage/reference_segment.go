package storage

import (
	"unsafe"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/variant"
)

// ReferenceSegment owns no values. Each row is a RowID into one column of
// another table, resolved on access.
//
// The PosList addresses the referenced table only. If the referenced column
// is itself reference-encoded, that segment resolves its own position in turn.
type ReferenceSegment struct {
	table     *Table
	column    model.ColumnID
	kind      variant.Kind
	positions model.PosList
}

// NewReferenceSegment creates a segment over column of table.
//
// positions is shared, not copied; the caller must not modify it afterwards.
// It fails with a *model.NotFoundError if the column does not exist.
func NewReferenceSegment(table *Table, column model.ColumnID, positions model.PosList) (*ReferenceSegment, error) {
	kind, err := table.ColumnType(column)
	if err != nil {
		return nil, err
	}
	return &ReferenceSegment{
		table:     table,
		column:    column,
		kind:      kind,
		positions: positions,
	}, nil
}

// Size returns the number of positions.
func (s *ReferenceSegment) Size() int { return len(s.positions) }

// Kind returns the type of the referenced column.
func (s *ReferenceSegment) Kind() variant.Kind { return s.kind }

// Encoding returns EncodingReference.
func (s *ReferenceSegment) Encoding() Encoding { return EncodingReference }

// ValueAt resolves positions[offset] in the referenced table.
func (s *ReferenceSegment) ValueAt(offset model.ChunkOffset) (variant.Value, error) {
	if int(offset) >= len(s.positions) {
		return variant.Value{}, outOfRange(offset, len(s.positions))
	}
	return s.table.Value(s.column, s.positions[offset])
}

// Append always fails: reference segments are immutable.
func (s *ReferenceSegment) Append(variant.Value) error {
	return &model.ImmutableError{Encoding: EncodingReference.String()}
}

// PosList returns the referenced positions. The slice must not be modified.
func (s *ReferenceSegment) PosList() model.PosList { return s.positions }

// ReferencedTable returns the table the positions address.
func (s *ReferenceSegment) ReferencedTable() *Table { return s.table }

// ReferencedColumnID returns the referenced column.
func (s *ReferenceSegment) ReferencedColumnID() model.ColumnID { return s.column }

// EstimateMemoryUsage returns the bytes of the position list.
func (s *ReferenceSegment) EstimateMemoryUsage() int {
	return len(s.positions) * int(unsafe.Sizeof(model.RowID{}))
}

func (s *ReferenceSegment) sealed() {}

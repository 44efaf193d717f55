package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{"schema column", &SchemaError{Op: "add column", Column: "a", Reason: "table is not empty"}, ErrSchema, `schema error: add column column "a": table is not empty`},
		{"schema length", &SchemaError{Op: "append", Expected: 2, Actual: 3, Reason: "row length mismatch"}, ErrSchema, "schema error: append: row length mismatch: expected 2, got 3"},
		{"not found name", &NotFoundError{What: "column", Name: "b"}, ErrNotFound, `column "b" not found`},
		{"not found id", &NotFoundError{What: "chunk", ID: 7}, ErrNotFound, "chunk 7 not found"},
		{"immutable", &ImmutableError{Encoding: "dictionary"}, ErrImmutable, "cannot append to immutable dictionary segment"},
		{"type mismatch", &TypeMismatchError{Expected: "int", Actual: "string"}, ErrTypeMismatch, "type mismatch: expected int, got string"},
		{"capacity", &CapacityError{UniqueValues: 10, Max: 5}, ErrCapacity, "dictionary capacity exceeded: 10 unique values, max 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("op failed: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestOutOfRangeMatchesNotFound(t *testing.T) {
	var err error = &OutOfRangeError{Offset: 5, Size: 3}

	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrSchema)

	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, ChunkOffset(5), oor.Offset)
	assert.Equal(t, 3, oor.Size)
}

func TestRowIDOrdering(t *testing.T) {
	assert.True(t, RowID{0, 5}.Less(RowID{1, 0}))
	assert.True(t, RowID{1, 0}.Less(RowID{1, 1}))
	assert.False(t, RowID{1, 1}.Less(RowID{1, 1}))
	assert.Equal(t, "Row(2:3)", RowID{2, 3}.String())

	assert.True(t, PosList{{0, 1}, {0, 3}, {1, 0}}.IsSorted())
	assert.False(t, PosList{{0, 1}, {0, 1}}.IsSorted())
	assert.True(t, PosList{}.IsSorted())
}

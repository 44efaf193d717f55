package storage

import (
	"math"
	"unsafe"

	"github.com/hupe1980/colstore/model"
)

// AttributeVector maps a row offset to a dictionary ValueID.
//
// Its width is fixed at construction; ids that do not fit are rejected
// instead of widening the vector.
type AttributeVector interface {
	// Get returns the ValueID at offset. It panics if offset >= Len().
	Get(offset model.ChunkOffset) model.ValueID

	// Set stores id at offset.
	Set(offset model.ChunkOffset, id model.ValueID) error

	// Len returns the number of entries.
	Len() int

	// Width returns the size of one entry in bytes (1, 2 or 4).
	Width() int
}

type idWidth interface {
	uint8 | uint16 | uint32
}

type fixedWidthVector[T idWidth] struct {
	ids []T
}

func newFixedWidthVector[T idWidth](n int) *fixedWidthVector[T] {
	return &fixedWidthVector[T]{ids: make([]T, n)}
}

func (v *fixedWidthVector[T]) Get(offset model.ChunkOffset) model.ValueID {
	return model.ValueID(v.ids[offset])
}

func (v *fixedWidthVector[T]) Set(offset model.ChunkOffset, id model.ValueID) error {
	if int(offset) >= len(v.ids) {
		return &model.OutOfRangeError{Offset: offset, Size: len(v.ids)}
	}
	if uint64(id) > uint64(^T(0)) {
		return &model.CapacityError{UniqueValues: uint64(id) + 1, Max: uint64(^T(0))}
	}
	v.ids[offset] = T(id)
	return nil
}

func (v *fixedWidthVector[T]) Len() int { return len(v.ids) }

func (v *fixedWidthVector[T]) Width() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// MaxUniqueValues is the largest dictionary an attribute vector can address.
const MaxUniqueValues = math.MaxUint32

// NewAttributeVector allocates a vector of n entries with the narrowest width
// that can address uniqueValues dictionary entries: 1 byte up to 255 values,
// 2 bytes up to 65535, 4 bytes beyond. It fails with a *model.CapacityError if
// uniqueValues exceeds MaxUniqueValues.
func NewAttributeVector(uniqueValues, n int) (AttributeVector, error) {
	switch {
	case uniqueValues <= math.MaxUint8:
		return newFixedWidthVector[uint8](n), nil
	case uniqueValues <= math.MaxUint16:
		return newFixedWidthVector[uint16](n), nil
	case uint64(uniqueValues) <= MaxUniqueValues:
		return newFixedWidthVector[uint32](n), nil
	default:
		return nil, &model.CapacityError{UniqueValues: uint64(uniqueValues), Max: MaxUniqueValues}
	}
}

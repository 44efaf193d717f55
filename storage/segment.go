package storage

import (
	"unsafe"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/variant"
)

// Encoding identifies the concrete segment variant.
type Encoding uint8

const (
	// EncodingValue is an uncompressed, appendable ValueSegment.
	EncodingValue Encoding = iota
	// EncodingDictionary is an immutable DictionarySegment.
	EncodingDictionary
	// EncodingReference is an immutable ReferenceSegment.
	EncodingReference
)

// String returns the name of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingValue:
		return "value"
	case EncodingDictionary:
		return "dictionary"
	case EncodingReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Segment stores the rows of one column within one chunk.
//
// The set of implementations is closed: *ValueSegment[T],
// *DictionarySegment[T] and *ReferenceSegment. Code that needs the concrete
// variant switches on the type once per segment, never per row.
type Segment interface {
	// Size returns the number of rows.
	Size() int

	// Kind returns the declared type of the column the segment belongs to.
	Kind() variant.Kind

	// Encoding returns the concrete variant.
	Encoding() Encoding

	// ValueAt returns the logical value at offset.
	// It fails with a *model.OutOfRangeError if offset >= Size().
	ValueAt(offset model.ChunkOffset) (variant.Value, error)

	// Append adds a value at the end.
	// Dictionary and reference segments fail with a *model.ImmutableError.
	Append(v variant.Value) error

	// EstimateMemoryUsage returns the approximate payload size in bytes.
	EstimateMemoryUsage() int

	sealed()
}

func outOfRange(offset model.ChunkOffset, size int) error {
	return &model.OutOfRangeError{Offset: offset, Size: size}
}

// sizeOf estimates the bytes held by values: the fixed width of T per entry,
// plus the string bytes for string columns.
func sizeOf[T variant.Scalar](values []T) int {
	var zero T
	n := int(unsafe.Sizeof(zero)) * len(values)
	if strs, ok := any(values).([]string); ok {
		for _, s := range strs {
			n += len(s)
		}
	}
	return n
}

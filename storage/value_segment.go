package storage

import (
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/variant"
)

// ValueSegment stores values uncompressed; the slice index is the row offset.
type ValueSegment[T variant.Scalar] struct {
	values []T
}

// NewValueSegment creates an empty ValueSegment.
func NewValueSegment[T variant.Scalar]() *ValueSegment[T] {
	return &ValueSegment[T]{}
}

// Size returns the number of rows.
func (s *ValueSegment[T]) Size() int { return len(s.values) }

// Kind returns the kind of T.
func (s *ValueSegment[T]) Kind() variant.Kind { return variant.KindOf[T]() }

// Encoding returns EncodingValue.
func (s *ValueSegment[T]) Encoding() Encoding { return EncodingValue }

// ValueAt returns the value at offset.
func (s *ValueSegment[T]) ValueAt(offset model.ChunkOffset) (variant.Value, error) {
	v, err := s.Get(offset)
	if err != nil {
		return variant.Value{}, err
	}
	return variant.Of(v), nil
}

// Get returns the typed value at offset.
func (s *ValueSegment[T]) Get(offset model.ChunkOffset) (T, error) {
	if int(offset) >= len(s.values) {
		var zero T
		return zero, outOfRange(offset, len(s.values))
	}
	return s.values[offset], nil
}

// Append adds v at the end.
// It fails with a *model.TypeMismatchError if v is not of kind T.
func (s *ValueSegment[T]) Append(v variant.Value) error {
	x, err := variant.As[T](v)
	if err != nil {
		return err
	}
	s.AppendTyped(x)
	return nil
}

// AppendTyped adds x at the end.
func (s *ValueSegment[T]) AppendTyped(x T) {
	s.values = append(s.values, x)
}

// Values returns the stored values. The slice must not be modified.
func (s *ValueSegment[T]) Values() []T { return s.values }

// EstimateMemoryUsage returns the bytes held by the values.
func (s *ValueSegment[T]) EstimateMemoryUsage() int { return sizeOf(s.values) }

func (s *ValueSegment[T]) sealed() {}

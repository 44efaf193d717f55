package storage

import (
	"cmp"
	"slices"
	"sort"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/variant"
)

// DictionarySegment stores the distinct values of a column in a sorted
// dictionary and each row as the ValueID of its value.
//
// Because the dictionary is sorted, ValueID order mirrors value order, which
// lets range predicates compare ids instead of decoding rows.
// A DictionarySegment is immutable.
type DictionarySegment[T variant.Scalar] struct {
	dictionary []T
	attributes AttributeVector
}

// NewDictionarySegment encodes the logical values of src.
//
// src may be of any encoding, including another DictionarySegment; encoding
// the same values twice yields the same dictionary and ids. It fails with a
// *model.TypeMismatchError if src does not hold T and a *model.CapacityError
// if src has more than MaxUniqueValues distinct values.
func NewDictionarySegment[T variant.Scalar](src Segment) (*DictionarySegment[T], error) {
	values, err := materialize[T](src)
	if err != nil {
		return nil, err
	}

	dictionary := slices.Clone(values)
	slices.Sort(dictionary)
	dictionary = slices.CompactFunc(dictionary, func(a, b T) bool { return cmp.Compare(a, b) == 0 })
	dictionary = slices.Clip(dictionary)

	attributes, err := NewAttributeVector(len(dictionary), len(values))
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		id, _ := slices.BinarySearch(dictionary, v)
		if err := attributes.Set(model.ChunkOffset(i), model.ValueID(id)); err != nil {
			return nil, err
		}
	}

	return &DictionarySegment[T]{dictionary: dictionary, attributes: attributes}, nil
}

// materialize returns the logical values of src in row order.
func materialize[T variant.Scalar](src Segment) ([]T, error) {
	if err := kindCheck[T](src.Kind()); err != nil {
		return nil, err
	}

	switch s := src.(type) {
	case *ValueSegment[T]:
		return slices.Clone(s.values), nil
	case *DictionarySegment[T]:
		out := make([]T, s.Size())
		for i := range out {
			out[i] = s.dictionary[s.attributes.Get(model.ChunkOffset(i))]
		}
		return out, nil
	}

	out := make([]T, src.Size())
	for i := range out {
		v, err := src.ValueAt(model.ChunkOffset(i))
		if err != nil {
			return nil, err
		}
		if out[i], err = variant.As[T](v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func kindCheck[T variant.Scalar](got variant.Kind) error {
	if want := variant.KindOf[T](); got != want {
		return &model.TypeMismatchError{Expected: want.String(), Actual: got.String()}
	}
	return nil
}

// Size returns the number of rows.
func (s *DictionarySegment[T]) Size() int { return s.attributes.Len() }

// Kind returns the kind of T.
func (s *DictionarySegment[T]) Kind() variant.Kind { return variant.KindOf[T]() }

// Encoding returns EncodingDictionary.
func (s *DictionarySegment[T]) Encoding() Encoding { return EncodingDictionary }

// ValueAt returns the decoded value at offset.
func (s *DictionarySegment[T]) ValueAt(offset model.ChunkOffset) (variant.Value, error) {
	v, err := s.Get(offset)
	if err != nil {
		return variant.Value{}, err
	}
	return variant.Of(v), nil
}

// Get returns the decoded typed value at offset.
func (s *DictionarySegment[T]) Get(offset model.ChunkOffset) (T, error) {
	if int(offset) >= s.attributes.Len() {
		var zero T
		return zero, outOfRange(offset, s.attributes.Len())
	}
	return s.dictionary[s.attributes.Get(offset)], nil
}

// Append always fails: dictionary segments are immutable.
func (s *DictionarySegment[T]) Append(variant.Value) error {
	return &model.ImmutableError{Encoding: EncodingDictionary.String()}
}

// Dictionary returns the sorted distinct values. The slice must not be modified.
func (s *DictionarySegment[T]) Dictionary() []T { return s.dictionary }

// AttributeVector returns the row-to-ValueID mapping.
func (s *DictionarySegment[T]) AttributeVector() AttributeVector { return s.attributes }

// UniqueValuesCount returns the number of dictionary entries.
func (s *DictionarySegment[T]) UniqueValuesCount() int { return len(s.dictionary) }

// ValueByValueID returns the dictionary entry for id.
func (s *DictionarySegment[T]) ValueByValueID(id model.ValueID) (T, error) {
	if uint64(id) >= uint64(len(s.dictionary)) {
		var zero T
		return zero, &model.NotFoundError{What: "value id", ID: int(id)}
	}
	return s.dictionary[id], nil
}

// FindInDict returns the id of the entry equal to v, or InvalidValueID.
func (s *DictionarySegment[T]) FindInDict(v T) model.ValueID {
	i, found := slices.BinarySearch(s.dictionary, v)
	if !found {
		return model.InvalidValueID
	}
	return model.ValueID(i)
}

// LowerBound returns the id of the first entry >= v, or InvalidValueID.
func (s *DictionarySegment[T]) LowerBound(v T) model.ValueID {
	i, _ := slices.BinarySearch(s.dictionary, v)
	return s.boundID(i)
}

// UpperBound returns the id of the first entry > v, or InvalidValueID.
func (s *DictionarySegment[T]) UpperBound(v T) model.ValueID {
	i := sort.Search(len(s.dictionary), func(i int) bool {
		return cmp.Compare(s.dictionary[i], v) > 0
	})
	return s.boundID(i)
}

func (s *DictionarySegment[T]) boundID(i int) model.ValueID {
	if i >= len(s.dictionary) {
		return model.InvalidValueID
	}
	return model.ValueID(i)
}

// FindInDictValue is FindInDict for a boundary value.
func (s *DictionarySegment[T]) FindInDictValue(v variant.Value) (model.ValueID, error) {
	x, err := variant.As[T](v)
	if err != nil {
		return model.InvalidValueID, err
	}
	return s.FindInDict(x), nil
}

// LowerBoundValue is LowerBound for a boundary value.
func (s *DictionarySegment[T]) LowerBoundValue(v variant.Value) (model.ValueID, error) {
	x, err := variant.As[T](v)
	if err != nil {
		return model.InvalidValueID, err
	}
	return s.LowerBound(x), nil
}

// UpperBoundValue is UpperBound for a boundary value.
func (s *DictionarySegment[T]) UpperBoundValue(v variant.Value) (model.ValueID, error) {
	x, err := variant.As[T](v)
	if err != nil {
		return model.InvalidValueID, err
	}
	return s.UpperBound(x), nil
}

// EstimateMemoryUsage returns the bytes of the dictionary plus the attribute vector.
func (s *DictionarySegment[T]) EstimateMemoryUsage() int {
	return sizeOf(s.dictionary) + s.attributes.Len()*s.attributes.Width()
}

func (s *DictionarySegment[T]) sealed() {}

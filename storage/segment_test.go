package storage

import (
	"math"
	"testing"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valueSegmentOf[T variant.Scalar](xs ...T) *ValueSegment[T] {
	s := NewValueSegment[T]()
	for _, x := range xs {
		s.AppendTyped(x)
	}
	return s
}

func TestValueSegment(t *testing.T) {
	s := NewValueSegment[int32]()
	assert.Equal(t, EncodingValue, s.Encoding())
	assert.Equal(t, variant.KindInt32, s.Kind())
	assert.Equal(t, 0, s.Size())

	require.NoError(t, s.Append(variant.Int32(4)))
	require.NoError(t, s.Append(variant.Int32(-2)))
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []int32{4, -2}, s.Values())

	v, err := s.ValueAt(1)
	require.NoError(t, err)
	assert.Equal(t, variant.Int32(-2), v)

	_, err = s.ValueAt(2)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = s.Append(variant.Int64(1))
	assert.ErrorIs(t, err, model.ErrTypeMismatch)
	assert.Equal(t, 2, s.Size())

	err = s.Append(variant.Null())
	assert.ErrorIs(t, err, model.ErrTypeMismatch)

	assert.Equal(t, 8, s.EstimateMemoryUsage())
}

func TestValueSegmentStringMemory(t *testing.T) {
	s := valueSegmentOf("ab", "cde")
	// two string headers plus five bytes of data
	assert.Equal(t, 2*16+5, s.EstimateMemoryUsage())
}

func TestDictionarySegmentStrings(t *testing.T) {
	src := valueSegmentOf("Bill", "Steve", "Alexander", "Steve", "Hasso", "Bill")

	d, err := NewDictionarySegment[string](src)
	require.NoError(t, err)

	assert.Equal(t, EncodingDictionary, d.Encoding())
	assert.Equal(t, variant.KindString, d.Kind())
	assert.Equal(t, 6, d.Size())
	assert.Equal(t, 4, d.UniqueValuesCount())
	assert.Equal(t, []string{"Alexander", "Bill", "Hasso", "Steve"}, d.Dictionary())
	assert.Equal(t, 1, d.AttributeVector().Width())

	for i, want := range src.Values() {
		got, err := d.Get(model.ChunkOffset(i))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	v, err := d.ValueByValueID(3)
	require.NoError(t, err)
	assert.Equal(t, "Steve", v)

	_, err = d.ValueByValueID(4)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.Equal(t, model.ValueID(2), d.FindInDict("Hasso"))
	assert.Equal(t, model.InvalidValueID, d.FindInDict("Zed"))
}

func TestDictionarySegmentBounds(t *testing.T) {
	src := valueSegmentOf[int32](0, 2, 4, 6, 8, 10)
	d, err := NewDictionarySegment[int32](src)
	require.NoError(t, err)

	assert.Equal(t, model.ValueID(2), d.LowerBound(4))
	assert.Equal(t, model.ValueID(3), d.UpperBound(4))
	assert.Equal(t, model.ValueID(3), d.LowerBound(5))
	assert.Equal(t, model.ValueID(3), d.UpperBound(5))
	assert.Equal(t, model.InvalidValueID, d.LowerBound(15))
	assert.Equal(t, model.InvalidValueID, d.UpperBound(15))
	assert.Equal(t, model.ValueID(0), d.LowerBound(-3))
	assert.Equal(t, model.InvalidValueID, d.UpperBound(10))

	id, err := d.LowerBoundValue(variant.Int32(4))
	require.NoError(t, err)
	assert.Equal(t, model.ValueID(2), id)

	id, err = d.UpperBoundValue(variant.Int32(4))
	require.NoError(t, err)
	assert.Equal(t, model.ValueID(3), id)

	id, err = d.FindInDictValue(variant.Int32(6))
	require.NoError(t, err)
	assert.Equal(t, model.ValueID(3), id)

	_, err = d.FindInDictValue(variant.String("6"))
	assert.ErrorIs(t, err, model.ErrTypeMismatch)
}

func TestDictionarySegmentMemory(t *testing.T) {
	d, err := NewDictionarySegment[int32](valueSegmentOf[int32](1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, d.UniqueValuesCount())
	assert.Equal(t, 6, d.EstimateMemoryUsage())
}

func TestDictionarySegmentImmutable(t *testing.T) {
	d, err := NewDictionarySegment[int64](valueSegmentOf[int64](1, 2))
	require.NoError(t, err)

	err = d.Append(variant.Int64(3))
	assert.ErrorIs(t, err, model.ErrImmutable)
	assert.Equal(t, 2, d.Size())
}

func TestDictionarySegmentEmpty(t *testing.T) {
	d, err := NewDictionarySegment[float64](NewValueSegment[float64]())
	require.NoError(t, err)
	assert.Equal(t, 0, d.Size())
	assert.Equal(t, 0, d.UniqueValuesCount())
	assert.Equal(t, model.InvalidValueID, d.LowerBound(1))
	assert.Equal(t, model.InvalidValueID, d.FindInDict(1))
}

func TestDictionarySegmentNaN(t *testing.T) {
	nan := math.NaN()
	d, err := NewDictionarySegment[float64](valueSegmentOf(nan, 1.5, nan))
	require.NoError(t, err)
	assert.Equal(t, 2, d.UniqueValuesCount())

	got, err := d.Get(2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestDictionarySegmentWrongKind(t *testing.T) {
	_, err := NewDictionarySegment[int64](valueSegmentOf[int32](1))
	assert.ErrorIs(t, err, model.ErrTypeMismatch)
}

func TestCompressIsIdempotent(t *testing.T) {
	src := valueSegmentOf(3.5, 1.25, 3.5)

	first, err := Compress(src)
	require.NoError(t, err)
	second, err := Compress(first)
	require.NoError(t, err)

	a := first.(*DictionarySegment[float64])
	b := second.(*DictionarySegment[float64])
	assert.Equal(t, a.Dictionary(), b.Dictionary())
	for i := 0; i < src.Size(); i++ {
		off := model.ChunkOffset(i)
		assert.Equal(t, a.AttributeVector().Get(off), b.AttributeVector().Get(off))
	}
}

func TestCompressEveryKind(t *testing.T) {
	segments := []Segment{
		valueSegmentOf[int32](2, 1),
		valueSegmentOf[int64](2, 1),
		valueSegmentOf[float32](2, 1),
		valueSegmentOf[float64](2, 1),
		valueSegmentOf("b", "a"),
	}
	for _, src := range segments {
		out, err := Compress(src)
		require.NoError(t, err)
		assert.Equal(t, EncodingDictionary, out.Encoding())
		assert.Equal(t, src.Kind(), out.Kind())
		for i := 0; i < src.Size(); i++ {
			want, err := src.ValueAt(model.ChunkOffset(i))
			require.NoError(t, err)
			got, err := out.ValueAt(model.ChunkOffset(i))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestNewValueSegmentOf(t *testing.T) {
	for _, k := range variant.Kinds() {
		s, err := NewValueSegmentOf(k)
		require.NoError(t, err)
		assert.Equal(t, k, s.Kind())
		assert.Equal(t, EncodingValue, s.Encoding())
	}

	_, err := NewValueSegmentOf(variant.KindNull)
	assert.ErrorIs(t, err, model.ErrTypeMismatch)
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "value", EncodingValue.String())
	assert.Equal(t, "dictionary", EncodingDictionary.String())
	assert.Equal(t, "reference", EncodingReference.String())
}

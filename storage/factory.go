package storage

import (
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/variant"
)

// NewValueSegmentOf creates an empty ValueSegment for kind.
// It fails with a *model.TypeMismatchError if kind is not a column kind.
func NewValueSegmentOf(kind variant.Kind) (Segment, error) {
	if !kind.Valid() {
		return nil, &model.TypeMismatchError{Expected: "column type", Actual: kind.String()}
	}
	return variant.Dispatch[Segment](kind, valueSegmentFactory{}), nil
}

// Compress builds a DictionarySegment holding the logical values of src.
func Compress(src Segment) (Segment, error) {
	if !src.Kind().Valid() {
		return nil, &model.TypeMismatchError{Expected: "column type", Actual: src.Kind().String()}
	}
	r := variant.Dispatch[buildResult](src.Kind(), dictionaryFactory{src: src})
	return r.segment, r.err
}

type valueSegmentFactory struct{}

func (valueSegmentFactory) VisitInt32() Segment   { return NewValueSegment[int32]() }
func (valueSegmentFactory) VisitInt64() Segment   { return NewValueSegment[int64]() }
func (valueSegmentFactory) VisitFloat32() Segment { return NewValueSegment[float32]() }
func (valueSegmentFactory) VisitFloat64() Segment { return NewValueSegment[float64]() }
func (valueSegmentFactory) VisitString() Segment  { return NewValueSegment[string]() }

type buildResult struct {
	segment Segment
	err     error
}

type dictionaryFactory struct {
	src Segment
}

func (f dictionaryFactory) VisitInt32() buildResult   { return buildDictionary[int32](f.src) }
func (f dictionaryFactory) VisitInt64() buildResult   { return buildDictionary[int64](f.src) }
func (f dictionaryFactory) VisitFloat32() buildResult { return buildDictionary[float32](f.src) }
func (f dictionaryFactory) VisitFloat64() buildResult { return buildDictionary[float64](f.src) }
func (f dictionaryFactory) VisitString() buildResult  { return buildDictionary[string](f.src) }

func buildDictionary[T variant.Scalar](src Segment) buildResult {
	s, err := NewDictionarySegment[T](src)
	if err != nil {
		return buildResult{err: err}
	}
	return buildResult{segment: s}
}

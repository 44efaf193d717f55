package operator

import (
	"cmp"

	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/storage"
	"github.com/hupe1980/colstore/variant"
)

// chunkFilter adds the offsets of seg that satisfy the predicate to matches.
type chunkFilter interface {
	filter(seg storage.Segment, matches *matchSet) error
}

// typedFilter evaluates a predicate against a column of type T.
//
// Values are ordered by cmp.Compare in every encoding, so NaN equals NaN and
// sorts before all other floats.
type typedFilter[T variant.Scalar] struct {
	scanType ScanType
	search   T
}

func newTypedFilter[T variant.Scalar](scanType ScanType, search variant.Value) (chunkFilter, error) {
	x, err := variant.As[T](search)
	if err != nil {
		return nil, err
	}
	return &typedFilter[T]{scanType: scanType, search: x}, nil
}

func (f *typedFilter[T]) match(v T) bool {
	return f.scanType.holds(cmp.Compare(v, f.search))
}

func (f *typedFilter[T]) filter(seg storage.Segment, matches *matchSet) error {
	switch s := seg.(type) {
	case *storage.ValueSegment[T]:
		for i, v := range s.Values() {
			if f.match(v) {
				matches.add(i)
			}
		}
	case *storage.DictionarySegment[T]:
		f.filterDictionary(s, matches)
	case *storage.ReferenceSegment:
		return f.filterReference(s, matches)
	default:
		return &model.TypeMismatchError{Expected: variant.KindOf[T]().String(), Actual: seg.Kind().String()}
	}
	return nil
}

// filterDictionary compares ValueIDs against dictionary bounds of the search
// value. Id order equals value order because the dictionary is sorted.
func (f *typedFilter[T]) filterDictionary(s *storage.DictionarySegment[T], matches *matchSet) {
	av := s.AttributeVector()
	n := av.Len()

	var keep func(model.ValueID) bool
	switch f.scanType {
	case Equals:
		id := s.FindInDict(f.search)
		if id == model.InvalidValueID {
			return
		}
		keep = func(v model.ValueID) bool { return v == id }
	case NotEquals:
		id := s.FindInDict(f.search)
		if id == model.InvalidValueID {
			matches.addAll(n)
			return
		}
		keep = func(v model.ValueID) bool { return v != id }
	case LessThan, LessThanOrEqual:
		bound := s.LowerBound(f.search)
		if f.scanType == LessThanOrEqual {
			bound = s.UpperBound(f.search)
		}
		if bound == model.InvalidValueID {
			matches.addAll(n)
			return
		}
		keep = func(v model.ValueID) bool { return v < bound }
	case GreaterThan, GreaterThanOrEqual:
		bound := s.LowerBound(f.search)
		if f.scanType == GreaterThan {
			bound = s.UpperBound(f.search)
		}
		if bound == model.InvalidValueID {
			return
		}
		if bound == 0 {
			matches.addAll(n)
			return
		}
		keep = func(v model.ValueID) bool { return v >= bound }
	default:
		return
	}

	for i := 0; i < n; i++ {
		if keep(av.Get(model.ChunkOffset(i))) {
			matches.add(i)
		}
	}
}

// filterReference resolves every position to its value in the referenced
// table. Matches are recorded as offsets of s, not of the referenced table.
func (f *typedFilter[T]) filterReference(s *storage.ReferenceSegment, matches *matchSet) error {
	for i := 0; i < s.Size(); i++ {
		v, err := s.ValueAt(model.ChunkOffset(i))
		if err != nil {
			return err
		}
		x, err := variant.As[T](v)
		if err != nil {
			return err
		}
		if f.match(x) {
			matches.add(i)
		}
	}
	return nil
}

type filterResult struct {
	filter chunkFilter
	err    error
}

// filterFactory binds the column type once per scan.
type filterFactory struct {
	scanType ScanType
	search   variant.Value
}

func (f filterFactory) VisitInt32() filterResult   { return buildFilter[int32](f) }
func (f filterFactory) VisitInt64() filterResult   { return buildFilter[int64](f) }
func (f filterFactory) VisitFloat32() filterResult { return buildFilter[float32](f) }
func (f filterFactory) VisitFloat64() filterResult { return buildFilter[float64](f) }
func (f filterFactory) VisitString() filterResult  { return buildFilter[string](f) }

func buildFilter[T variant.Scalar](f filterFactory) filterResult {
	flt, err := newTypedFilter[T](f.scanType, f.search)
	return filterResult{filter: flt, err: err}
}

package variant

import (
	"cmp"

	"github.com/hupe1980/colstore/model"
)

// Scalar is the set of Go types a column can hold.
type Scalar interface {
	int32 | int64 | float32 | float64 | string
}

// KindOf returns the kind that corresponds to T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindString
	}
}

// Of wraps a typed value into a Value.
func Of[T Scalar](x T) Value {
	switch v := any(x).(type) {
	case int32:
		return Int32(v)
	case int64:
		return Int64(v)
	case float32:
		return Float32(v)
	case float64:
		return Float64(v)
	case string:
		return String(v)
	}
	return Null()
}

// As converts v into T.
//
// It fails with a *model.TypeMismatchError if v does not hold exactly T.
func As[T Scalar](v Value) (T, error) {
	var out T
	if want := KindOf[T](); v.kind != want {
		return out, mismatch(want, v.kind)
	}
	switch p := any(&out).(type) {
	case *int32:
		*p = int32(v.i)
	case *int64:
		*p = v.i
	case *float32:
		*p = float32(v.f)
	case *float64:
		*p = v.f
	case *string:
		*p = v.s
	}
	return out, nil
}

// Check fails with a *model.TypeMismatchError if v is not of kind want.
func Check(want Kind, v Value) error {
	if v.kind != want {
		return mismatch(want, v.kind)
	}
	return nil
}

// Compare orders two values of the same kind.
//
// It returns -1, 0 or +1 like cmp.Compare, and a *model.TypeMismatchError if
// the kinds differ or either value is empty.
func Compare(a, b Value) (int, error) {
	if a.kind != b.kind || a.kind == KindNull {
		return 0, mismatch(a.kind, b.kind)
	}
	switch a.kind {
	case KindInt32, KindInt64:
		return cmp.Compare(a.i, b.i), nil
	case KindFloat32, KindFloat64:
		return cmp.Compare(a.f, b.f), nil
	default:
		return cmp.Compare(a.s, b.s), nil
	}
}

func mismatch(want, got Kind) error {
	return &model.TypeMismatchError{Expected: want.String(), Actual: got.String()}
}

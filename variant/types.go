package variant

import (
	"strconv"

	"github.com/hupe1980/colstore/model"
)

// Kind identifies the concrete type stored in a Value, and doubles as the
// declared type tag of a column.
type Kind uint8

const (
	// KindNull represents an empty value.
	KindNull Kind = iota
	// KindInt32 represents a 32-bit integer.
	KindInt32
	// KindInt64 represents a 64-bit integer.
	KindInt64
	// KindFloat32 represents a single-precision float.
	KindFloat32
	// KindFloat64 represents a double-precision float.
	KindFloat64
	// KindString represents a string.
	KindString
)

var kindNames = [...]string{
	KindNull:    "null",
	KindInt32:   "int",
	KindInt64:   "long",
	KindFloat32: "float",
	KindFloat64: "double",
	KindString:  "string",
}

// String returns the type tag of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is a column kind (every kind except KindNull).
func (k Kind) Valid() bool {
	return k >= KindInt32 && k <= KindString
}

// Kinds returns all column kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindInt32, KindInt64, KindFloat32, KindFloat64, KindString}
}

// ParseKind returns the kind for a type tag such as "int" or "string".
func ParseKind(tag string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == tag {
			return k, nil
		}
	}
	return KindNull, &model.NotFoundError{What: "data type", Name: tag}
}

// Value is a tagged union holding one supported kind or nothing.
//
// The zero Value is empty (KindNull). Values are immutable.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Null returns an empty Value.
func Null() Value { return Value{} }

// Int32 returns an int32 Value.
func Int32(v int32) Value { return Value{kind: KindInt32, i: int64(v)} }

// Int64 returns an int64 Value.
func Int64(v int64) Value { return Value{kind: KindInt64, i: v} }

// Float32 returns a float32 Value.
func Float32(v float32) Value { return Value{kind: KindFloat32, f: float64(v)} }

// Float64 returns a float64 Value.
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the kind of the stored value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is empty.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Interface returns the stored value as its Go type, or nil if empty.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt32:
		return int32(v.i)
	case KindInt64:
		return v.i
	case KindFloat32:
		return float32(v.f)
	case KindFloat64:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// String formats the stored value.
func (v Value) String() string {
	switch v.kind {
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return "null"
	}
}

package variant

import "fmt"

// Visitor is implemented by operations that are generic over the column type.
//
// Each method is the operation with one concrete type bound. Implementations
// usually forward to a single generic function:
//
//	type newSegment struct{}
//
//	func (newSegment) VisitInt32() Segment { return NewValueSegment[int32]() }
//	func (newSegment) VisitInt64() Segment { return NewValueSegment[int64]() }
//	// ...
type Visitor[R any] interface {
	VisitInt32() R
	VisitInt64() R
	VisitFloat32() R
	VisitFloat64() R
	VisitString() R
}

// Dispatch calls the method of v that matches k.
//
// Every column kind is covered. Dispatching KindNull or an undeclared kind is
// a programming error and panics.
func Dispatch[R any](k Kind, v Visitor[R]) R {
	switch k {
	case KindInt32:
		return v.VisitInt32()
	case KindInt64:
		return v.VisitInt64()
	case KindFloat32:
		return v.VisitFloat32()
	case KindFloat64:
		return v.VisitFloat64()
	case KindString:
		return v.VisitString()
	default:
		panic(fmt.Sprintf("variant: cannot dispatch %s", k))
	}
}

// Package variant provides the boundary value type of colstore.
//
// A Value carries exactly one of the supported column kinds, or nothing:
//
//	v := variant.Int32(42)
//	s := variant.String("Hasso")
//	var empty variant.Value // KindNull
//
// Values cross the table/operator boundary wherever the concrete Go type is
// not known statically: appended rows and scan search values. Inside typed
// code, As converts a Value into the bound Go type and fails with a
// model.TypeMismatchError if the stored kind differs. There is no implicit
// coercion: an Int32 never casts to int64.
//
// # Supported Kinds
//
//	Kind         tag       Go type
//	KindInt32    "int"     int32
//	KindInt64    "long"    int64
//	KindFloat32  "float"   float32
//	KindFloat64  "double"  float64
//	KindString   "string"  string
//
// # Type Dispatch
//
// Dispatch binds a Kind to its Go type by calling the matching method of a
// Visitor. Callers resolve the type once per segment or scan and then run
// fully typed code, never switching on the kind per row.
package variant

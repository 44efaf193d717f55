package model

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema is returned when an operation conflicts with the table schema.
	ErrSchema = errors.New("schema error")

	// ErrNotFound is returned when a column, table, chunk or row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange is returned when an offset is beyond the end of a segment.
	// Every out-of-range error also matches ErrNotFound.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrImmutable is returned when appending to a dictionary or reference segment.
	ErrImmutable = errors.New("segment is immutable")

	// ErrTypeMismatch is returned when a value's kind differs from the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrCapacity is returned when a dictionary exceeds the widest attribute vector.
	ErrCapacity = errors.New("capacity exceeded")
)

// SchemaError reports a schema violation.
type SchemaError struct {
	Op       string
	Column   string
	Expected int
	Actual   int
	Reason   string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("schema error: %s column %q: %s", e.Op, e.Column, e.Reason)
	case e.Expected != e.Actual:
		return fmt.Sprintf("schema error: %s: %s: expected %d, got %d", e.Op, e.Reason, e.Expected, e.Actual)
	default:
		return fmt.Sprintf("schema error: %s: %s", e.Op, e.Reason)
	}
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// NotFoundError reports a missing column, table or chunk.
//
// Name is set for lookups by name, ID for lookups by position.
type NotFoundError struct {
	What string
	Name string
	ID   int
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q not found", e.What, e.Name)
	}
	return fmt.Sprintf("%s %d not found", e.What, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// OutOfRangeError reports an offset >= the size of a segment or position list.
type OutOfRangeError struct {
	Offset ChunkOffset
	Size   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("offset %d out of range: size %d", e.Offset, e.Size)
}

func (e *OutOfRangeError) Unwrap() []error { return []error{ErrOutOfRange, ErrNotFound} }

// ImmutableError reports an append on a segment that does not accept writes.
type ImmutableError struct {
	Encoding string
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("cannot append to immutable %s segment", e.Encoding)
}

func (e *ImmutableError) Unwrap() error { return ErrImmutable }

// TypeMismatchError reports a value whose kind differs from the expected type.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// CapacityError reports a dictionary with more distinct values than the
// widest attribute vector can address.
type CapacityError struct {
	UniqueValues uint64
	Max          uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("dictionary capacity exceeded: %d unique values, max %d", e.UniqueValues, e.Max)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

package colstore

import (
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/operator"
)

// Sentinel errors. Every error returned by this module matches one of them
// through errors.Is; the typed errors in package model carry the details.
var (
	// ErrSchema is returned for column count, name or length violations.
	ErrSchema = model.ErrSchema

	// ErrNotFound is returned for unknown tables, columns, chunks and ids.
	ErrNotFound = model.ErrNotFound

	// ErrOutOfRange is returned for offsets beyond the end of a segment.
	ErrOutOfRange = model.ErrOutOfRange

	// ErrImmutable is returned when appending to a dictionary or reference segment.
	ErrImmutable = model.ErrImmutable

	// ErrTypeMismatch is returned when a value is not of the column's kind.
	ErrTypeMismatch = model.ErrTypeMismatch

	// ErrCapacity is returned when a dictionary exceeds the attribute vector width.
	ErrCapacity = model.ErrCapacity

	// ErrAlreadyExecuted is returned when an operator is executed twice.
	ErrAlreadyExecuted = operator.ErrAlreadyExecuted

	// ErrNotExecuted is returned when an operator's input has no output.
	ErrNotExecuted = operator.ErrNotExecuted
)

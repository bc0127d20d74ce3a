package flagfield

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel matched by errors.Is against any
// *OutOfRangeError raised under the Strict policy.
var ErrOutOfRange = errors.New("flag index out of range")

// OutOfRangeError reports a flag index at or beyond the field's capacity.
// Under the Strict policy it is the value passed to panic; it is
// recoverable and matches ErrOutOfRange via errors.Is.
type OutOfRangeError struct {
	Index    uint64
	Capacity int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("flagfield: index %d out of range [0, %d)", e.Index, e.Capacity)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// BufferSizeError reports a LoadBytes buffer whose length does not match
// the field's storage size.
type BufferSizeError struct {
	Got  int
	Want int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("flagfield: buffer is %d bytes, want %d", e.Got, e.Want)
}

// CapacityMismatchError is the panic value raised when two fields of
// different capacities meet in a binary operation. The original design
// rejects this combination at compile time; with capacity fixed at
// construction it surfaces here instead.
type CapacityMismatchError struct {
	Have int
	Want int
}

func (e *CapacityMismatchError) Error() string {
	return fmt.Sprintf("flagfield: capacity mismatch: %d vs %d", e.Have, e.Want)
}

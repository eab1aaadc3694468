package groupseq

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGroupKey is returned when an item resolves to a nil group key.
	// Group keys must be usable as map keys for the lifetime of the
	// collection, so nil keys are rejected at the door.
	ErrNilGroupKey = errors.New("group key must be non-nil")
)

// ErrIndexOutOfRange indicates a flat index outside the valid range of a
// mutating operation. Reads report missing indices via their ok result
// instead.
type ErrIndexOutOfRange struct {
	Index int
	Count int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with count %d", e.Index, e.Count)
}

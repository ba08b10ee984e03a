package packbits

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptSnapshot is returned when decoded storage fails invariant
	// verification or the frame is structurally malformed.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// ErrCountMismatch indicates that a set's cached cardinality disagrees with
// the population of its storage. It signals an implementation bug, never a
// usage error.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCountMismatch struct {
	Cached int
	Actual int
	cause  error
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("count mismatch: cached %d, storage holds %d", e.Cached, e.Actual)
}

func (e *ErrCountMismatch) Unwrap() error { return e.cause }

// ErrNotCanonical indicates that storage ends in an all-zero word.
type ErrNotCanonical struct {
	WordCount int
}

func (e *ErrNotCanonical) Error() string {
	return fmt.Sprintf("not canonical: trailing all-zero word at index %d", e.WordCount-1)
}

// ErrUnknownCompression indicates a snapshot codec tag this build does not
// understand.
type ErrUnknownCompression struct {
	Codec uint8
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("unknown compression codec: %d", e.Codec)
}

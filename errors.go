package bigseq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned by New for unusable settings,
	// most importantly a segment capacity below 1.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIndexOutOfRange is returned for an index outside the range an
	// operation permits. The sequence is unchanged by the rejected call.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStorage is returned when the backing store cannot be read or
	// written during a segment switch, flush or truncation.
	ErrStorage = errors.New("storage failure")

	// ErrCorrupted is returned by every operation after a storage failure
	// interrupted an insert or remove half way through its shift.
	ErrCorrupted = errors.New("sequence corrupted by interrupted shift")

	// ErrClosed is returned by operations on a closed sequence.
	ErrClosed = errors.New("sequence is closed")
)

// InvalidConfigurationError reports which setting was rejected.
//
// It matches ErrInvalidConfiguration via errors.Is.
type InvalidConfigurationError struct {
	Field string
	Value any
	cause error
}

func (e *InvalidConfigurationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid configuration: %s=%v: %v", e.Field, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid configuration: %s=%v", e.Field, e.Value)
}

func (e *InvalidConfigurationError) Is(target error) bool { return target == ErrInvalidConfiguration }

func (e *InvalidConfigurationError) Unwrap() error { return e.cause }

// IndexOutOfRangeError carries the rejected index and the size at the time.
//
// It matches ErrIndexOutOfRange via errors.Is.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d (size %d)", e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

// StorageError describes a failed store operation.
//
// It matches ErrStorage via errors.Is; the store's error is available via
// errors.Unwrap.
type StorageError struct {
	Op      string // open, truncate, flush, load, sync or close
	Segment int64  // -1 when the operation is not tied to a segment
	cause   error
}

func (e *StorageError) Error() string {
	if e.Segment < 0 {
		return fmt.Sprintf("storage failure: %s: %v", e.Op, e.cause)
	}
	return fmt.Sprintf("storage failure: %s segment %d: %v", e.Op, e.Segment, e.cause)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func (e *StorageError) Unwrap() error { return e.cause }

// corruptedError wraps the storage failure that interrupted a shift.
type corruptedError struct {
	cause error
}

func (e *corruptedError) Error() string {
	return fmt.Sprintf("%v: %v", ErrCorrupted, e.cause)
}

func (e *corruptedError) Unwrap() []error { return []error{ErrCorrupted, e.cause} }

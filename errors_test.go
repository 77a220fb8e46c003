package bigseq

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("InvalidConfiguration", func(t *testing.T) {
		err := &InvalidConfigurationError{Field: "segmentCapacity", Value: 0}
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Equal(t, "invalid configuration: segmentCapacity=0", err.Error())

		wrapped := &InvalidConfigurationError{Field: "segmentCapacity", Value: 9, cause: io.ErrShortBuffer}
		assert.ErrorIs(t, wrapped, io.ErrShortBuffer)
		assert.Contains(t, wrapped.Error(), "short buffer")
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		err := &IndexOutOfRangeError{Index: 5, Size: 5}
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.NotErrorIs(t, err, ErrStorage)
		assert.Equal(t, "index out of range: 5 (size 5)", err.Error())
	})

	t.Run("Storage", func(t *testing.T) {
		err := &StorageError{Op: "load", Segment: 3, cause: io.ErrUnexpectedEOF}
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Equal(t, "storage failure: load segment 3: unexpected EOF", err.Error())

		err = &StorageError{Op: "sync", Segment: -1, cause: io.ErrClosedPipe}
		assert.Equal(t, "storage failure: sync: io: read/write on closed pipe", err.Error())
	})

	t.Run("Corrupted", func(t *testing.T) {
		cause := &StorageError{Op: "flush", Segment: 1, cause: io.ErrShortWrite}
		err := &corruptedError{cause: cause}
		assert.ErrorIs(t, err, ErrCorrupted)
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, io.ErrShortWrite)

		var storageErr *StorageError
		assert.True(t, errors.As(err, &storageErr))
		assert.Equal(t, int64(1), storageErr.Segment)
	})
}

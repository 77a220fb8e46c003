package bigseq

import (
	"context"
	"errors"
)

// Flush writes the resident segment to the store and syncs it.
//
// Without Flush (or Close) the resident segment exists only in memory.
func (s *Sequence) Flush(ctx context.Context) error {
	if err := s.usable(); err != nil {
		return err
	}
	return s.pager.sync(ctx)
}

// Close flushes the resident segment, closes the store and releases the
// memory reservation. Calling Close again is a no-op.
//
// A sequence made unusable by an interrupted shift is closed without
// flushing.
func (s *Sequence) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	ctx := context.Background()

	var errs []error
	if s.err == nil {
		if err := s.pager.sync(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.pager.store.Close(); err != nil {
		errs = append(errs, &StorageError{Op: "close", Segment: noSegment, cause: err})
	}

	s.rc.ReleaseMemory(s.memory)

	err := errors.Join(errs...)
	s.logger.LogClose(ctx, s.size, err)
	return err
}

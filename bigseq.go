package bigseq

import (
	"context"
	"errors"

	"github.com/hupe1980/bigseq/internal/conv"
	"github.com/hupe1980/bigseq/resource"
	"github.com/hupe1980/bigseq/slotstore"
)

const (
	opInsert = "insert"
	opRemove = "remove"
)

// Sequence is an ordered, indexable sequence of int64 values backed by a
// slot store, with one segment of SegmentCapacity elements in memory.
//
// A Sequence is not safe for concurrent use.
type Sequence struct {
	pager *pager
	size  int

	logger  *Logger
	metrics MetricsCollector
	rc      *resource.Controller
	memory  int64 // bytes reserved with rc

	err     error // set when an interrupted shift left the contents inconsistent
	iterErr error
	closed  bool
}

// New creates an empty sequence with the given segment capacity.
//
// The backing store is truncated. By default it is the file DefaultPath in
// the working directory; see WithPath and WithStore.
func New(ctx context.Context, segmentCapacity int, optFns ...Option) (*Sequence, error) {
	if segmentCapacity < 1 {
		return nil, &InvalidConfigurationError{Field: "segmentCapacity", Value: segmentCapacity}
	}

	bufBytes, err := conv.BytesFor(segmentCapacity, elemSize)
	if err != nil {
		return nil, &InvalidConfigurationError{Field: "segmentCapacity", Value: segmentCapacity, cause: err}
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if limit := o.rc.MemoryLimit(); limit > 0 && int64(bufBytes) > limit {
		return nil, &InvalidConfigurationError{Field: "segmentCapacity", Value: segmentCapacity,
			cause: errors.New("segment buffer exceeds the resource controller's memory limit")}
	}

	store := o.store
	owned := false
	if store == nil {
		fsys := o.fileSystem
		fstore, err := slotstore.OpenFile(o.path, func(fo *slotstore.FileOptions) {
			if fsys != nil {
				fo.FileSystem = fsys
			}
		})
		if err != nil {
			return nil, &StorageError{Op: "open", Segment: noSegment, cause: err}
		}
		store, owned = fstore, true
	}

	fail := func(err error) (*Sequence, error) {
		if owned {
			_ = store.Close()
		}
		return nil, err
	}

	if err := o.rc.AcquireMemory(ctx, int64(bufBytes)); err != nil {
		return fail(err)
	}

	if o.rc != nil {
		store = slotstore.NewThrottled(store, o.rc)
	}

	if err := store.Truncate(ctx); err != nil {
		o.rc.ReleaseMemory(int64(bufBytes))
		return fail(&StorageError{Op: "truncate", Segment: noSegment, cause: err})
	}

	logger := o.logger.WithCapacity(segmentCapacity)
	o.logger = logger

	return &Sequence{
		pager:   newPager(store, segmentCapacity, &o),
		logger:  logger,
		metrics: o.metricsCollector,
		rc:      o.rc,
		memory:  int64(bufBytes),
	}, nil
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return s.size
}

// SegmentCapacity returns the number of elements per segment.
func (s *Sequence) SegmentCapacity() int {
	return s.pager.capacity
}

// ActiveSegment returns the index of the resident segment, or -1 if a
// failed load left none resident.
func (s *Sequence) ActiveSegment() int64 {
	return s.pager.active
}

// Err returns the error that stopped the last iteration started by All or
// Values, or nil if it ran to completion or was stopped by the caller.
func (s *Sequence) Err() error {
	return s.iterErr
}

func (s *Sequence) usable() error {
	if s.closed {
		return ErrClosed
	}
	return s.err
}

func (s *Sequence) checkIndex(i, limit int) error {
	if i < 0 || i >= limit {
		return &IndexOutOfRangeError{Index: i, Size: s.size}
	}
	return nil
}

// resolve makes the segment holding i resident and returns i's local offset.
func (s *Sequence) resolve(i int) (int, error) {
	seg, off := s.pager.locate(i)
	if err := s.pager.switchTo(seg); err != nil {
		return 0, err
	}
	return off, nil
}

// Get returns the element at index i.
func (s *Sequence) Get(i int) (int64, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	if err := s.checkIndex(i, s.size); err != nil {
		return 0, err
	}
	off, err := s.resolve(i)
	if err != nil {
		return 0, err
	}
	return s.pager.read(off), nil
}

// Set replaces the element at index i and returns the previous value.
//
// The change stays in memory until its segment is switched out or the
// sequence is flushed.
func (s *Sequence) Set(i int, v int64) (int64, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	if err := s.checkIndex(i, s.size); err != nil {
		return 0, err
	}
	off, err := s.resolve(i)
	if err != nil {
		return 0, err
	}
	return s.pager.swap(off, v), nil
}

// Append adds v at the end.
func (s *Sequence) Append(v int64) error {
	if err := s.usable(); err != nil {
		return err
	}
	off, err := s.resolve(s.size)
	if err != nil {
		return err
	}
	s.pager.write(off, v)
	s.size++
	return nil
}

// Insert places v at index i, shifting every element at i or later one
// position up. i may equal Len.
func (s *Sequence) Insert(i int, v int64) error {
	if err := s.usable(); err != nil {
		return err
	}
	if err := s.checkIndex(i, s.size+1); err != nil {
		return err
	}

	c := cursor{p: s.pager}
	if err := c.seek(i); err != nil {
		return err
	}

	// Carry the displaced value forward through every position up to and
	// including the old end.
	carry := c.swap(v)
	for c.pos < s.size {
		if err := c.next(); err != nil {
			return s.interrupted(opInsert, i, err)
		}
		carry = c.swap(carry)
	}

	s.metrics.RecordShift(opInsert, s.size-i)
	s.size++
	return nil
}

// Remove deletes the element at index i, shifting every later element one
// position down, and returns the removed value.
func (s *Sequence) Remove(i int) (int64, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	if err := s.checkIndex(i, s.size); err != nil {
		return 0, err
	}

	c := cursor{p: s.pager}
	if err := c.seek(s.size - 1); err != nil {
		return 0, err
	}

	// Carry values backward from the last element down to i. Nothing is
	// written until the cursor has stepped below the last element.
	carry := c.value()
	for c.pos > i {
		if err := c.prev(); err != nil {
			if c.pos == s.size-1 {
				return 0, err
			}
			return 0, s.interrupted(opRemove, i, err)
		}
		carry = c.swap(carry)
	}

	s.metrics.RecordShift(opRemove, s.size-1-i)
	s.size--
	return carry, nil
}

// interrupted marks the sequence unusable after a shift failed half way.
func (s *Sequence) interrupted(op string, i int, cause error) error {
	s.err = &corruptedError{cause: cause}
	s.logger.LogCorrupted(context.Background(), op, i, s.size, cause)
	return s.err
}

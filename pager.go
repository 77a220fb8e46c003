package bigseq

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/hupe1980/bigseq/slotstore"
)

// elemSize is the encoded width of one element.
const elemSize = 8

// noSegment marks the pager as holding no segment. It is only entered after
// a load failed, so the buffer contents are meaningless.
const noSegment int64 = -1

// pager keeps exactly one segment of the sequence resident.
//
// Its only transition is switchTo, which always writes the resident segment
// back to its slot before reading the target slot.
type pager struct {
	store    slotstore.Store
	buf      []byte
	capacity int
	active   int64

	ioTimeout   time.Duration
	syncOnFlush bool
	logger      *Logger
	metrics     MetricsCollector
}

func newPager(store slotstore.Store, capacity int, o *options) *pager {
	return &pager{
		store:       store,
		buf:         make([]byte, capacity*elemSize),
		capacity:    capacity,
		active:      0,
		ioTimeout:   o.ioTimeout,
		syncOnFlush: o.syncOnFlush,
		logger:      o.logger,
		metrics:     o.metricsCollector,
	}
}

// locate splits a logical index into segment and local offset.
func (p *pager) locate(i int) (int64, int) {
	return int64(i / p.capacity), i % p.capacity
}

func (p *pager) ioContext(parent context.Context) (context.Context, context.CancelFunc) {
	if p.ioTimeout > 0 {
		return context.WithTimeout(parent, p.ioTimeout)
	}
	return parent, func() {}
}

// switchTo makes seg the resident segment. It is a no-op when seg already
// is resident.
//
// A failed flush leaves the current segment resident. A failed load leaves
// no segment resident, so the next switch reads without writing.
func (p *pager) switchTo(seg int64) error {
	if seg == p.active {
		return nil
	}

	ctx, cancel := p.ioContext(context.Background())
	defer cancel()

	start := time.Now()
	from := p.active

	if p.active != noSegment {
		if err := p.flush(ctx); err != nil {
			p.metrics.RecordSwitch(time.Since(start), err)
			return err
		}
	}

	p.active = noSegment

	found, err := p.load(ctx, seg)
	if err != nil {
		p.metrics.RecordSwitch(time.Since(start), err)
		return err
	}

	p.active = seg

	d := time.Since(start)
	p.metrics.RecordSwitch(d, nil)
	p.logger.LogSwitch(ctx, from, seg, found, d)

	return nil
}

// flush writes the resident segment to its slot.
func (p *pager) flush(ctx context.Context) error {
	start := time.Now()

	err := p.store.WriteSlot(ctx, p.active, p.buf)
	if err == nil && p.syncOnFlush {
		err = p.store.Sync(ctx)
	}

	p.metrics.RecordFlush(len(p.buf), time.Since(start), err)

	if err != nil {
		p.logger.LogStorageFailure(ctx, "flush", p.active, err)
		return &StorageError{Op: "flush", Segment: p.active, cause: err}
	}
	return nil
}

// load reads seg's slot into the buffer, zero-filling it when the store has
// no data for the slot.
func (p *pager) load(ctx context.Context, seg int64) (bool, error) {
	start := time.Now()

	found, err := p.store.ReadSlot(ctx, seg, p.buf)
	if err == nil && !found {
		clear(p.buf)
	}

	p.metrics.RecordLoad(len(p.buf), found, time.Since(start), err)

	if err != nil {
		p.logger.LogStorageFailure(ctx, "load", seg, err)
		return false, &StorageError{Op: "load", Segment: seg, cause: err}
	}
	return found, nil
}

// sync flushes the resident segment, if any, and syncs the store.
func (p *pager) sync(ctx context.Context) error {
	ctx, cancel := p.ioContext(ctx)
	defer cancel()

	if p.active != noSegment {
		if err := p.flush(ctx); err != nil {
			return err
		}
	}
	if err := p.store.Sync(ctx); err != nil {
		p.logger.LogStorageFailure(ctx, "sync", noSegment, err)
		return &StorageError{Op: "sync", Segment: noSegment, cause: err}
	}
	return nil
}

func (p *pager) read(off int) int64 {
	return int64(binary.LittleEndian.Uint64(p.buf[off*elemSize:]))
}

func (p *pager) write(off int, v int64) {
	binary.LittleEndian.PutUint64(p.buf[off*elemSize:], uint64(v))
}

// swap stores v at off and returns the value it replaced.
func (p *pager) swap(off int, v int64) int64 {
	old := p.read(off)
	p.write(off, v)
	return old
}

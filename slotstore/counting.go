package slotstore

import (
	"context"
	"sync/atomic"
)

// Counting wraps a store and counts slot operations that reach it.
type Counting struct {
	Store

	reads        atomic.Int64
	misses       atomic.Int64
	writes       atomic.Int64
	bytesRead    atomic.Int64
	bytesWritten atomic.Int64
}

// NewCounting wraps s.
func NewCounting(s Store) *Counting {
	return &Counting{Store: s}
}

// CountingStats is a snapshot of a Counting store's counters.
type CountingStats struct {
	Reads        int64 // ReadSlot calls that found data
	Misses       int64 // ReadSlot calls for absent slots
	Writes       int64
	BytesRead    int64
	BytesWritten int64
}

// Ops returns the total number of slot reads (including misses) and writes.
func (s CountingStats) Ops() int64 {
	return s.Reads + s.Misses + s.Writes
}

// Stats returns the current counters.
func (c *Counting) Stats() CountingStats {
	return CountingStats{
		Reads:        c.reads.Load(),
		Misses:       c.misses.Load(),
		Writes:       c.writes.Load(),
		BytesRead:    c.bytesRead.Load(),
		BytesWritten: c.bytesWritten.Load(),
	}
}

// Reset zeroes all counters.
func (c *Counting) Reset() {
	c.reads.Store(0)
	c.misses.Store(0)
	c.writes.Store(0)
	c.bytesRead.Store(0)
	c.bytesWritten.Store(0)
}

func (c *Counting) ReadSlot(ctx context.Context, slot int64, p []byte) (bool, error) {
	found, err := c.Store.ReadSlot(ctx, slot, p)
	if err != nil {
		return found, err
	}
	if found {
		c.reads.Add(1)
		c.bytesRead.Add(int64(len(p)))
	} else {
		c.misses.Add(1)
	}
	return found, nil
}

func (c *Counting) WriteSlot(ctx context.Context, slot int64, p []byte) error {
	if err := c.Store.WriteSlot(ctx, slot, p); err != nil {
		return err
	}
	c.writes.Add(1)
	c.bytesWritten.Add(int64(len(p)))
	return nil
}

// Package bigseq provides an int64 sequence that can grow far beyond
// available memory.
//
// A Sequence divides its elements into fixed-size segments. Exactly one
// segment is held in memory; every other segment lives in a slot of a
// backing store (a flat file by default, see package slotstore for others).
// Addressing an element in another segment performs a segment switch: the
// resident segment is written back to its slot, then the target slot is read
// (or zero-filled when the store has never seen it).
//
// # Quick Start
//
//	ctx := context.Background()
//	seq, _ := bigseq.New(ctx, 4096, bigseq.WithPath("/tmp/numbers.bin"))
//	defer seq.Close()
//
//	for i := range 15000 {
//	    _ = seq.Append(int64(i))
//	}
//	_ = seq.Insert(10, -1)       // shifts 10.. up by one
//	v, _ := seq.Remove(10)       // v == -1
//	x, _ := seq.Get(14999)       // x == 14999
//
// # Cost Model
//
// A switch always costs one full-segment write plus at most one
// full-segment read, however close the two segments are. Accesses within
// the resident segment cost no I/O. Insert and Remove move every element
// between the index and the end, switching once per segment crossed, so
// they are O(Len-i) element moves.
//
// # File Format
//
// Slot s occupies bytes [s*c*8, (s+1)*c*8) of the backing file, where c is
// the segment capacity, and holds c little-endian int64 values. There is no
// header: the same capacity must be supplied to interpret the file again.
// Slots past the end of the file read as zero; the file grows as segments
// are first written back and never shrinks.
//
// # Durability
//
// Set does not write through. The resident segment reaches the store when
// it is switched out, on Flush, and on Close. Nothing else is guaranteed:
// a crash loses the resident segment.
//
// # Errors
//
// Storage failures are returned as *StorageError (matching ErrStorage).
// A failed switch leaves the sequence usable and the call may be retried.
// If a failure interrupts Insert or Remove half way, elements are left
// partially shifted and every later call returns an error matching
// ErrCorrupted.
//
// # Concurrency
//
// A Sequence must not be used from more than one goroutine at a time.
package bigseq

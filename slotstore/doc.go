// Package slotstore provides the backing stores that hold spilled segments.
//
// A Store is a randomly-addressable array of fixed-size slots. Slot s holds
// the bytes of segment s; the slot size is the length of the buffer passed to
// ReadSlot/WriteSlot and must be the same for every call on one store.
// Slots that were never written read as absent, and the caller treats them
// as all-zero.
//
// # Built-in Implementations
//
//   - FileStore: a single flat file, slot s at byte offset s*slotSize
//   - MappedStore: the same file layout accessed through a shared mapping
//   - MemoryStore: the same layout in a byte slice, for tests
//   - minio.Store / s3.Store: one object per slot on object storage
//
// # Wrappers
//
//   - Throttled: paces slot I/O through a resource.Controller
//   - Counting: counts slot reads and writes
//
// # Custom Implementations
//
//	type Store interface {
//	    ReadSlot(ctx, slot, p) (found bool, err error)
//	    WriteSlot(ctx, slot, p) error
//	    Truncate(ctx) error
//	    Sync(ctx) error
//	    Close() error
//	}
//
// The flat-file layout carries no header: the slot size is not recorded and
// must be supplied identically every time a file is reopened.
package slotstore

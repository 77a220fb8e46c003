// Package mmap provides memory-mapped file access for the slot stores.
//
// # Usage
//
//	m, err := mmap.Map(f, size, mmap.ReadWrite)
//	if err != nil { ... }
//	defer m.Close()
//
//	// Direct access to one slot
//	r, _ := m.Region(slot*slotSize, slotSize)
//	copy(r.Bytes(), buf)
//	_ = r.Sync()
//
// Read-only mappings of a whole file are available through Open.
//
// # Platform Support
//
//   - Unix: mmap(2), msync(2) and madvise(2)
//   - Windows: CreateFileMapping/MapViewOfFile and FlushViewOfFile
//     (madvise is a no-op)
//
// # Growth
//
// A mapping never grows. Callers that extend the underlying file must Close
// the mapping and Map the file again at the new size.
package mmap

package mmap

import (
	"io"
	"os"
	"sync/atomic"
)

// Mapping represents a memory-mapped file.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	mode   Mode
	closed atomic.Bool
	sys    osMapping
}

// Open maps the whole file at path read-only.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() > int64(maxInt) {
		return nil, ErrInvalidSize
	}

	return Map(f, int(fi.Size()), ReadOnly)
}

// Map maps the first size bytes of f. The file must already be at least
// size bytes long. A zero size yields an empty mapping. The mapping stays
// valid after f is closed.
func Map(f *os.File, size int, mode Mode) (*Mapping, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{mode: mode}, nil
	}

	data, sys, err := osMap(f, size, mode)
	if err != nil {
		return nil, err
	}

	return &Mapping{data: data, mode: mode, sys: sys}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return m.sys.unmap(data)
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Sync flushes modified pages of the whole mapping to the file.
func (m *Mapping) Sync() error {
	if m.closed.Load() {
		return ErrClosed
	}
	return m.sync(0, len(m.data))
}

// sync flushes [off, off+n). The start is rounded down to a page boundary
// because msync requires a page-aligned address.
func (m *Mapping) sync(off, n int) error {
	if n == 0 {
		return nil
	}
	if m.mode != ReadWrite {
		return ErrReadOnly
	}
	start := off &^ (os.Getpagesize() - 1)
	return m.sys.flush(m.data[start : off+n])
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (n int, err error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

const maxInt = int(^uint(0) >> 1)

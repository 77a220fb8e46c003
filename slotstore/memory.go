package slotstore

import (
	"context"
	"sync"

	"github.com/hupe1980/bigseq/internal/conv"
)

// MemoryStore is an in-memory Store with the flat-file layout, for tests.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu     sync.RWMutex
	data   []byte
	closed bool
}

// NewMemoryStore creates an empty in-memory slot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Bytes returns a copy of the store's contents in flat-file layout.
func (m *MemoryStore) Bytes() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	copied := make([]byte, len(m.data))
	copy(copied, m.data)
	return copied
}

// Size returns the current length in bytes.
func (m *MemoryStore) Size() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.data))
}

func (m *MemoryStore) ReadSlot(_ context.Context, slot int64, p []byte) (bool, error) {
	if err := checkSlot(slot, p); err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return false, ErrClosed
	}
	off, err := conv.SlotOffset(slot, len(p))
	if err != nil {
		return false, err
	}
	if off >= int64(len(m.data)) {
		return false, nil
	}

	n := copy(p, m.data[off:])
	clear(p[n:])
	return true, nil
}

func (m *MemoryStore) WriteSlot(_ context.Context, slot int64, p []byte) error {
	if err := checkSlot(slot, p); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	end, err := conv.SlotEnd(slot, len(p))
	if err != nil {
		return err
	}
	n, err := conv.Int64ToInt(end)
	if err != nil {
		return err
	}
	if n > len(m.data) {
		m.data = append(m.data, make([]byte, n-len(m.data))...)
	}
	copy(m.data[n-len(p):n], p)
	return nil
}

func (m *MemoryStore) Truncate(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.data = nil
	return nil
}

func (m *MemoryStore) Sync(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}
	return nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

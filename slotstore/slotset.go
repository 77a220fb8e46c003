package slotstore

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// SlotSet records which slots exist on a remote store so that reads of
// never-written slots need no round trip. The zero value is not usable;
// call NewSlotSet.
type SlotSet struct {
	mu    sync.RWMutex
	slots *roaring64.Bitmap
	known bool // false until the set has been seeded from the backend
}

// NewSlotSet returns an unseeded set. Until Seed or Reset is called,
// Known reports false and callers must ask the backend.
func NewSlotSet() *SlotSet {
	return &SlotSet{slots: roaring64.New()}
}

// Seed replaces the contents with slots and marks the set authoritative.
func (s *SlotSet) Seed(slots []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots.Clear()
	for _, slot := range slots {
		s.slots.Add(uint64(slot))
	}
	s.known = true
}

// Reset empties the set and marks it authoritative (the backend is empty).
func (s *SlotSet) Reset() {
	s.Seed(nil)
}

// Add records slot as present.
func (s *SlotSet) Add(slot int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots.Add(uint64(slot))
}

// Known reports whether the set is authoritative.
func (s *SlotSet) Known() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.known
}

// Absent reports whether slot is known not to exist on the backend.
func (s *SlotSet) Absent(slot int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.known && !s.slots.Contains(uint64(slot))
}

// Len returns the number of slots recorded as present.
func (s *SlotSet) Len() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots.GetCardinality()
}

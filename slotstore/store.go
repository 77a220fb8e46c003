package slotstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("slotstore: store is closed")
	// ErrInvalidSlot is returned for a negative slot index or an empty buffer.
	ErrInvalidSlot = errors.New("slotstore: invalid slot")
)

// Store is a randomly-addressable array of fixed-size slots.
type Store interface {
	// ReadSlot reads slot into p. found is false when the store holds no
	// data for the slot; p is left untouched in that case.
	//
	// A slot that is only partly present (a truncated file tail, a short
	// object) is read as far as it goes and the rest of p is zeroed.
	ReadSlot(ctx context.Context, slot int64, p []byte) (found bool, err error)

	// WriteSlot writes p as the full contents of slot, growing the store
	// if needed.
	WriteSlot(ctx context.Context, slot int64, p []byte) error

	// Truncate discards every slot.
	Truncate(ctx context.Context) error

	// Sync makes previous writes durable where the backend supports it.
	Sync(ctx context.Context) error

	// Close releases the store. It does not sync.
	Close() error
}

const slotNamePrefix = "slot-"

// SlotName returns the object name used for slot by object-storage backends.
func SlotName(slot int64) string {
	return fmt.Sprintf("%s%016d", slotNamePrefix, slot)
}

// ParseSlotName is the inverse of SlotName.
func ParseSlotName(name string) (int64, bool) {
	digits, ok := strings.CutPrefix(name, slotNamePrefix)
	if !ok || len(digits) != 16 {
		return 0, false
	}
	slot, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || slot < 0 {
		return 0, false
	}
	return slot, true
}

func checkSlot(slot int64, p []byte) error {
	if slot < 0 {
		return fmt.Errorf("%w: index %d", ErrInvalidSlot, slot)
	}
	if len(p) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrInvalidSlot)
	}
	return nil
}

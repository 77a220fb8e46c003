package conv

import (
	"fmt"
	"math"
)

// SlotOffset returns slot*slotSize as a byte offset.
func SlotOffset(slot int64, slotSize int) (int64, error) {
	if slot < 0 {
		return 0, fmt.Errorf("invalid slot: %d (negative)", slot)
	}
	if slotSize <= 0 {
		return 0, fmt.Errorf("invalid slot size: %d", slotSize)
	}
	if slot > math.MaxInt64/int64(slotSize) {
		return 0, fmt.Errorf("integer overflow: slot %d * size %d exceeds int64", slot, slotSize)
	}
	return slot * int64(slotSize), nil
}

// SlotEnd returns the offset one past the end of slot, (slot+1)*slotSize.
func SlotEnd(slot int64, slotSize int) (int64, error) {
	if slot == math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: slot %d has no end", slot)
	}
	return SlotOffset(slot+1, slotSize)
}

// Int64ToInt converts int64 to int safely.
func Int64ToInt(v int64) (int, error) {
	if v > int64(math.MaxInt) || v < int64(math.MinInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int", v)
	}
	return int(v), nil
}

// BytesFor returns n*width, the byte size of n fixed-width elements.
func BytesFor(n, width int) (int, error) {
	if n < 0 || width <= 0 {
		return 0, fmt.Errorf("invalid element count %d or width %d", n, width)
	}
	if n > math.MaxInt/width {
		return 0, fmt.Errorf("integer overflow: %d elements of %d bytes", n, width)
	}
	return n * width, nil
}

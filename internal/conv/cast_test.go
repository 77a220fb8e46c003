package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotOffset(t *testing.T) {
	t.Run("zero slot", func(t *testing.T) {
		got, err := SlotOffset(0, 4096)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("valid slot", func(t *testing.T) {
		got, err := SlotOffset(3, 16)
		assert.NoError(t, err)
		assert.Equal(t, int64(48), got)
	})

	t.Run("negative slot", func(t *testing.T) {
		_, err := SlotOffset(-1, 16)
		assert.Error(t, err)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := SlotOffset(1, 0)
		assert.Error(t, err)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := SlotOffset(math.MaxInt64/8+1, 8)
		assert.Error(t, err)
	})
}

func TestSlotEnd(t *testing.T) {
	got, err := SlotEnd(2, 8)
	assert.NoError(t, err)
	assert.Equal(t, int64(24), got)

	_, err = SlotEnd(math.MaxInt64, 1)
	assert.Error(t, err)
}

func TestInt64ToInt(t *testing.T) {
	got, err := Int64ToInt(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestBytesFor(t *testing.T) {
	got, err := BytesFor(4096, 8)
	assert.NoError(t, err)
	assert.Equal(t, 32768, got)

	_, err = BytesFor(-1, 8)
	assert.Error(t, err)

	_, err = BytesFor(math.MaxInt/4, 8)
	assert.Error(t, err)
}

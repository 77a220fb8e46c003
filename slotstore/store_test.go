package slotstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bigseq/internal/fs"
)

func TestSlotName(t *testing.T) {
	name := SlotName(42)
	assert.Equal(t, "slot-0000000000000042", name)

	slot, ok := ParseSlotName(name)
	require.True(t, ok)
	assert.Equal(t, int64(42), slot)

	for _, bad := range []string{"slot-42", "seg-0000000000000042", "slot-00000000000000x2", ""} {
		_, ok := ParseSlotName(bad)
		assert.False(t, ok, bad)
	}
}

func TestFileStore_Layout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "biglist-data.bin")

	s, err := OpenFile(path)
	require.NoError(t, err)

	// Writing slot 2 first extends the file over slots 0 and 1 with zeros.
	require.NoError(t, s.WriteSlot(ctx, 2, []byte{1, 2, 3, 4}))
	assert.Equal(t, int64(12), s.Size())
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4}, raw)
}

func TestFileStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "slots.bin")

	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.WriteSlot(ctx, 1, []byte{9, 9}))
	require.NoError(t, s.Close())

	s, err = OpenFile(path)
	require.NoError(t, err)
	defer s.Close()

	p := make([]byte, 2)
	found, err := s.ReadSlot(ctx, 1, p)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte{9, 9}, p)
}

func TestFileStore_PartialSlot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "short.bin")
	// One full 4-byte slot followed by two bytes of the next.
	require.NoError(t, os.WriteFile(path, []byte{1, 1, 1, 1, 2, 2}, 0o644))

	s, err := OpenFile(path)
	require.NoError(t, err)
	defer s.Close()

	p := []byte{7, 7, 7, 7}
	found, err := s.ReadSlot(ctx, 1, p)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte{2, 2, 0, 0}, p)

	found, err = s.ReadSlot(ctx, 2, p)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_InjectedFaults(t *testing.T) {
	ctx := context.Background()
	ffs := fs.NewFaultyFS(nil)
	path := filepath.Join(t.TempDir(), "faulty.bin")

	s, err := OpenFile(path, func(o *FileOptions) { o.FileSystem = ffs })
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.WriteSlot(ctx, 0, make([]byte, 8)))

	ffs.AddRule("faulty", fs.Fault{FailAfterBytes: 8, FailOnRead: true, FailOnSync: true})

	assert.ErrorIs(t, s.WriteSlot(ctx, 1, make([]byte, 8)), fs.ErrInjected)
	_, err = s.ReadSlot(ctx, 0, make([]byte, 8))
	assert.ErrorIs(t, err, fs.ErrInjected)
	assert.ErrorIs(t, s.Sync(ctx), fs.ErrInjected)
	assert.Equal(t, int64(8), s.Size(), "failed write must not grow the store")
}

func TestMappedStore_SharesFileLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mapped.bin")

	m, err := OpenMapped(path)
	require.NoError(t, err)
	require.NoError(t, m.WriteSlot(ctx, 1, []byte{5, 6, 7, 8}))
	require.NoError(t, m.WriteSlot(ctx, 0, []byte{1, 2, 3, 4}))
	assert.Equal(t, int64(8), m.Size())
	require.NoError(t, m.Sync(ctx))
	require.NoError(t, m.Close())

	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	p := make([]byte, 4)
	found, err := f.ReadSlot(ctx, 1, p)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte{5, 6, 7, 8}, p)
}

func TestMemoryStore_Bytes(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.WriteSlot(ctx, 1, []byte{3, 4}))
	assert.Equal(t, []byte{0, 0, 3, 4}, m.Bytes())
	assert.Equal(t, int64(4), m.Size())
}

func TestSlotSet(t *testing.T) {
	s := NewSlotSet()
	assert.False(t, s.Known())
	assert.False(t, s.Absent(1), "unseeded set must not claim absence")

	s.Seed([]int64{1, 5})
	assert.True(t, s.Known())
	assert.False(t, s.Absent(5))
	assert.True(t, s.Absent(2))

	s.Add(2)
	assert.False(t, s.Absent(2))
	assert.Equal(t, uint64(3), s.Len())

	s.Reset()
	assert.True(t, s.Absent(1))
	assert.Zero(t, s.Len())
}

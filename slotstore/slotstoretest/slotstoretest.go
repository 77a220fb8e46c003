// Package slotstoretest provides a conformance suite for slotstore.Store
// implementations.
package slotstoretest

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bigseq/slotstore"
)

// SlotSize is the slot size used by the suite.
const SlotSize = 64

// Run exercises the Store contract against stores produced by newStore.
// Each subtest gets a fresh, empty store.
func Run(t *testing.T, newStore func(t *testing.T) slotstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("AbsentSlot", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		p := filled(0xAA)
		found, err := s.ReadSlot(ctx, 3, p)
		require.NoError(t, err)
		require.False(t, found)
		require.Equal(t, filled(0xAA), p, "buffer must be untouched for absent slots")
	})

	t.Run("WriteRead", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.WriteSlot(ctx, 0, filled(1)))
		require.NoError(t, s.WriteSlot(ctx, 2, filled(3)))

		p := make([]byte, SlotSize)
		found, err := s.ReadSlot(ctx, 2, p)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, filled(3), p)

		found, err = s.ReadSlot(ctx, 0, p)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, filled(1), p)
	})

	t.Run("Overwrite", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.WriteSlot(ctx, 1, filled(7)))
		require.NoError(t, s.WriteSlot(ctx, 1, filled(8)))

		p := make([]byte, SlotSize)
		_, err := s.ReadSlot(ctx, 1, p)
		require.NoError(t, err)
		require.Equal(t, filled(8), p)
	})

	t.Run("Truncate", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.WriteSlot(ctx, 0, filled(1)))
		require.NoError(t, s.Truncate(ctx))

		found, err := s.ReadSlot(ctx, 0, make([]byte, SlotSize))
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("InvalidSlot", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		_, err := s.ReadSlot(ctx, -1, make([]byte, SlotSize))
		require.ErrorIs(t, err, slotstore.ErrInvalidSlot)
		require.ErrorIs(t, s.WriteSlot(ctx, 0, nil), slotstore.ErrInvalidSlot)
	})

	t.Run("Closed", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Sync(ctx))
		require.NoError(t, s.Close())

		_, err := s.ReadSlot(ctx, 0, make([]byte, SlotSize))
		require.ErrorIs(t, err, slotstore.ErrClosed)
		require.ErrorIs(t, s.WriteSlot(ctx, 0, filled(1)), slotstore.ErrClosed)
	})
}

func filled(b byte) []byte {
	return bytes.Repeat([]byte{b}, SlotSize)
}

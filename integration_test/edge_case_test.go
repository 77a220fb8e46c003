package integration_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/hupe1980/bigseq"
	"github.com/hupe1980/bigseq/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeCases_Values(t *testing.T) {
	seq, err := bigseq.New(context.Background(), 3, bigseq.WithPath(filepath.Join(t.TempDir(), "data.bin")))
	require.NoError(t, err)
	defer seq.Close()

	vals := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
	require.NoError(t, seq.AppendAll(vals...))

	t.Run("Extremes Round Trip", func(t *testing.T) {
		got, err := seq.Slice(0, seq.Len())
		require.NoError(t, err)
		assert.Equal(t, vals, got)
	})

	t.Run("Zero Is A Value", func(t *testing.T) {
		require.NoError(t, seq.Insert(0, 0))
		v, err := seq.Get(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)

		v, err = seq.Remove(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)
	})
}

func TestEdgeCases_Capacity1Workload(t *testing.T) {
	seq, err := bigseq.New(context.Background(), 1, bigseq.WithPath(filepath.Join(t.TempDir(), "data.bin")))
	require.NoError(t, err)
	defer seq.Close()

	require.NoError(t, seq.AppendAll(testutil.Range(200)...))

	rng := testutil.NewRNG(3)
	model := testutil.NewModel(testutil.Range(200))
	for range 50 {
		at := rng.Intn(model.Len())
		got, err := seq.Remove(at)
		require.NoError(t, err)
		assert.Equal(t, model.Remove(at), got)

		at = rng.Intn(model.Len() + 1)
		require.NoError(t, seq.Insert(at, int64(-at)))
		model.Insert(at, int64(-at))
	}

	got, err := seq.Slice(0, seq.Len())
	require.NoError(t, err)
	assert.Equal(t, model.Values(), got)
}

func TestEdgeCases_GrowShrinkGrow(t *testing.T) {
	seq, err := bigseq.New(context.Background(), 8, bigseq.WithPath(filepath.Join(t.TempDir(), "data.bin")))
	require.NoError(t, err)
	defer seq.Close()

	require.NoError(t, seq.AppendAll(testutil.Range(100)...))
	for seq.Len() > 10 {
		_, err := seq.Remove(seq.Len() - 1)
		require.NoError(t, err)
	}

	// Regrowing reuses slots that still hold the old values; every append
	// must overwrite them.
	for i := range 90 {
		require.NoError(t, seq.Append(int64(-i)))
	}

	v, err := seq.Get(10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
	v, err = seq.Get(99)
	require.NoError(t, err)
	assert.Equal(t, int64(-89), v)
}

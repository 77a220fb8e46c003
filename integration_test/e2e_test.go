package integration_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hupe1980/bigseq"
	"github.com/hupe1980/bigseq/resource"
	"github.com/hupe1980/bigseq/slotstore"
	"github.com/hupe1980/bigseq/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_FileAndMappedShareLayout writes through a file-backed sequence
// and reads the same bytes back through a memory mapping.
func TestE2E_FileAndMappedShareLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	ctx := context.Background()

	seq, err := bigseq.New(ctx, 16, bigseq.WithPath(path))
	require.NoError(t, err)
	require.NoError(t, seq.AppendAll(testutil.Range(100)...))
	require.NoError(t, seq.Close())

	mapped, err := slotstore.OpenMapped(path)
	require.NoError(t, err)
	defer mapped.Close()

	assert.Equal(t, int64(7*16*8), mapped.Size())

	buf := make([]byte, 16*8)
	found, err := mapped.ReadSlot(ctx, 6, buf)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = mapped.ReadSlot(ctx, 7, buf)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestE2E_StackedStores runs a workload through every wrapper at once.
func TestE2E_StackedStores(t *testing.T) {
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   1 << 20,
		IOLimitBytesPerSec: 64 << 20,
	})
	mc := &bigseq.BasicMetricsCollector{}

	file, err := slotstore.OpenFile(filepath.Join(t.TempDir(), "data.bin"))
	require.NoError(t, err)
	counting := slotstore.NewCounting(file)

	seq, err := bigseq.New(context.Background(), 32,
		bigseq.WithStore(counting),
		bigseq.WithResourceController(rc),
		bigseq.WithMetricsCollector(mc),
		bigseq.WithSyncOnFlush(true),
	)
	require.NoError(t, err)

	rng := testutil.NewRNG(7)
	model := testutil.NewModel(nil)
	for i := range 2000 {
		v := int64(i)
		if model.Len() > 0 && rng.Intn(3) == 0 {
			at := rng.Intn(model.Len() + 1)
			require.NoError(t, seq.Insert(at, v))
			model.Insert(at, v)
			continue
		}
		require.NoError(t, seq.Append(v))
		model.Append(v)
	}

	got, err := seq.Slice(0, seq.Len())
	require.NoError(t, err)
	assert.Equal(t, model.Values(), got)

	stats := counting.Stats()
	ms := mc.GetStats()
	assert.Equal(t, ms.FlushCount, stats.Writes)
	assert.Equal(t, ms.LoadCount, stats.Reads+stats.Misses)
	assert.Equal(t, stats.BytesWritten+stats.BytesRead+stats.Misses*32*8, rc.IOBytes())

	require.NoError(t, seq.Close())
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

// TestE2E_ManySequencesShareController checks that sequences sharing a
// controller each hold their reservation until closed.
func TestE2E_ManySequencesShareController(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 4 * 64 * 8})

	var seqs []*bigseq.Sequence
	for i := range 4 {
		seq, err := bigseq.New(context.Background(), 64,
			bigseq.WithStore(slotstore.NewMemoryStore()),
			bigseq.WithResourceController(rc),
		)
		require.NoError(t, err, "sequence %d", i)
		seqs = append(seqs, seq)
	}
	assert.Equal(t, int64(4*64*8), rc.MemoryUsage())
	assert.False(t, rc.TryAcquireMemory(1))

	for i, seq := range seqs {
		require.NoError(t, seq.AppendAll(testutil.Range(200)...), "sequence %d", i)
		require.NoError(t, seq.Close())
	}
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

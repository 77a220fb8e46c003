package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/bigseq"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so tests do not leak
// values into each other through the shared command tree.
func resetFlags() {
	for _, c := range append([]*cobra.Command{cmdMain}, cmdMain.Commands()...) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	cmdMain.SetOut(&out)
	cmdMain.SetErr(&out)
	cmdMain.SetArgs(args)
	t.Cleanup(func() { cmdMain.SetArgs(nil) })

	err := cmdMain.Execute()
	return out.String(), err
}

func TestDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")

	seq, err := bigseq.New(context.Background(), 2, bigseq.WithPath(path))
	require.NoError(t, err)
	require.NoError(t, seq.AppendAll(10, 20, 30, 40, 50))
	require.NoError(t, seq.Close())

	out, err := execute(t, "dump", "--capacity", "2", "--count", "4", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "# 48 B, 3 segments of 2 elements", lines[0])
	assert.Equal(t, "0\t10", lines[1])
	assert.Equal(t, "3\t40", lines[4])
}

func TestDump_InvalidCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")

	_, err := execute(t, "dump", "--capacity", "0", "--count", "0", path)
	assert.ErrorContains(t, err, "--capacity")
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench",
		"--store", "memory",
		"--capacity", "64",
		"--count", "1000",
		"--inserts", "10",
		"--dir", t.TempDir(),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "append")
	assert.Contains(t, out, "insert")
	assert.Contains(t, out, "remove")
	assert.Contains(t, out, "final length 1,000")
}

func TestBench_EnvOverride(t *testing.T) {
	t.Setenv("BIGSEQ_STORE", "tape")

	_, err := execute(t, "bench", "--count", "10", "--inserts", "0", "--dir", t.TempDir())
	assert.ErrorContains(t, err, `unknown store "tape"`)
}

func TestBench_InvalidIOLimit(t *testing.T) {
	_, err := execute(t, "bench", "--store", "memory", "--count", "10", "--io-limit", "lots", "--dir", t.TempDir())
	assert.ErrorContains(t, err, "--io-limit")
}

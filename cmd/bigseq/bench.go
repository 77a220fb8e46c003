package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/bigseq"
	"github.com/hupe1980/bigseq/resource"
	"github.com/hupe1980/bigseq/slotstore"
	"github.com/spf13/cobra"
)

var cmdBench = &cobra.Command{
	Use:   "bench",
	Short: "Append, insert into and remove from a sequence and report the I/O",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

var flagBench struct {
	Capacity int
	Count    int
	Inserts  int
	Store    string
	Dir      string
	IOLimit  string
	Seed     int64
}

func init() {
	cmdMain.AddCommand(cmdBench)

	cmdBench.Flags().IntVarP(&flagBench.Capacity, "capacity", "c", 4096, "Segment capacity")
	cmdBench.Flags().IntVarP(&flagBench.Count, "count", "n", 1_000_000, "Number of elements to append")
	cmdBench.Flags().IntVarP(&flagBench.Inserts, "inserts", "i", 100, "Number of random inserts (and removes)")
	cmdBench.Flags().StringVar(&flagBench.Store, "store", "file", "Slot store: file, mapped or memory")
	cmdBench.Flags().StringVar(&flagBench.Dir, "dir", "", "Directory for the backing file (default: a temporary directory)")
	cmdBench.Flags().StringVar(&flagBench.IOLimit, "io-limit", "", "Slot I/O bandwidth limit per second, e.g. 64MB")
	cmdBench.Flags().Int64Var(&flagBench.Seed, "seed", 1, "Random seed for insert and remove positions")
}

func openBenchStore(kind, dir string) (slotstore.Store, error) {
	path := filepath.Join(dir, "bench.bin")
	switch kind {
	case "file":
		return slotstore.OpenFile(path)
	case "mapped":
		return slotstore.OpenMapped(path)
	case "memory":
		return slotstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("--store: unknown store %q", kind)
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	capacity := cfg.GetInt("capacity")
	count := cfg.GetInt("count")
	inserts := cfg.GetInt("inserts")
	if count < 0 || inserts < 0 {
		return errors.New("--count and --inserts must not be negative")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	dir := cfg.GetString("dir")
	if dir == "" {
		dir, err = os.MkdirTemp("", "bigseq-bench")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
	}

	store, err := openBenchStore(cfg.GetString("store"), dir)
	if err != nil {
		return err
	}

	var rc *resource.Controller
	if limit := cfg.GetString("io-limit"); limit != "" {
		n, err := humanize.ParseBytes(limit)
		if err != nil {
			_ = store.Close()
			return fmt.Errorf("--io-limit: %w", err)
		}
		rc = resource.NewController(resource.Config{IOLimitBytesPerSec: int64(n)})
	}

	mc := &bigseq.BasicMetricsCollector{}
	ctx := context.Background()

	seq, err := bigseq.New(ctx, capacity,
		bigseq.WithStore(store),
		bigseq.WithLogger(logger),
		bigseq.WithMetricsCollector(mc),
		bigseq.WithResourceController(rc),
	)
	if err != nil {
		_ = store.Close()
		return err
	}
	defer seq.Close()

	out := cmd.OutOrStdout()
	rng := rand.New(rand.NewSource(cfg.GetInt64("seed")))

	phase := func(name string, n int, fn func(i int) error) error {
		mc.Reset()
		start := time.Now()
		for i := range n {
			if err := fn(i); err != nil {
				return fmt.Errorf("%s %d: %w", name, i, err)
			}
		}
		report(out, name, n, time.Since(start), mc.GetStats())
		return nil
	}

	if err := phase("append", count, func(i int) error {
		return seq.Append(int64(i))
	}); err != nil {
		return err
	}

	if err := phase("insert", inserts, func(int) error {
		return seq.Insert(rng.Intn(seq.Len()+1), -1)
	}); err != nil {
		return err
	}

	if err := phase("remove", inserts, func(int) error {
		_, err := seq.Remove(rng.Intn(seq.Len()))
		return err
	}); err != nil {
		return err
	}

	if err := phase("scan", 1, func(int) error {
		for range seq.Values() {
		}
		return seq.Err()
	}); err != nil {
		return err
	}

	fmt.Fprintf(out, "final length %s\n", humanize.Comma(int64(seq.Len())))
	return nil
}

func report(out io.Writer, name string, n int, d time.Duration, s bigseq.MetricsStats) {
	fmt.Fprintf(out, "%-7s %10s ops in %-12s switches %-8s written %-9s read %-9s moved %s\n",
		name,
		humanize.Comma(int64(n)),
		d.Round(time.Microsecond),
		humanize.Comma(s.SwitchCount),
		humanize.IBytes(uint64(s.FlushBytes)),
		humanize.IBytes(uint64(s.LoadBytes)),
		humanize.Comma(s.InsertMoved+s.RemoveMoved),
	)
}

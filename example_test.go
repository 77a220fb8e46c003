package bigseq_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/bigseq"
	"github.com/hupe1980/bigseq/slotstore"
)

// Example demonstrates the basic operations on a file-backed sequence.
func Example() {
	dir, err := os.MkdirTemp("", "bigseq-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()
	seq, err := bigseq.New(ctx, 2, bigseq.WithPath(filepath.Join(dir, "numbers.bin")))
	if err != nil {
		log.Fatal(err)
	}
	defer seq.Close()

	for _, v := range []int64{1, 2, 3, 4, 5, 6, 7} {
		if err := seq.Append(v); err != nil {
			log.Fatal(err)
		}
	}

	for _, i := range []int{1, 3, 3} {
		if _, err := seq.Remove(i); err != nil {
			log.Fatal(err)
		}
	}

	if err := seq.Insert(0, 0); err != nil {
		log.Fatal(err)
	}

	vals, err := seq.Slice(0, seq.Len())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(vals)
	// Output: [0 1 3 4 7]
}

// Example_memoryStore uses an in-memory store and reports segment switches.
func Example_memoryStore() {
	mc := &bigseq.BasicMetricsCollector{}

	seq, err := bigseq.New(context.Background(), 1024,
		bigseq.WithStore(slotstore.NewMemoryStore()),
		bigseq.WithMetricsCollector(mc),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer seq.Close()

	for i := range 5000 {
		if err := seq.Append(int64(i)); err != nil {
			log.Fatal(err)
		}
	}

	v, _ := seq.Get(4999)
	fmt.Println(v, seq.ActiveSegment(), mc.GetStats().SwitchCount)
	// Output: 4999 4 4
}

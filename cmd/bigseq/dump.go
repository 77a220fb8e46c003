package main

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/bigseq/slotstore"
	"github.com/spf13/cobra"
)

var cmdDump = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print the elements stored in a backing file",
	Long: `Print the elements stored in a backing file.

The file carries no header, so the segment capacity it was written with must
be given again. Elements of the last segment that never reached the file are
not shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

var flagDump struct {
	Capacity int
	Count    int
}

func init() {
	cmdMain.AddCommand(cmdDump)

	cmdDump.Flags().IntVarP(&flagDump.Capacity, "capacity", "c", 4096, "Segment capacity the file was written with")
	cmdDump.Flags().IntVarP(&flagDump.Count, "count", "n", 0, "Number of elements to print (0 prints all)")
}

func runDump(cmd *cobra.Command, args []string) error {
	capacity := cfg.GetInt("capacity")
	count := cfg.GetInt("count")
	if capacity < 1 {
		return errors.New("--capacity must be at least 1")
	}
	if count < 0 {
		return errors.New("--count must not be negative")
	}

	store, err := slotstore.OpenFile(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	slotBytes := capacity * 8
	slots := (store.Size() + int64(slotBytes) - 1) / int64(slotBytes)
	if count == 0 {
		count = int(store.Size() / 8)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s, %d segments of %d elements\n", humanize.IBytes(uint64(store.Size())), slots, capacity)

	ctx := context.Background()
	buf := make([]byte, slotBytes)
	printed := 0
	for slot := int64(0); printed < count; slot++ {
		found, err := store.ReadSlot(ctx, slot, buf)
		if err != nil {
			return err
		}
		if !found {
			break
		}
		for off := 0; off < capacity && printed < count; off++ {
			v := int64(binary.LittleEndian.Uint64(buf[off*8:]))
			fmt.Fprintf(out, "%d\t%d\n", printed, v)
			printed++
		}
	}
	return nil
}

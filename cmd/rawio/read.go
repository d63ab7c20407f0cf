package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinyrange/rawio/pkg/bigarray"
	"github.com/tinyrange/rawio/pkg/rawio"
)

var (
	readOffset int
	readLength int
	readSize   int
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Issue one read into a big array and dump the bytes received",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arr, err := bigarray.Alloc(readSize)
		if err != nil {
			return err
		}
		defer arr.Free()

		// Checked here so the raw call only ever sees a valid window.
		if _, err := arr.Slice(readOffset, readLength); err != nil {
			return err
		}

		f, h, err := openHandle(args[0], os.O_RDONLY)
		if err != nil {
			return err
		}
		defer f.Close()

		n, err := rawio.ReadInto(h, arr.Bytes(), readOffset, readLength)
		if err != nil {
			return err
		}

		slog.Debug("read", "file", args[0], "requested", readLength, "received", n)

		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
		fmt.Fprint(cmd.OutOrStdout(), hex.Dump(arr.Bytes()[readOffset:readOffset+n]))

		return nil
	},
}

func init() {
	readCmd.Flags().IntVar(&readOffset, "offset", 0, "offset into the buffer")
	readCmd.Flags().IntVar(&readLength, "length", 4096, "maximum number of bytes to read")
	readCmd.Flags().IntVar(&readSize, "size", 1<<20, "size of the buffer to allocate")
	rootCmd.AddCommand(readCmd)
}

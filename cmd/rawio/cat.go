package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinyrange/rawio/pkg/bigarray"
	"github.com/tinyrange/rawio/pkg/rawio"
	"github.com/tinyrange/rawio/pkg/stream"
)

var catBuffer int

var catCmd = &cobra.Command{
	Use:   "cat <file>...",
	Short: "Write files to standard output using raw reads and writes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arr, err := bigarray.Alloc(catBuffer)
		if err != nil {
			return err
		}
		defer arr.Free()

		out := rawio.HandleOf(os.Stdout)

		for _, name := range args {
			f, h, err := openHandle(name, os.O_RDONLY)
			if err != nil {
				return err
			}

			_, err = stream.Copy(cmd.Context(), out, h, arr.Bytes(), stream.Options{RetryInterrupted: true})
			f.Close()
			if err != nil {
				return fmt.Errorf("failed to cat %s: %w", name, err)
			}
		}

		return nil
	},
}

func init() {
	catCmd.Flags().IntVar(&catBuffer, "buffer", 64*1024, "size of the transfer buffer")
	rootCmd.AddCommand(catCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinyrange/rawio/pkg/rawio"
)

var writeAppend bool

var writeCmd = &cobra.Command{
	Use:   "write <file> <text>",
	Short: "Issue one write of text and report how much was accepted",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		flag := os.O_WRONLY | os.O_CREATE
		if writeAppend {
			flag |= os.O_APPEND
		} else {
			flag |= os.O_TRUNC
		}

		f, h, err := openHandle(args[0], flag)
		if err != nil {
			return err
		}
		defer f.Close()

		buf := []byte(args[1])

		n, err := rawio.WriteFrom(h, buf, 0, len(buf))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)

		return nil
	},
}

func init() {
	writeCmd.Flags().BoolVar(&writeAppend, "append", false, "append instead of truncating")
	rootCmd.AddCommand(writeCmd)
}

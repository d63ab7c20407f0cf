package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/tinyrange/rawio/pkg/bigarray"
	"github.com/tinyrange/rawio/pkg/stream"
)

var (
	copyBuffer   int
	copyRetry    bool
	copyProgress bool
)

var copyCmd = &cobra.Command{
	Use:   "copy <src> <dst>",
	Short: "Copy a file through a big array using raw reads and writes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		arr, err := bigarray.Alloc(copyBuffer)
		if err != nil {
			return err
		}
		defer arr.Free()

		src, srcHandle, err := openHandle(args[0], os.O_RDONLY)
		if err != nil {
			return err
		}
		defer src.Close()

		dst, dstHandle, err := openHandle(args[1], os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
		if err != nil {
			return err
		}
		defer dst.Close()

		opts := stream.Options{RetryInterrupted: copyRetry}

		if copyProgress {
			size := int64(-1)
			if info, err := src.Stat(); err == nil && info.Mode().IsRegular() {
				size = info.Size()
			}

			pb := progressbar.DefaultBytes(size, fmt.Sprintf("copying %s", args[0]))
			defer pb.Close()

			opts.OnProgress = func(n int) {
				if err := pb.Add(n); err != nil {
					slog.Debug("failed to update progress", "err", err)
				}
			}
		}

		start := time.Now()

		n, err := stream.Copy(cmd.Context(), dstHandle, srcHandle, arr.Bytes(), opts)
		if err != nil {
			return fmt.Errorf("failed to copy %s to %s: %w", args[0], args[1], err)
		}

		slog.Info("copied", "src", args[0], "dst", args[1], "bytes", n, "took", time.Since(start))

		return nil
	},
}

func init() {
	copyCmd.Flags().IntVar(&copyBuffer, "buffer", 1<<20, "size of the transfer buffer")
	copyCmd.Flags().BoolVar(&copyRetry, "retry", true, "retry calls interrupted by signals")
	copyCmd.Flags().BoolVar(&copyProgress, "progress", false, "show a progress bar")
	rootCmd.AddCommand(copyCmd)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tinyrange/rawio/pkg/common"
	"github.com/tinyrange/rawio/pkg/rawio"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "rawio",
	Short: "Single read(2) and write(2) calls into caller-owned buffers",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.SetupLogging(os.Stderr, rootVerbose)
	},
	SilenceUsage: true,
}

func openHandle(name string, flag int) (*os.File, rawio.Handle, error) {
	f, err := os.OpenFile(name, flag, 0o644)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open %s: %w", name, err)
	}

	return f, rawio.HandleOf(f), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

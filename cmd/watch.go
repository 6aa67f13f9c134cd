package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"bytewatch/internal/app"

	"github.com/spf13/cobra"
)

type WatchFlags struct {
	SrcPath  string
	DstPath  string
	Interval time.Duration
	History  int
}

var watchFlags WatchFlags

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Copy data while watching the transfer rate",
	Long: `Copy a source to a destination through a rate-tracking pipe. This will:

1. Open the source file (or stdin with --src -)
2. Copy it to the destination file (or discard it when --dst is empty)
3. Track throughput in fixed-length buckets while copying
4. Print a live stats line and a final summary

Examples:
  bytewatch watch --src big.iso --dst /mnt/usb/big.iso
  cat /dev/urandom | head -c 100M | bytewatch watch --src -`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateWatchFlags(&watchFlags)
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("Starting watch: %s", watchFlags.SrcPath)
		if err := runWatchApp(&watchFlags); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
	},
}

// validateWatchFlags validates the watch command flags
func validateWatchFlags(flags *WatchFlags) error {
	if flags.SrcPath == "" {
		return fmt.Errorf("source path is required")
	}
	if flags.Interval < 0 {
		return errors.New("interval must be greater than 0")
	}
	if flags.History < 0 {
		return errors.New("history must be at least 1")
	}
	return nil
}

// runWatchApp wires up and runs the watch application
func runWatchApp(flags *WatchFlags) error {
	ctx := createContext()

	if flags.Interval > 0 {
		cfg.Watch.Interval = flags.Interval
	}
	if flags.History > 0 {
		cfg.Watch.HistorySize = flags.History
	}

	watchApp := app.NewWatchApp(cfg)
	return watchApp.Run(ctx, &app.WatchOptions{
		SrcPath: flags.SrcPath,
		DstPath: flags.DstPath,
	})
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.SrcPath, "src", "", "source file, or - for stdin (required)")
	watchCmd.Flags().StringVar(&watchFlags.DstPath, "dst", "", "destination file (omit to discard)")
	watchCmd.Flags().DurationVar(&watchFlags.Interval, "interval", 0, "rate bucket length (default from config)")
	watchCmd.Flags().IntVar(&watchFlags.History, "history", 0, "closed buckets to keep (default from config)")

	watchCmd.MarkFlagRequired("src")
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"bytewatch/internal/config"
	"bytewatch/internal/pipe"
	"bytewatch/internal/reporter"
	"bytewatch/pkg/transferwatch"
)

// WatchOptions configures the watch application behavior
type WatchOptions struct {
	SrcPath string // Required: file to read, or "-" for stdin
	DstPath string // Optional: file to write; empty discards the data
}

// WatchApp copies a source to a sink through a rate-tracking pipe and reports
// live statistics while doing so.
type WatchApp struct {
	config *config.Config
}

// NewWatchApp creates a new watch application
func NewWatchApp(cfg *config.Config) *WatchApp {
	return &WatchApp{config: cfg}
}

// Run starts the watch application with the given options
func (a *WatchApp) Run(ctx context.Context, opts *WatchOptions) error {
	if opts.SrcPath == "" {
		return fmt.Errorf("source path is required")
	}

	src, err := pipe.OpenSource(opts.SrcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	sink, err := pipe.CreateSink(opts.DstPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Printf("Error closing %s: %v", sink.Name, err)
		}
	}()

	watch, err := transferwatch.New(transferwatch.Config{
		Interval: a.config.Watch.Interval,
		Capacity: a.config.Watch.HistorySize,
	})
	if err != nil {
		return fmt.Errorf("failed to create transfer watch: %w", err)
	}

	log.Printf("Watching %s -> %s", src.Name, sink.Name)

	statsReporter := reporter.NewStatsReporter(watch)
	reportCtx, stopReporting := context.WithCancel(ctx)
	defer stopReporting()
	go statsReporter.Run(reportCtx, a.config.Watch.ReportEvery)

	if err := a.copy(ctx, sink, src, watch); err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}

	stopReporting()
	if a.config.Display.ShowSummary {
		statsReporter.Summary(a.config.Display.RecentRates)
	}
	return nil
}

// copy moves bytes through a counting reader so every chunk is fed to the
// watch, checking for cancellation between chunks.
func (a *WatchApp) copy(ctx context.Context, dst io.Writer, src io.Reader, watch *transferwatch.TransferWatch) error {
	counted := pipe.NewReader(src, watch)
	buf := make([]byte, 32*1024)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := counted.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

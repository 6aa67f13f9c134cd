package reporter

import (
	"context"
	"fmt"
	"time"

	"bytewatch/pkg/transferwatch"
)

// StatsReporter prints live transfer statistics to the console
type StatsReporter struct {
	watch *transferwatch.TransferWatch
}

// NewStatsReporter creates a reporter reading from the given watch
func NewStatsReporter(watch *transferwatch.TransferWatch) *StatsReporter {
	return &StatsReporter{watch: watch}
}

// Run refreshes a single console line with the current statistics until the
// context is cancelled. It blocks, so callers run it in a goroutine.
func (sr *StatsReporter) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sr.watch.Stats()
			fmt.Printf("\r%-70s", stats.String())
		}
	}
}

// Summary clears the progress line and prints a final statistics block.
func (sr *StatsReporter) Summary(showRecent bool) {
	stats := sr.watch.Stats()

	fmt.Printf("\r%70s\r", "")
	fmt.Println("=========================================================")
	fmt.Println("Transfer complete!")
	fmt.Printf("Total:    %s (%d bytes)\n", stats.Total, stats.Total.Count())
	fmt.Printf("Duration: %.2f seconds\n", stats.Elapsed.Seconds())
	fmt.Printf("Average:  %s\n", stats.Average)
	fmt.Printf("Peak:     %s\n", stats.Peak)
	if showRecent {
		for i, rate := range sr.watch.RecentRates() {
			fmt.Printf("  bucket -%d: %s\n", i+1, rate)
		}
	}
	fmt.Println("=========================================================")
}

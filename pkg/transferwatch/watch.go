// Package transferwatch tracks transfer throughput over fixed-length time
// intervals: total bytes moved, the current/average/peak/instantaneous rate,
// and a bounded history of recently completed interval rates.
package transferwatch

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"bytewatch/pkg/bytesize"
)

var (
	ErrInvalidInterval = errors.New("transferwatch: bucket interval must be greater than 0")
	ErrInvalidCapacity = errors.New("transferwatch: history capacity must be at least 1")
)

const (
	// DefaultInterval is the bucket length used when Config.Interval is zero.
	DefaultInterval = time.Second
	// DefaultCapacity is the history size used when Config.Capacity is zero.
	DefaultCapacity = 10
)

// Config configures a TransferWatch. The zero value selects the defaults.
type Config struct {
	// Interval is the length of one rate bucket. Zero means DefaultInterval;
	// negative is invalid.
	Interval time.Duration
	// Capacity is how many completed-interval rates are kept, oldest evicted
	// first. Zero means DefaultCapacity; negative is invalid.
	Capacity int
	// Clock supplies monotonic time. Nil means the real clock; tests inject
	// clock.NewMock().
	Clock clock.Clock
}

// TransferWatch is a thread-safe transfer-rate accumulator. Bytes reported to
// Add are bucketed into fixed-length intervals; each time an interval boundary
// is crossed the open bucket is closed into one rate sample. Value reads are
// safe to call concurrently with Add.
type TransferWatch struct {
	mu  sync.Mutex
	clk clock.Clock

	interval time.Duration
	start    time.Time

	total       int64         // running total since start/reset
	bucket      int64         // bytes accumulated in the open interval
	bucketStart time.Duration // elapsed time at which the open interval began

	current bytesize.Rate
	peak    bytesize.Rate

	history []bytesize.Rate // ring of closed-interval rates
	next    int             // ring slot the next closed rate goes into
	closed  int             // intervals closed since start/reset
}

// New creates a TransferWatch. Interval and Capacity default independently
// when left zero; negative values fail with ErrInvalidInterval or
// ErrInvalidCapacity.
func New(cfg Config) (*TransferWatch, error) {
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Interval < 0 {
		return nil, ErrInvalidInterval
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	return &TransferWatch{
		clk:      cfg.Clock,
		interval: cfg.Interval,
		start:    cfg.Clock.Now(),
		history:  make([]bytesize.Rate, cfg.Capacity),
	}, nil
}

// Add reports bytes moved. If the open interval has run past the configured
// bucket length it is closed first: its rate is computed over its actual
// duration, pushed into the history ring, and becomes the current (and
// possibly peak) rate. Closing and accumulating happen under one lock, so
// concurrent callers never lose bytes or close the same boundary twice.
func (w *TransferWatch) Add(b bytesize.ByteSize) {
	w.mu.Lock()
	defer w.mu.Unlock()

	elapsed := w.clk.Now().Sub(w.start)
	if elapsed-w.bucketStart >= w.interval {
		w.closeBucket(elapsed)
	}

	w.bucket += b.Count()
	w.total += b.Count()
}

// closeBucket converts the open interval into a rate sample. Caller holds mu.
func (w *TransferWatch) closeBucket(elapsed time.Duration) {
	rate := bytesize.RateOver(bytesize.New(w.bucket), elapsed-w.bucketStart)

	w.history[w.next] = rate
	w.next = (w.next + 1) % len(w.history)
	w.closed++

	w.current = rate
	if rate.Cmp(w.peak) > 0 {
		w.peak = rate
	}

	w.bucket = 0
	w.bucketStart = elapsed
}

// Total returns the bytes accumulated since construction or the last Reset.
func (w *TransferWatch) Total() bytesize.ByteSize {
	w.mu.Lock()
	defer w.mu.Unlock()
	return bytesize.New(w.total)
}

// Elapsed returns the time since construction or the last Reset.
func (w *TransferWatch) Elapsed() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.clk.Now().Sub(w.start)
}

// CurrentRate returns the rate of the most recently closed interval.
func (w *TransferWatch) CurrentRate() bytesize.Rate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// PeakRate returns the highest closed-interval rate seen so far.
func (w *TransferWatch) PeakRate() bytesize.Rate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.peak
}

// AverageRate returns total bytes over total elapsed time.
func (w *TransferWatch) AverageRate() bytesize.Rate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.averageRateLocked(w.clk.Now().Sub(w.start))
}

func (w *TransferWatch) averageRateLocked(elapsed time.Duration) bytesize.Rate {
	return bytesize.RateOver(bytesize.New(w.total), elapsed)
}

// InstantRate returns the rate of the interval currently open, measured over
// the time it has been open. Zero when no time has passed in it yet.
func (w *TransferWatch) InstantRate() bytesize.Rate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.instantRateLocked(w.clk.Now().Sub(w.start))
}

func (w *TransferWatch) instantRateLocked(elapsed time.Duration) bytesize.Rate {
	return bytesize.RateOver(bytesize.New(w.bucket), elapsed-w.bucketStart)
}

// SampleCount returns how many intervals have been closed since construction
// or the last Reset. The open interval is not counted.
func (w *TransferWatch) SampleCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// RecentRates returns the closed-interval rates newest first, at most Capacity
// of them. The slice is a copy; it is empty until the first interval closes.
func (w *TransferWatch) RecentRates() []bytesize.Rate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.recentRatesLocked()
}

func (w *TransferWatch) recentRatesLocked() []bytesize.Rate {
	n := w.closed
	if n > len(w.history) {
		n = len(w.history)
	}

	rates := make([]bytesize.Rate, n)
	for i := 0; i < n; i++ {
		// next-1 is the newest entry, walking backward through the ring.
		idx := (w.next - 1 - i + len(w.history)) % len(w.history)
		rates[i] = w.history[idx]
	}
	return rates
}

// Stats returns a consistent snapshot of everything the watch tracks, taken
// under a single lock acquisition.
func (w *TransferWatch) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()

	elapsed := w.clk.Now().Sub(w.start)
	return Stats{
		Total:       bytesize.New(w.total),
		Elapsed:     elapsed,
		Current:     w.current,
		Average:     w.averageRateLocked(elapsed),
		Peak:        w.peak,
		Instant:     w.instantRateLocked(elapsed),
		SampleCount: w.closed,
	}
}

// Reset reinitializes all tracked state and restarts the clock epoch at now.
// It serializes with Add but provides no ordering guarantee relative to
// in-flight calls beyond mutual exclusion.
func (w *TransferWatch) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.start = w.clk.Now()
	w.total = 0
	w.bucket = 0
	w.bucketStart = 0
	w.current = bytesize.ZeroRate
	w.peak = bytesize.ZeroRate
	w.history = make([]bytesize.Rate, len(w.history))
	w.next = 0
	w.closed = 0
}

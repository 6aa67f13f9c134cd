package bytesize

import (
	"math"
	"strings"
	"time"
)

// Rate is an immutable bytes-per-second quantity. It carries the same
// count/precision contract as ByteSize, scaled to a time dimension.
type Rate struct {
	count     int64
	precision int
}

// ZeroRate is the zero rate.
var ZeroRate = Rate{precision: DefaultPrecision}

// NewRate creates a Rate with the default display precision.
func NewRate(bytesPerSecond int64) Rate {
	return Rate{count: bytesPerSecond, precision: DefaultPrecision}
}

// NewRateWithPrecision creates a Rate that formats with the given number of
// decimal places. Negative precision is clamped to 0.
func NewRateWithPrecision(bytesPerSecond int64, precision int) Rate {
	if precision < 0 {
		precision = 0
	}
	return Rate{count: bytesPerSecond, precision: precision}
}

// RateOver derives the rate at which b bytes were moved over duration d,
// truncating toward zero. A duration of zero or less yields ZeroRate.
func RateOver(b ByteSize, d time.Duration) Rate {
	if d <= 0 {
		return ZeroRate
	}
	// Scale by nanoseconds rather than dividing by d.Seconds(): 0.1s has no
	// exact float representation and 1024/0.1 would truncate to 10239.
	return NewRate(int64(math.Trunc(float64(b.count) * float64(time.Second) / float64(d))))
}

// BytesPerSecond returns the raw rate.
func (r Rate) BytesPerSecond() int64 { return r.count }

// Float64 returns the rate as a float.
func (r Rate) Float64() float64 { return float64(r.count) }

// Precision returns the display precision in decimal places.
func (r Rate) Precision() int { return r.precision }

// WithPrecision returns a copy that formats with the given number of decimal
// places. Negative precision is clamped to 0.
func (r Rate) WithPrecision(precision int) Rate {
	return NewRateWithPrecision(r.count, precision)
}

// ByteCountFor returns how many bytes this rate moves in duration d,
// truncating toward zero.
func (r Rate) ByteCountFor(d time.Duration) ByteSize {
	return New(int64(math.Trunc(float64(r.count) * float64(d) / float64(time.Second))))
}

// Add returns r + o. The result keeps r's precision. Overflow wraps.
func (r Rate) Add(o Rate) Rate {
	return Rate{count: r.count + o.count, precision: r.precision}
}

// Sub returns r - o. The result keeps r's precision. Overflow wraps.
func (r Rate) Sub(o Rate) Rate {
	return Rate{count: r.count - o.count, precision: r.precision}
}

// AddBytes folds a byte quantity into the rate, used when adjusting a rate by
// a partial interval's bytes.
func (r Rate) AddBytes(b ByteSize) Rate {
	return Rate{count: r.count + b.count, precision: r.precision}
}

// MulInt returns r scaled by n.
func (r Rate) MulInt(n int64) Rate {
	return Rate{count: r.count * n, precision: r.precision}
}

// DivInt returns r divided by n, truncating toward zero.
func (r Rate) DivInt(n int64) Rate {
	return Rate{count: r.count / n, precision: r.precision}
}

// Cmp compares by rate only: -1 if r < o, 0 if equal, +1 if r > o.
func (r Rate) Cmp(o Rate) int {
	switch {
	case r.count < o.count:
		return -1
	case r.count > o.count:
		return 1
	}
	return 0
}

// Equal reports whether the rates are equal. Precision is ignored.
func (r Rate) Equal(o Rate) bool { return r.count == o.count }

// IsZero reports whether the rate is zero.
func (r Rate) IsZero() bool { return r.count == 0 }

// String renders the rate with its stored precision, e.g. "1.5 KB/s".
func (r Rate) String() string {
	return format(r.count, r.precision) + "/s"
}

// ParseRate parses a rate string such as "1.5MB/s" or "512 KB/sec" using
// DefaultSeparators. The trailing "/s" or "/sec" is optional.
func ParseRate(s string) (Rate, error) {
	return ParseRateWith(s, DefaultSeparators)
}

// ParseRateWith is ParseRate with explicit separator configuration.
func ParseRateWith(s string, sep Separators) (Rate, error) {
	u := strings.TrimSpace(s)
	if low := strings.ToLower(u); strings.HasSuffix(low, "/sec") {
		u = u[:len(u)-len("/sec")]
	} else if strings.HasSuffix(low, "/s") {
		u = u[:len(u)-len("/s")]
	}

	b, err := ParseWith(u, sep)
	if err != nil {
		return ZeroRate, err
	}
	return Rate{count: b.count, precision: b.precision}, nil
}

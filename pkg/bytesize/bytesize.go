// Package bytesize provides immutable byte-count and byte-rate quantities with
// human-readable formatting and parsing of size-suffixed strings (KB, MB, ...).
// All units are binary (1024-based).
package bytesize

// DefaultPrecision is the number of decimal places used for display when a
// quantity is constructed without an explicit precision.
const DefaultPrecision = 1

// ByteSize is an immutable byte-count quantity. The count alone defines
// equality and ordering; the precision only affects how String renders it.
type ByteSize struct {
	count     int64
	precision int
}

// Zero is the zero byte quantity.
var Zero = ByteSize{precision: DefaultPrecision}

// New creates a ByteSize with the default display precision.
func New(count int64) ByteSize {
	return ByteSize{count: count, precision: DefaultPrecision}
}

// NewWithPrecision creates a ByteSize that formats with the given number of
// decimal places. Negative precision is clamped to 0.
func NewWithPrecision(count int64, precision int) ByteSize {
	if precision < 0 {
		precision = 0
	}
	return ByteSize{count: count, precision: precision}
}

// FromUint64 creates a ByteSize from an unsigned count. Values above
// math.MaxInt64 wrap per two's-complement conversion, so the maximum unsigned
// value becomes -1.
func FromUint64(count uint64) ByteSize {
	return New(int64(count))
}

// Count returns the raw byte count.
func (b ByteSize) Count() int64 { return b.count }

// Uint64 returns the count reinterpreted as unsigned; negative counts wrap.
func (b ByteSize) Uint64() uint64 { return uint64(b.count) }

// Int returns the count truncated to the platform int width.
func (b ByteSize) Int() int { return int(b.count) }

// Float64 returns the count as a float.
func (b ByteSize) Float64() float64 { return float64(b.count) }

// Precision returns the display precision in decimal places.
func (b ByteSize) Precision() int { return b.precision }

// WithPrecision returns a copy that formats with the given number of decimal
// places. Negative precision is clamped to 0.
func (b ByteSize) WithPrecision(precision int) ByteSize {
	return NewWithPrecision(b.count, precision)
}

// Add returns b + o. The result keeps b's precision. Overflow wraps.
func (b ByteSize) Add(o ByteSize) ByteSize {
	return ByteSize{count: b.count + o.count, precision: b.precision}
}

// Sub returns b - o. The result keeps b's precision. Overflow wraps.
func (b ByteSize) Sub(o ByteSize) ByteSize {
	return ByteSize{count: b.count - o.count, precision: b.precision}
}

// MulInt returns b scaled by n.
func (b ByteSize) MulInt(n int64) ByteSize {
	return ByteSize{count: b.count * n, precision: b.precision}
}

// DivInt returns b divided by n, truncating toward zero.
func (b ByteSize) DivInt(n int64) ByteSize {
	return ByteSize{count: b.count / n, precision: b.precision}
}

// Neg returns the negated quantity.
func (b ByteSize) Neg() ByteSize {
	return ByteSize{count: -b.count, precision: b.precision}
}

// Cmp compares by count only: -1 if b < o, 0 if equal, +1 if b > o.
func (b ByteSize) Cmp(o ByteSize) int {
	switch {
	case b.count < o.count:
		return -1
	case b.count > o.count:
		return 1
	}
	return 0
}

// Equal reports whether the counts are equal. Precision is ignored.
func (b ByteSize) Equal(o ByteSize) bool { return b.count == o.count }

// IsZero reports whether the count is zero.
func (b ByteSize) IsZero() bool { return b.count == 0 }

// String renders the quantity with its stored precision, e.g. "1.5 KB".
func (b ByteSize) String() string {
	return format(b.count, b.precision)
}

package bytesize

import (
	"errors"
	"math"
	"strconv"
)

// ErrNegativePrecision is returned by Format for a negative decimal-place count.
var ErrNegativePrecision = errors.New("bytesize: decimal places must not be negative")

// suffixes are the magnitude labels, one per power of 1024.
var suffixes = [...]string{"bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Format renders a raw byte count as a human-readable string with a magnitude
// suffix and a fixed number of decimal places, e.g. Format(1536, 1) == "1.5 KB".
// When rounding would display 1000 or more the value carries into the next
// magnitude, so 1023 bytes formats as "1.0 KB" rather than "1023.0 bytes".
func Format(count int64, decimals int) (string, error) {
	if decimals < 0 {
		return "", ErrNegativePrecision
	}
	return format(count, decimals), nil
}

// format assumes decimals >= 0.
func format(count int64, decimals int) string {
	sign := ""
	v := float64(count)
	if count < 0 {
		sign = "-"
		v = -v
	}

	mag := 0
	for v >= 1024 && mag < len(suffixes)-1 {
		v /= 1024
		mag++
	}

	// Carry into the next magnitude when the rounded value would show >= 1000
	// (999.95 KB at one decimal place is "1.0 MB", not "1000.0 KB").
	if mag < len(suffixes)-1 {
		scale := math.Pow(10, float64(decimals))
		if math.Round(v*scale)/scale >= 1000 {
			v /= 1024
			mag++
		}
	}

	return sign + strconv.FormatFloat(v, 'f', decimals, 64) + " " + suffixes[mag]
}

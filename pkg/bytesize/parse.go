package bytesize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrFormat is returned (wrapped) for any string Parse cannot understand.
var ErrFormat = errors.New("bytesize: invalid size string")

// Separators selects the decimal and group (thousands) separator characters
// used when parsing the numeric part of a size string. There is no global
// locale state; pass the separators you need to ParseWith.
type Separators struct {
	Decimal rune
	Group   rune
}

// DefaultSeparators are the en-US style separators: "." decimal, "," group.
var DefaultSeparators = Separators{Decimal: '.', Group: ','}

// Parse parses a size string such as "1024", "1.5MB" or "-1 KiB" using
// DefaultSeparators. On failure it returns Zero and an error wrapping
// ErrFormat; a nil error means the result is valid, so the pair doubles as a
// non-panicking try-parse.
func Parse(s string) (ByteSize, error) {
	return ParseWith(s, DefaultSeparators)
}

// ParseWith is Parse with explicit separator configuration, e.g.
// Separators{Decimal: ',', Group: '.'} for "1,5KB" == 1536.
func ParseWith(s string, sep Separators) (ByteSize, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty input", ErrFormat)
	}

	// The number part is the leading run of digits, separators and signs;
	// everything after it is the unit suffix.
	end := len(s)
	for i, r := range s {
		if !isNumberChar(r, sep) {
			end = i
			break
		}
	}
	numPart, suffix := s[:end], s[end:]
	if numPart == "" {
		return Zero, fmt.Errorf("%w: missing number in %q", ErrFormat, s)
	}

	num := strings.ReplaceAll(numPart, string(sep.Group), "")
	if sep.Decimal != '.' {
		num = strings.ReplaceAll(num, string(sep.Decimal), ".")
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: bad number %q", ErrFormat, numPart)
	}

	mult, err := suffixMultiplier(suffix)
	if err != nil {
		return Zero, err
	}

	return New(int64(math.Trunc(f * float64(mult)))), nil
}

func isNumberChar(r rune, sep Separators) bool {
	return (r >= '0' && r <= '9') || r == sep.Decimal || r == sep.Group || r == '+' || r == '-'
}

// suffixMultiplier maps a unit suffix to its power-of-1024 multiplier. A
// trailing "iB" or "B" is stripped first, so "K", "KB" and "KiB" all mean 1024.
func suffixMultiplier(suffix string) (int64, error) {
	u := strings.ToUpper(strings.TrimSpace(suffix))
	if strings.HasSuffix(u, "IB") {
		u = strings.TrimSuffix(u, "IB")
	} else {
		u = strings.TrimSuffix(u, "B")
	}

	switch u {
	case "":
		return 1, nil
	case "K":
		return 1 << 10, nil
	case "M":
		return 1 << 20, nil
	case "G":
		return 1 << 30, nil
	case "T":
		return 1 << 40, nil
	case "P":
		return 1 << 50, nil
	case "E":
		return 1 << 60, nil
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrFormat, suffix)
}

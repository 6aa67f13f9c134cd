package bytesize

import (
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		count    int64
		decimals int
		want     string
	}{
		{0, 1, "0.0 bytes"},
		{0, 0, "0 bytes"},
		{0, 3, "0.000 bytes"},
		{1, 1, "1.0 bytes"},
		{500, 0, "500 bytes"},
		{999, 1, "999.0 bytes"},
		{1024, 1, "1.0 KB"},
		{1536, 1, "1.5 KB"},
		{1536, 2, "1.50 KB"},
		{1048576, 1, "1.0 MB"},
		{1073741824, 1, "1.0 GB"},
		{1099511627776, 1, "1.0 TB"},
		{-1024, 1, "-1.0 KB"},
		{-1536, 2, "-1.50 KB"},
		{1022976, 1, "999.0 KB"}, // 999 KB exactly, no carry
		{math.MaxInt64, 1, "8.0 EB"},
		{math.MinInt64, 1, "-8.0 EB"},
	}

	for _, c := range cases {
		got, err := Format(c.count, c.decimals)
		if err != nil {
			t.Fatalf("Format(%d, %d): %v", c.count, c.decimals, err)
		}
		if got != c.want {
			t.Errorf("Format(%d, %d) = %q, want %q", c.count, c.decimals, got, c.want)
		}
	}
}

func TestFormatRoundingCarry(t *testing.T) {
	cases := []struct {
		count    int64
		decimals int
		want     string
	}{
		// 1023949 bytes = 999.95 KB: rounds to 1000.0 at one decimal, so it
		// carries into MB; at two decimals it stays put.
		{1023949, 1, "1.0 MB"},
		{1023949, 2, "999.95 KB"},
		// values between 1000 and 1023 never display as bytes
		{1023, 1, "1.0 KB"},
		{1000, 0, "1 KB"},
		{-1023, 1, "-1.0 KB"},
	}

	for _, c := range cases {
		got, err := Format(c.count, c.decimals)
		if err != nil {
			t.Fatalf("Format(%d, %d): %v", c.count, c.decimals, err)
		}
		if got != c.want {
			t.Errorf("Format(%d, %d) = %q, want %q", c.count, c.decimals, got, c.want)
		}
	}
}

func TestFormatNegativeDecimals(t *testing.T) {
	if _, err := Format(1024, -1); !errors.Is(err, ErrNegativePrecision) {
		t.Errorf("Format(1024, -1) err = %v, want ErrNegativePrecision", err)
	}
}

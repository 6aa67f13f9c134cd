package bytesize

import (
	"encoding/json"
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	if got := New(1024).Add(New(512)); !got.Equal(New(1536)) {
		t.Errorf("1024 + 512 = %d, want 1536", got.Count())
	}
	if got := New(1536).Sub(New(512)); !got.Equal(New(1024)) {
		t.Errorf("1536 - 512 = %d, want 1024", got.Count())
	}
	if got := New(512).MulInt(3); !got.Equal(New(1536)) {
		t.Errorf("512 * 3 = %d, want 1536", got.Count())
	}
	if got := New(1536).DivInt(3); !got.Equal(New(512)) {
		t.Errorf("1536 / 3 = %d, want 512", got.Count())
	}
	if got := New(-7).DivInt(2); got.Count() != -3 {
		t.Errorf("-7 / 2 = %d, want -3 (truncation toward zero)", got.Count())
	}
	if got := New(1024).Neg(); got.Count() != -1024 {
		t.Errorf("Neg(1024) = %d, want -1024", got.Count())
	}
}

func TestArithmeticKeepsLeftPrecision(t *testing.T) {
	a := NewWithPrecision(1024, 3)
	b := NewWithPrecision(512, 0)

	if got := a.Add(b).Precision(); got != 3 {
		t.Errorf("Add result precision = %d, want 3", got)
	}
	if got := a.Sub(b).Precision(); got != 3 {
		t.Errorf("Sub result precision = %d, want 3", got)
	}
}

func TestArithmeticOverflowWraps(t *testing.T) {
	if got := New(math.MaxInt64).Add(New(1)); got.Count() != math.MinInt64 {
		t.Errorf("MaxInt64 + 1 = %d, want MinInt64", got.Count())
	}
}

func TestOrdering(t *testing.T) {
	cases := []struct {
		a, b int64
		want int
	}{
		{0, 0, 0},
		{1, 2, -1},
		{2, 1, 1},
		{-1, 1, -1},
		{math.MinInt64, math.MaxInt64, -1},
	}

	for _, c := range cases {
		if got := New(c.a).Cmp(New(c.b)); got != c.want {
			t.Errorf("Cmp(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestEqualIgnoresPrecision(t *testing.T) {
	a := NewWithPrecision(1024, 1)
	b := NewWithPrecision(1024, 5)

	if !a.Equal(b) {
		t.Error("quantities with equal counts must be equal regardless of precision")
	}
	if a.Cmp(b) != 0 {
		t.Error("Cmp must ignore precision")
	}
}

func TestConversions(t *testing.T) {
	if got := FromUint64(math.MaxUint64).Count(); got != -1 {
		t.Errorf("FromUint64(MaxUint64).Count() = %d, want -1", got)
	}
	if got := New(-1).Uint64(); got != math.MaxUint64 {
		t.Errorf("New(-1).Uint64() = %d, want MaxUint64", got)
	}
	if got := New(1024).Float64(); got != 1024.0 {
		t.Errorf("Float64() = %v, want 1024.0", got)
	}
	if got := New(1024).Int(); got != 1024 {
		t.Errorf("Int() = %d, want 1024", got)
	}
}

func TestPrecisionClamp(t *testing.T) {
	if got := New(1).WithPrecision(-5).Precision(); got != 0 {
		t.Errorf("WithPrecision(-5) precision = %d, want 0", got)
	}
	if got := NewWithPrecision(1, -1).Precision(); got != 0 {
		t.Errorf("NewWithPrecision(1, -1) precision = %d, want 0", got)
	}
}

func TestString(t *testing.T) {
	if got := New(1536).String(); got != "1.5 KB" {
		t.Errorf("String() = %q, want %q", got, "1.5 KB")
	}
	if got := NewWithPrecision(1536, 2).String(); got != "1.50 KB" {
		t.Errorf("String() = %q, want %q", got, "1.50 KB")
	}
	if got := Zero.String(); got != "0.0 bytes" {
		t.Errorf("Zero.String() = %q, want %q", got, "0.0 bytes")
	}
}

func TestRawCountIsExact(t *testing.T) {
	// String formatting loses precision; the raw accessor never does.
	for _, n := range []int64{0, 1, 1023, 1025, 1048577, math.MaxInt64} {
		if got := New(n).Count(); got != n {
			t.Errorf("New(%d).Count() = %d", n, got)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(New(1536))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "1536" {
		t.Errorf("Marshal = %s, want 1536", data)
	}

	var fromNumber ByteSize
	if err := json.Unmarshal([]byte("1536"), &fromNumber); err != nil {
		t.Fatalf("Unmarshal number: %v", err)
	}
	if fromNumber.Count() != 1536 {
		t.Errorf("Unmarshal number = %d, want 1536", fromNumber.Count())
	}

	var fromString ByteSize
	if err := json.Unmarshal([]byte(`"1.5 KB"`), &fromString); err != nil {
		t.Fatalf("Unmarshal string: %v", err)
	}
	if fromString.Count() != 1536 {
		t.Errorf("Unmarshal string = %d, want 1536", fromString.Count())
	}

	var bad ByteSize
	if err := json.Unmarshal([]byte(`"garbage"`), &bad); err == nil {
		t.Error("Unmarshal garbage string succeeded, want error")
	}
}

func TestTextRoundTrip(t *testing.T) {
	text, err := New(1536).MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "1.5 KB" {
		t.Errorf("MarshalText = %q, want %q", text, "1.5 KB")
	}

	var b ByteSize
	if err := b.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if b.Count() != 1536 {
		t.Errorf("UnmarshalText = %d, want 1536", b.Count())
	}
}

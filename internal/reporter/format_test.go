package reporter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
)

// TestFormatSizeBoundaries tests rendering at unit boundaries.
func TestFormatSizeBoundaries(t *testing.T) {
	tests := []struct {
		size uint64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024*1024 - 1, "1024.00 KB"},
		{10 * 1024 * 1024, "10.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1024 * 1024 * 1024 * 1024, "1.00 TB"},
		// Past TB the value stays in TB, even above 1024
		{2048 * 1024 * 1024 * 1024 * 1024, "2048.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSize(tt.size); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

// TestFormatSizeRoundTrip tests that parsing a rendered size back recovers
// the scaled value within 0.01.
func TestFormatSizeRoundTrip(t *testing.T) {
	sizes := []uint64{
		0, 1, 999, 1023, 1024, 1025, 4096, 123456, 999999,
		1 << 20, 1<<20 + 7, 1 << 30, 1<<30 + 12345, 1 << 40, 1<<40 + 1,
		math.MaxUint64,
	}

	for _, size := range sizes {
		t.Run(strconv.FormatUint(size, 10), func(t *testing.T) {
			rendered := FormatSize(size)
			value, unit := parseScaled(t, rendered)

			// Recompute the expected scaled value for the chosen unit
			k := -1
			for i, u := range units {
				if u == unit {
					k = i
				}
			}
			if k < 0 {
				t.Fatalf("FormatSize(%d) = %q: unknown unit", size, rendered)
			}
			want := float64(size) / math.Pow(1024, float64(k))
			if math.Abs(value-want) > 0.01 {
				t.Errorf("FormatSize(%d) = %q: parsed %f, want %f ± 0.01", size, rendered, value, want)
			}
		})
	}
}

// TestFormatSizeByteRenderingIsInteger tests that the B unit never carries
// decimals.
func TestFormatSizeByteRenderingIsInteger(t *testing.T) {
	for size := uint64(0); size < 1024; size += 73 {
		got := FormatSize(size)
		want := fmt.Sprintf("%d B", size)
		if got != want {
			t.Errorf("FormatSize(%d) = %q, want %q", size, got, want)
		}
	}
}

// parseScaled splits "12.34 MB" into value and unit.
func parseScaled(t *testing.T, s string) (float64, string) {
	t.Helper()
	parts := strings.Fields(s)
	if len(parts) != 2 {
		t.Fatalf("malformed rendered size %q", s)
	}
	value, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		t.Fatalf("malformed value in %q: %v", s, err)
	}
	return value, parts[1]
}

package transfer

import (
	"math"
	"testing"
)

// TestSRGBToLinearFastAccuracy tests that the LUT matches the math.Pow
// implementation.
func TestSRGBToLinearFastAccuracy(t *testing.T) {
	for i := 0; i < 256; i++ {
		fast := SRGBToLinearFast(uint8(i))
		slow := SRGBToLinear(float32(i) / 255.0)
		diff := float32(math.Abs(float64(fast - slow)))
		if diff > 0.0001 {
			t.Errorf("sRGB %d: fast=%f, slow=%f, error=%f", i, fast, slow, diff)
		}
	}
}

// TestLinearToSRGBFastAccuracy allows max 1-byte error due to rounding
// in the 12-bit LUT.
func TestLinearToSRGBFastAccuracy(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		linear := float32(i) / 1000.0
		fast := int(LinearToSRGBFast(linear))
		slow := int(LinearToSRGBSlow(linear))
		diff := fast - slow
		if diff < 0 {
			diff = -diff
		}
		if diff > 1 {
			t.Errorf("linear %f: fast=%d, slow=%d, error=%d", linear, fast, slow, diff)
		}
	}
}

// TestLinearToSRGBFastClamps verifies out-of-range input is clamped.
func TestLinearToSRGBFastClamps(t *testing.T) {
	if got := LinearToSRGBFast(-0.5); got != 0 {
		t.Errorf("LinearToSRGBFast(-0.5) = %d, want 0", got)
	}
	if got := LinearToSRGBFast(1.5); got != 255 {
		t.Errorf("LinearToSRGBFast(1.5) = %d, want 255", got)
	}
}

// TestByteRoundTrip tests that sRGB byte → Linear → sRGB byte
// preserves values. Allow 1-byte error due to quantization.
func TestByteRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		linear := SRGBToLinearFast(uint8(i))
		back := int(LinearToSRGBFast(linear))
		diff := back - i
		if diff < 0 {
			diff = -diff
		}
		if diff > 1 {
			t.Errorf("byte round trip for %d: got %d", i, back)
		}
	}
}

func BenchmarkSRGBToLinearFast(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = SRGBToLinearFast(128)
	}
}

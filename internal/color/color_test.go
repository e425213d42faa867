package color

import (
	"math"
	"testing"
)

func floatNear(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}

// TestU8ToF32 tests uint8 to float32 component mapping.
func TestU8ToF32(t *testing.T) {
	tests := []struct {
		name string
		in   ColorU8
		want ColorF32
	}{
		{"black transparent", ColorU8{}, ColorF32{}},
		{"white opaque", ColorU8{255, 255, 255, 255}, ColorF32{1, 1, 1, 1}},
		{"mid red", ColorU8{R: 128, A: 255}, ColorF32{R: 128.0 / 255.0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := U8ToF32(tt.in)
			if !floatNear(got.R, tt.want.R, 1e-6) || !floatNear(got.G, tt.want.G, 1e-6) ||
				!floatNear(got.B, tt.want.B, 1e-6) || !floatNear(got.A, tt.want.A, 1e-6) {
				t.Errorf("U8ToF32(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestF32ToU8Rounding tests rounding and clamping on the way back to
// 8-bit components.
func TestF32ToU8Rounding(t *testing.T) {
	tests := []struct {
		name string
		in   ColorF32
		want ColorU8
	}{
		{"rounds nearest", ColorF32{R: 0.5, A: 1}, ColorU8{R: 128, A: 255}},
		{"clamps low", ColorF32{R: -0.5, A: 1}, ColorU8{R: 0, A: 255}},
		{"clamps high", ColorF32{R: 1.5, A: 1}, ColorU8{R: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F32ToU8(tt.in); got != tt.want {
				t.Errorf("F32ToU8(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestRoundTripU8F32 tests that every 8-bit component value survives a
// round trip through float32.
func TestRoundTripU8F32(t *testing.T) {
	for i := 0; i <= 255; i++ {
		in := ColorU8{R: uint8(i), G: uint8(i), B: uint8(i), A: uint8(i)}
		if got := F32ToU8(U8ToF32(in)); got != in {
			t.Errorf("round trip of %d: got %v, want %v", i, got, in)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	got := Unpremultiply(ColorF32{R: 0.25, G: 0.25, B: 0.25, A: 0.5})
	if !floatNear(got.R, 0.5, 1e-6) || !floatNear(got.A, 0.5, 1e-6) {
		t.Errorf("Unpremultiply(0.25@0.5) = %v, want 0.5 straight", got)
	}

	if got := Unpremultiply(ColorF32{R: 0.3, A: 0}); got != (ColorF32{}) {
		t.Errorf("Unpremultiply with zero alpha = %v, want zero color", got)
	}
}

func TestPremultiplyRoundTrip(t *testing.T) {
	in := ColorF32{R: 0.8, G: 0.4, B: 0.2, A: 0.5}
	got := Unpremultiply(Premultiply(in))
	if !floatNear(got.R, in.R, 1e-6) || !floatNear(got.G, in.G, 1e-6) ||
		!floatNear(got.B, in.B, 1e-6) || !floatNear(got.A, in.A, 1e-6) {
		t.Errorf("Unpremultiply(Premultiply(%v)) = %v", in, got)
	}
}

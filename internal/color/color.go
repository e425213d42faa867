// Package color provides channel-level color helpers for layervec.
package color

import "math"

// ColorF32 represents a color with float32 components in [0,1].
// Alpha is always straight (never premultiplied) unless stated otherwise.
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// U8ToF32 converts ColorU8 to ColorF32.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 converts ColorF32 to ColorU8.
// Each float32 component [0,1] is mapped to uint8 [0,255] with rounding.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: roundU8(c.R),
		G: roundU8(c.G),
		B: roundU8(c.B),
		A: roundU8(c.A),
	}
}

func roundU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}

// Unpremultiply converts a premultiplied-alpha color to straight alpha.
// Fully transparent input stays zero.
func Unpremultiply(c ColorF32) ColorF32 {
	if c.A == 0 {
		return ColorF32{}
	}
	return ColorF32{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Premultiply converts a straight-alpha color to premultiplied alpha.
func Premultiply(c ColorF32) ColorF32 {
	return ColorF32{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

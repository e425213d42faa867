package layervec

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Components are float64 in the range [0, 255], matching the channel
// domain of the source document format. Fractional values are meaningful:
// gradient interpolation produces them and they are only rounded at
// emission time.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components in [0, 255].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R)),
		G: uint8(clamp255(c.G)),
		B: uint8(clamp255(c.B)),
		A: uint8(clamp255(c.A)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 257,
		G: float64(g) / 257,
		B: float64(b) / 257,
		A: float64(a) / 257,
	}
}

// Hex returns the color as a "#rrggbb" string for paint attributes.
// Components are rounded to the nearest integer channel value; alpha is
// carried separately via opacity attributes, never in the hex form.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(clamp255(c.R))),
		uint8(math.Round(clamp255(c.G))),
		uint8(math.Round(clamp255(c.B))))
}

// FromCMYK converts a 4-channel CMYK color to RGBA.
// Channels are in [0, 255]. Returns ErrChannelCount if the input does not
// have exactly four channels; partial input is never coerced.
//
// The conversion is the naive profile-free formula: each RGB component is
// (255 - channel) scaled by (255 - k) / 255.
func FromCMYK(channels []float64) (RGBA, error) {
	if len(channels) != 4 {
		return RGBA{}, fmt.Errorf("%w: got %d", ErrChannelCount, len(channels))
	}
	c, m, y, k := channels[0], channels[1], channels[2], channels[3]
	scale := (255 - k) / 255
	return RGBA{
		R: clamp255((255 - c) * scale),
		G: clamp255((255 - m) * scale),
		B: clamp255((255 - y) * scale),
		A: 255,
	}, nil
}

// clamp255 clamps a value to the [0, 255] channel range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

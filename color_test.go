package layervec

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGBOpaque(t *testing.T) {
	c := RGB(10, 20, 30)
	if c.A != 255 {
		t.Errorf("RGB alpha = %v, want 255", c.A)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{"black", RGB(0, 0, 0), "#000000"},
		{"white", RGB(255, 255, 255), "#ffffff"},
		{"mixed", RGB(0, 128, 255), "#0080ff"},
		{"fractional rounds", RGBA{R: 127.5, G: 0, B: 127.5, A: 255}, "#800080"},
		{"clamped high", RGBA{R: 300, G: 0, B: 0, A: 255}, "#ff0000"},
		{"clamped low", RGBA{R: -10, G: 0, B: 0, A: 255}, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA{R: 12, G: 34, B: 56, A: 255}
	got := FromColor(c.Color())
	if !colorsEqual(got, c, 0.5) {
		t.Errorf("FromColor(Color()) = %+v, want %+v", got, c)
	}
}

func TestColorNRGBA(t *testing.T) {
	c := RGBA{R: 255, G: 0, B: 0, A: 128}
	got, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatalf("Color() type = %T, want color.NRGBA", c.Color())
	}
	if got.R != 255 || got.A != 128 {
		t.Errorf("Color() = %+v, want R=255 A=128", got)
	}
}

func TestFromCMYK(t *testing.T) {
	tests := []struct {
		name     string
		channels []float64
		want     RGBA
	}{
		{"white", []float64{0, 0, 0, 0}, RGB(255, 255, 255)},
		{"black via k", []float64{0, 0, 0, 255}, RGB(0, 0, 0)},
		{"pure cyan", []float64{255, 0, 0, 0}, RGB(0, 255, 255)},
		{"half key", []float64{0, 0, 0, 127.5}, RGB(127.5, 127.5, 127.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromCMYK(tt.channels)
			if err != nil {
				t.Fatalf("FromCMYK() error = %v", err)
			}
			if !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("FromCMYK() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromCMYKChannelCount(t *testing.T) {
	for _, n := range []int{0, 3, 5} {
		_, err := FromCMYK(make([]float64, n))
		if !errors.Is(err, ErrChannelCount) {
			t.Errorf("FromCMYK(%d channels) error = %v, want ErrChannelCount", n, err)
		}
	}
}

// Package raster provides the default raster compositor for layervec:
// it flattens decoded per-channel pixel planes into standard images and
// rescales them when the document requests it.
//
// The conversion core treats rasters as opaque [image.Image] values;
// callers use this package to populate LayerNode.Pixels before handing
// the tree to a Converter.
package raster

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/layervec/internal/color"
)

// Flatten composites decoded 8-bit channel planes into an NRGBA image.
// planes holds R, G, B and an optional A plane, each of length
// width*height in row-major order. Three planes produce an opaque image.
//
// When premultiplied is true the color planes are stored premultiplied by
// alpha and are unpremultiplied during flattening, matching the source
// document's storage convention for composited layer data.
func Flatten(planes [][]uint8, width, height int, premultiplied bool) (*image.NRGBA, error) {
	if len(planes) != 3 && len(planes) != 4 {
		return nil, fmt.Errorf("layervec/raster: expected 3 or 4 channel planes, got %d", len(planes))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("layervec/raster: invalid dimensions %dx%d", width, height)
	}
	n := width * height
	for i, p := range planes {
		if len(p) != n {
			return nil, fmt.Errorf("layervec/raster: plane %d has %d samples, want %d", i, len(p), n)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < n; i++ {
		px := color.ColorU8{R: planes[0][i], G: planes[1][i], B: planes[2][i], A: 255}
		if len(planes) == 4 {
			px.A = planes[3][i]
		}
		if premultiplied && px.A != 255 {
			px = color.F32ToU8(color.Unpremultiply(color.U8ToF32(px)))
		}
		o := i * 4
		img.Pix[o+0] = px.R
		img.Pix[o+1] = px.G
		img.Pix[o+2] = px.B
		img.Pix[o+3] = px.A
	}
	return img, nil
}

// Scale resamples img to the given dimensions with bilinear filtering.
func Scale(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

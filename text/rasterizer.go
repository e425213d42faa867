// Package text rasterizes type-layer text for layervec.
//
// Type layers are rasterized, not vectorized: the conversion core routes
// them through the pixel-layer path, and this package supplies the pixels
// when a layer carries a text description instead of pre-composited
// raster data. Shaping uses go-text/typesetting (HarfBuzz), so kerning,
// ligatures and right-to-left scripts come out correctly; glyph outlines
// are filled with x/image/vector.
package text

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/layervec"
)

// Rasterizer renders layervec.TextSpec values to images. It implements
// layervec.TextRasterizer.
//
// A Rasterizer is safe for concurrent use: parsed fonts are cached behind
// a lock (font.Font is read-only) and the non-concurrent-safe
// HarfbuzzShaper instances are pooled.
type Rasterizer struct {
	shaperPool sync.Pool

	mu        sync.Mutex
	fontCache map[string]*font.Font
}

// NewRasterizer creates a text rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[string]*font.Font),
	}
}

// Rasterize shapes and fills spec's text, returning a tightly-sized NRGBA
// image. The text is drawn in spec.Color on a transparent background with
// the baseline placed at the shaped ascent.
func (r *Rasterizer) Rasterize(spec *layervec.TextSpec) (image.Image, error) {
	if spec == nil || spec.Text == "" {
		return nil, errors.New("layervec/text: empty text spec")
	}
	if spec.Size <= 0 {
		return nil, fmt.Errorf("layervec/text: invalid font size %v", spec.Size)
	}

	f, err := r.parseFont(spec.Font)
	if err != nil {
		return nil, err
	}
	face := font.NewFace(f)

	runes := []rune(spec.Text)
	dir := detectDirection(spec.Text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(spec.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("und"),
	}

	shaper := r.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	r.shaperPool.Put(shaper)

	ascent := fixedToFloat(out.LineBounds.Ascent)
	descent := fixedToFloat(out.LineBounds.Descent) // negative below baseline
	width := int(math.Ceil(fixedToFloat(out.Advance)))
	height := int(math.Ceil(ascent - descent))
	if width <= 0 || height <= 0 {
		return nil, errors.New("layervec/text: shaped text has no extent")
	}

	rast := vector.NewRasterizer(width, height)
	scale := float32(spec.Size) / float32(face.Upem())

	penX := 0.0
	baseline := ascent
	for _, g := range out.Glyphs {
		ox := penX + fixedToFloat(g.XOffset)
		oy := baseline - fixedToFloat(g.YOffset)
		appendOutline(rast, face, g.GlyphID, scale, float32(ox), float32(oy))
		penX += fixedToFloat(g.XAdvance)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	rast.Draw(dst, dst.Bounds(), image.NewUniform(spec.Color.Color()), image.Point{})
	return dst, nil
}

// appendOutline adds one glyph's outline to the rasterizer at the given
// origin. Outline coordinates are font units with Y pointing up, so they
// scale by size/upem and flip around the baseline. Bitmap and SVG glyphs
// have no outline and are skipped.
func appendOutline(rast *vector.Rasterizer, face *font.Face, gid font.GID, scale, ox, oy float32) {
	data := face.GlyphData(gid)
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return
	}
	fillSegments(rast, outline.Segments, scale, ox, oy)
}

// fillSegments walks an outline's segment stream onto the rasterizer.
// The stream carries no close op and the rasterizer's MoveTo does not
// close the contour in flight, so each MoveTo must close the previous
// contour explicitly; otherwise multi-contour glyphs ('o', 'B', '8')
// leave every inner contour open and the winding accumulation over the
// missing edges corrupts fill coverage.
func fillSegments(rast *vector.Rasterizer, segments []font.Segment, scale, ox, oy float32) {
	px := func(p font.SegmentPoint) (float32, float32) {
		return ox + p.X*scale, oy - p.Y*scale
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				rast.ClosePath()
			}
			x, y := px(seg.Args[0])
			rast.MoveTo(x, y)
			open = true
		case opentype.SegmentOpLineTo:
			x, y := px(seg.Args[0])
			rast.LineTo(x, y)
		case opentype.SegmentOpQuadTo:
			cx, cy := px(seg.Args[0])
			x, y := px(seg.Args[1])
			rast.QuadTo(cx, cy, x, y)
		case opentype.SegmentOpCubeTo:
			c1x, c1y := px(seg.Args[0])
			c2x, c2y := px(seg.Args[1])
			x, y := px(seg.Args[2])
			rast.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		rast.ClosePath()
	}
}

// parseFont returns the cached parsed font for the given raw data,
// parsing it on first use. font.Font is read-only and safe to share.
func (r *Rasterizer) parseFont(data []byte) (*font.Font, error) {
	if len(data) == 0 {
		return nil, errors.New("layervec/text: text spec carries no font data")
	}

	key := fontKey(data)
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.fontCache[key]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("layervec/text: parsing font: %w", err)
	}
	r.fontCache[key] = face.Font
	return face.Font, nil
}

// fontKey keys the font cache by the full blob, so distinct fonts can
// never alias to the same parsed entry. A document embeds a handful of
// fonts at most; the one-time key copy per font is negligible next to
// the parse it saves.
func fontKey(data []byte) string {
	return string(data)
}

// detectDirection resolves the paragraph's base direction.
// Mixed and neutral paragraphs fall back to left-to-right.
func detectDirection(s string) di.Direction {
	var p bidi.Paragraph
	p.SetString(s)
	order, err := p.Order()
	if err != nil {
		return di.DirectionLTR
	}
	if order.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by the
// caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

package layervec

import (
	"image"
	"math"
	"strconv"
)

// PaintKind declares how a paint descriptor resolves: exactly one of
// solid color, gradient, or pattern applies to any descriptor.
type PaintKind int

const (
	// PaintSolid paints a single color.
	PaintSolid PaintKind = iota
	// PaintGradient paints an interpolated gradient.
	PaintGradient
	// PaintPattern paints a tiled raster pattern.
	PaintPattern
)

// GradientDescriptor is a gradient paint as decoded from the source
// document: raw keyframes in the native integer location domain plus an
// orientation angle in degrees.
type GradientDescriptor struct {
	ColorStops   []RawColorStop
	OpacityStops []RawOpacityStop
	Angle        float64
}

// PatternDescriptor is a tiled pattern paint. Data holds the pattern tile
// raster; Angle (degrees) and Scale (percent, 100 when unset) position
// pattern space relative to the layer.
type PatternDescriptor struct {
	Data  image.Image
	Angle float64
	Scale float64
}

// PaintDescriptor is a resolved paint effect: a declared kind plus the
// matching payload. Descriptors with an unsupported payload for their
// declared kind are a recoverable per-layer condition, logged and skipped.
type PaintDescriptor struct {
	Kind     PaintKind
	Color    RGBA
	Gradient *GradientDescriptor
	Pattern  *PatternDescriptor
}

// defGradient materializes a gradient descriptor as a linear-gradient
// definition node under defs and returns its id. The gradient is
// resampled at the canonical breakpoint set (union of color and opacity
// keyframe locations) into discrete stop children.
func (r *run) defGradient(g *GradientDescriptor) (string, error) {
	if g == nil {
		return "", ErrNoStops
	}
	interp, err := NewGradientInterpolation(g.ColorStops, g.OpacityStops)
	if err != nil {
		return "", err
	}

	id := r.nextID("gradient")
	node := NewOutputNode(TagLinearGradient)
	node.SetAttr("id", id)

	start, end := gradientAxis(g.Angle)
	node.SetAttr("x1", formatFloat(start.X))
	node.SetAttr("y1", formatFloat(start.Y))
	node.SetAttr("x2", formatFloat(end.X))
	node.SetAttr("y2", formatFloat(end.Y))

	for _, s := range interp.Stops() {
		stop := NewOutputNode(TagStop)
		stop.SetAttr("offset", formatFloat(s.Location))
		stop.SetAttr("stop-color", s.Color.Hex())
		stop.SetAttr("stop-opacity", formatFloat(s.Opacity))
		node.AppendChild(stop)
	}

	r.ensureDefs().AppendChild(node)
	return id, nil
}

// gradientAxis rotates the default left-to-right gradient axis about the
// center of the unit bounding box. The document angle runs opposite the
// output rotation direction, hence the negation.
func gradientAxis(angleDegrees float64) (start, end Point) {
	if angleDegrees == 0 {
		return Pt(0, 0.5), Pt(1, 0.5)
	}
	m := Translate(0.5, 0.5).
		Multiply(Rotate(-angleDegrees * math.Pi / 180)).
		Multiply(Translate(-0.5, -0.5))
	return m.TransformPoint(Pt(0, 0.5)), m.TransformPoint(Pt(1, 0.5))
}

// defPattern materializes a pattern descriptor as a pattern definition
// node under defs, appending its tile raster to the image list, and
// returns the definition id. Reports false when the descriptor carries no
// tile data.
func (r *run) defPattern(layer *LayerNode, pat *PatternDescriptor) (string, bool) {
	if pat == nil || pat.Data == nil {
		return "", false
	}

	id := r.nextID("pattern")
	node := NewOutputNode(TagPattern)
	node.SetAttr("id", id)

	b := pat.Data.Bounds()
	node.SetAttr("width", strconv.Itoa(b.Dx()))
	node.SetAttr("height", strconv.Itoa(b.Dy()))
	setPatternTransform(layer, pat, node)

	tile := r.appendImage(pat.Data)
	tile.SetAttr("x", "0")
	tile.SetAttr("y", "0")
	tile.SetAttr("width", strconv.Itoa(b.Dx()))
	tile.SetAttr("height", strconv.Itoa(b.Dy()))
	node.AppendChild(tile)

	r.ensureDefs().AppendChild(node)
	return id, true
}

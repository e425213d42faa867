package layervec

import (
	"strconv"
	"strings"
)

// transformBuilder accumulates transform-function tokens for an SVG-style
// transform attribute. Functions compose outer to inner in append order.
type transformBuilder struct {
	funcs []string
}

// Translate appends a translate(x,y) function. A zero offset is dropped:
// absence, not an identity function, is the no-op representation.
func (b *transformBuilder) Translate(x, y float64) {
	if x == 0 && y == 0 {
		return
	}
	b.funcs = append(b.funcs, "translate("+formatFloat(x)+","+formatFloat(y)+")")
}

// ScalePercent appends a scale function for a percentage value, rendered
// as a ratio (50 → "scale(0.5)"). 100% is dropped.
func (b *transformBuilder) ScalePercent(percent float64) {
	if percent == 100 {
		return
	}
	b.funcs = append(b.funcs, "scale("+formatFloat(percent/100)+")")
}

// Rotate appends a rotate function with the angle sign inverted: the
// document's angle convention runs opposite the output coordinate
// system's rotation direction. A zero angle is dropped.
func (b *transformBuilder) Rotate(degrees float64) {
	if degrees == 0 {
		return
	}
	b.funcs = append(b.funcs, "rotate("+formatFloat(-degrees)+")")
}

// Empty reports whether no transform functions were emitted.
func (b *transformBuilder) Empty() bool {
	return len(b.funcs) == 0
}

// String renders the accumulated functions space-separated.
func (b *transformBuilder) String() string {
	return strings.Join(b.funcs, " ")
}

// formatFloat renders a float with no trailing precision noise:
// 0.5 stays "0.5", 12 stays "12", never "12.000000".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// setPatternTransform derives the pattern-space transform for a layer's
// pattern paint and sets it on node as a patternTransform attribute.
// The layer contributes the reference-point offset; the descriptor
// contributes angle (degrees) and scale (percent, default 100).
// Composition order is translate, then scale, then rotate. If none of the
// three apply, no attribute is set at all.
func setPatternTransform(layer *LayerNode, pat *PatternDescriptor, node *OutputNode) {
	var b transformBuilder
	if layer != nil {
		b.Translate(layer.PatternOffset.X, layer.PatternOffset.Y)
	}
	if pat != nil {
		scale := pat.Scale
		if scale == 0 {
			scale = 100
		}
		b.ScalePercent(scale)
		b.Rotate(pat.Angle)
	}
	if b.Empty() {
		return
	}
	node.SetAttr("patternTransform", b.String())
}

package layervec

import "strings"

// StrokeAlignment places the stroke outline relative to the path
// boundary.
type StrokeAlignment int

const (
	// AlignCenter draws the stroke centered on the path (the output
	// format's native behavior).
	AlignCenter StrokeAlignment = iota
	// AlignInner draws the stroke inside the path. Emulated by clipping
	// the stroke to the shape and doubling the line width, so the
	// surviving half matches the nominal width.
	AlignInner
	// AlignOuter draws the stroke outside the path. Approximated as
	// centered; the output format has no outside alignment.
	AlignOuter
)

// LineCap is the shape of stroke endpoints.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

func (c LineCap) css() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return ""
	}
}

// LineJoin is the shape of stroke joins.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

func (j LineJoin) css() string {
	switch j {
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return ""
	}
}

// StrokeDescriptor carries a shape layer's stroke and stroke-content
// effect settings as decoded from the source document.
//
// The stroke outline (Paint) and the stroke content (Content, which
// paints the shape's fill region) are independent: either may be enabled
// without the other, and each resolves its own paint.
type StrokeDescriptor struct {
	// Enabled turns the stroke outline on.
	Enabled bool

	// Width is the nominal line width in pixels.
	Width float64

	Alignment StrokeAlignment
	Cap       LineCap
	Join      LineJoin

	// Dash is the dash pattern in stroke-width multiples, nil for solid.
	Dash *Dash

	// FillDisabled forces the shape's fill invisible while keeping the
	// stroke: fill and stroke visibility are independently controllable.
	FillDisabled bool

	// ContentEnabled turns the stroke content (shape fill paint) on.
	ContentEnabled bool

	// Paint is the outline paint.
	Paint *PaintDescriptor

	// Content is the stroke-content paint, applied to the fill.
	Content *PaintDescriptor
}

// resolveStroke decorates an already-emitted path node with stroke and
// fill attributes from the layer's stroke descriptor. It is a no-op when
// the layer has neither an enabled stroke nor enabled stroke content.
//
// Paint resolution follows a fixed three-way precedence by declared kind:
// pattern, then gradient, then solid; exactly one applies. The outline
// and the content resolve independently.
func (r *run) resolveStroke(layer *LayerNode, node *OutputNode) *OutputNode {
	s := layer.Stroke
	if s == nil || (!s.Enabled && !s.ContentEnabled) {
		return node
	}

	if s.Enabled {
		width := s.Width
		if s.Alignment == AlignInner {
			if id := r.defClipPath(layer); id != "" {
				node.SetAttr("clip-path", "url(#"+id+")")
				// Half of the doubled stroke is clipped away, leaving
				// the nominal width visible inside the shape.
				width *= 2
			}
		}

		r.applyPaint(layer, s.Paint, node, "stroke")
		node.SetAttr("stroke-width", formatFloat(width))
		if v := s.Cap.css(); v != "" {
			node.SetAttr("stroke-linecap", v)
		}
		if v := s.Join.css(); v != "" {
			node.SetAttr("stroke-linejoin", v)
		}
		if s.Dash.IsDashed() {
			// Dash units are stroke-width multiples; scale by the
			// nominal width, not the alignment-doubled one.
			scaled := s.Dash.Scale(s.Width)
			node.SetAttr("stroke-dasharray", joinFloats(scaled.Array))
			if scaled.Offset != 0 {
				node.SetAttr("stroke-dashoffset", formatFloat(scaled.Offset))
			}
		}
		if s.FillDisabled {
			node.SetAttr("fill-opacity", "0")
		}
	}

	if s.ContentEnabled {
		r.applyPaint(layer, s.Content, node, "fill")
	}

	return node
}

// applyPaint resolves a paint descriptor onto the attr ("stroke" or
// "fill") of node. Unresolvable paints (missing gradient stops, missing
// pattern data) are a per-layer recoverable condition: logged, attribute
// left unset.
func (r *run) applyPaint(layer *LayerNode, p *PaintDescriptor, node *OutputNode, attr string) {
	if p == nil {
		return
	}
	switch p.Kind {
	case PaintPattern:
		id, ok := r.defPattern(layer, p.Pattern)
		if !ok {
			Logger().Warn("layervec: pattern paint without tile data, skipping",
				"layer", layer.Name, "attr", attr)
			return
		}
		node.SetAttr(attr, "url(#"+id+")")
	case PaintGradient:
		id, err := r.defGradient(p.Gradient)
		if err != nil {
			Logger().Warn("layervec: unresolvable gradient paint, skipping",
				"layer", layer.Name, "attr", attr, "error", err)
			return
		}
		node.SetAttr(attr, "url(#"+id+")")
	default:
		node.SetAttr(attr, p.Color.Hex())
	}
}

// defClipPath materializes the layer's vector mask as a clip-path
// definition under defs and returns its id, or "" when the layer has no
// usable mask. Used for inner-aligned strokes, which clip the doubled
// outline to the shape interior.
func (r *run) defClipPath(layer *LayerNode) string {
	tokens := PathTokens(layer.Mask, r.doc, r.conv.curve)
	if len(tokens) == 0 {
		return ""
	}

	id := r.nextID("clip")
	node := NewOutputNode(TagClipPath)
	node.SetAttr("id", id)

	p := NewOutputNode(TagPath)
	p.SetAttr("d", strings.Join(tokens, " "))
	node.AppendChild(p)

	r.ensureDefs().AppendChild(node)
	return id
}

// joinFloats renders values comma-separated with compact formatting.
func joinFloats(values []float64) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatFloat(v))
	}
	return b.String()
}

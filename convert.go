package layervec

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// TextRasterizer renders a type layer's text description to pixels.
// The text subpackage provides the default implementation; the core only
// consumes the interface.
type TextRasterizer interface {
	Rasterize(spec *TextSpec) (image.Image, error)
}

// Converter turns a decoded layer tree into an output element tree plus
// an image list. A Converter holds only configuration; every Convert call
// owns its full run state, so a single Converter may serve concurrent
// conversions of independent documents.
type Converter struct {
	width  int
	height int
	curve  rune
	text   TextRasterizer
}

// NewConverter creates a converter for documents with the given pixel
// dimensions. The dimensions scale normalized vector-mask coordinates at
// emission time.
func NewConverter(width, height int) *Converter {
	return &Converter{
		width:  width,
		height: height,
		curve:  DefaultCurveCommand,
	}
}

// SetCurveCommand overrides the Bézier command letter used in emitted
// path data. The default is 'C' (cubic).
func (c *Converter) SetCurveCommand(curve rune) {
	if curve == 0 {
		curve = DefaultCurveCommand
	}
	c.curve = curve
}

// SetTextRasterizer configures on-demand text rasterization for type
// layers that carry a TextSpec but no pre-composited pixels. Without one,
// such layers are skipped like any pixel layer without content.
func (c *Converter) SetTextRasterizer(tr TextRasterizer) {
	c.text = tr
}

// run is the state of one conversion: the output tree under construction,
// the image side-channel, the lazily-created defs node, and the id
// sequence for definition references. Never shared across Convert calls.
type run struct {
	conv   *Converter
	doc    Matrix
	root   *OutputNode
	defs   *OutputNode
	images ImageList
	idSeq  int
}

// Convert walks the layer tree depth-first, pre-order, left-to-right and
// returns the isomorphic output tree plus the accumulated image list.
//
// The conversion is deterministic. Per-layer problems (missing vector
// masks, layers without pixel content) are logged and skipped without
// aborting; only contract violations and the image-count invariant
// surface as errors.
func (c *Converter) Convert(root *LayerNode) (*OutputNode, ImageList, error) {
	if root == nil {
		return nil, nil, errors.New("layervec: nil root layer")
	}

	r := &run{
		conv: c,
		doc:  DocumentMatrix(c.width, c.height),
		root: NewOutputNode(TagGroup),
	}

	if root.Visible {
		if root.Kind == KindGroup {
			// The root group maps onto the document root node itself
			// rather than nesting one more container.
			r.decorate(root, r.root)
			for _, child := range root.Children {
				r.walk(child, r.root)
			}
		} else {
			r.walk(root, r.root)
		}
	}

	if n := r.root.CountTag(TagImage); n != len(r.images) {
		return nil, nil, fmt.Errorf("%w: %d placeholders, %d images", ErrImageCount, n, len(r.images))
	}
	return r.root, r.images, nil
}

// walk dispatches one layer onto its handler. cursor is the current
// insertion point; it is threaded explicitly through the recursion, so
// siblings of a group always see the pre-descent cursor.
func (r *run) walk(layer *LayerNode, cursor *OutputNode) {
	if !layer.Visible {
		// Invisibility prunes the whole subtree: no output node, no
		// recursion, regardless of descendant visibility flags.
		return
	}

	switch layer.Kind {
	case KindGroup:
		r.walkGroup(layer, cursor)
	case KindShape:
		r.walkShape(layer, cursor)
	case KindAdjustment:
		// Walked for traversal completeness only. No output node, no
		// cursor movement, no image entries.
		Logger().Debug("layervec: adjustment layer emits no output", "layer", layer.Name)
	default:
		// Pixel and type layers, and any unknown kind, flatten to
		// raster.
		r.walkPixel(layer, cursor)
	}
}

// walkGroup emits a container node and recurses into the children with
// the container as the new insertion point. Empty groups (no children,
// or all children invisible) still emit their container.
func (r *run) walkGroup(layer *LayerNode, cursor *OutputNode) {
	node := NewOutputNode(TagGroup)
	r.decorate(layer, node)
	cursor.AppendChild(node)
	for _, child := range layer.Children {
		r.walk(child, node)
	}
}

// walkPixel emits an image placeholder for the layer's flattened raster.
// Type layers land here by policy: text is rasterized, not vectorized.
// A type layer without pre-composited pixels is rendered through the
// configured text rasterizer when one is available.
func (r *run) walkPixel(layer *LayerNode, cursor *OutputNode) {
	img := layer.Pixels
	if img == nil && layer.Kind == KindType && layer.Text != nil && r.conv.text != nil {
		rendered, err := r.conv.text.Rasterize(layer.Text)
		if err != nil {
			Logger().Warn("layervec: text rasterization failed", "layer", layer.Name, "error", err)
		} else {
			img = rendered
		}
	}
	if img == nil || img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		Logger().Debug("layervec: layer has no renderable pixel content", "layer", layer.Name)
		return
	}

	node := r.appendImage(img)
	node.SetAttr("x", strconv.Itoa(layer.Left))
	node.SetAttr("y", strconv.Itoa(layer.Top))
	node.SetAttr("width", strconv.Itoa(layer.Width))
	node.SetAttr("height", strconv.Itoa(layer.Height))
	node.SetAttr("class", layer.Kind.String()+"-layer")
	r.decorate(layer, node)
	cursor.AppendChild(node)
}

// walkShape emits a path node from the layer's vector mask and hands it
// to the stroke & fill resolver. A missing or degenerate mask is a
// per-layer failure: the layer contributes nothing and the walk goes on.
func (r *run) walkShape(layer *LayerNode, cursor *OutputNode) {
	tokens := PathTokens(layer.Mask, r.doc, r.conv.curve)
	if len(tokens) == 0 {
		Logger().Warn("layervec: shape layer without usable vector mask, skipping", "layer", layer.Name)
		return
	}

	node := NewOutputNode(TagPath)
	node.SetAttr("d", strings.Join(tokens, " "))
	if layer.Paint != nil {
		r.applyPaint(layer, layer.Paint, node, "fill")
	}
	r.decorate(layer, node)
	r.resolveStroke(layer, node)
	cursor.AppendChild(node)
}

// decorate sets the attributes every emitted node shares: layer title,
// blend mode and opacity. Normal and pass-through blending emit no style
// at all. Full opacity emits no attribute; anything below, including a
// fully transparent 0, is carried through verbatim.
func (r *run) decorate(layer *LayerNode, node *OutputNode) {
	if layer.Name != "" {
		node.SetAttr("title", layer.Name)
	}
	if css := layer.BlendMode.css(); css != "" {
		node.SetAttr("style", "mix-blend-mode: "+css)
	}
	if layer.Opacity < 1 {
		node.SetAttr("opacity", formatFloat(clamp01(layer.Opacity)))
	}
}

// appendImage appends img to the run's image list and returns a fresh
// placeholder node carrying the entry's index. Keeping the append and the
// placeholder creation in one place is what upholds the count invariant.
func (r *run) appendImage(img image.Image) *OutputNode {
	r.images = append(r.images, img)
	node := NewOutputNode(TagImage)
	node.SetAttr("index", strconv.Itoa(len(r.images)-1))
	return node
}

// ensureDefs returns the run's defs node, creating it as the first child
// of the root on first use.
func (r *run) ensureDefs() *OutputNode {
	if r.defs == nil {
		r.defs = NewOutputNode(TagDefs)
		r.root.Children = append([]*OutputNode{r.defs}, r.root.Children...)
	}
	return r.defs
}

// nextID allocates a definition id unique within this run.
func (r *run) nextID(prefix string) string {
	r.idSeq++
	return fmt.Sprintf("%s-%d", prefix, r.idSeq)
}

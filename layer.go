package layervec

import "image"

// LayerKind identifies the variant of a LayerNode. The set is closed:
// dispatch switches over it exhaustively, with unknown values routed to
// the pixel-layer handler (treated as flattened raster).
type LayerKind int

const (
	// KindGroup is a container layer owning an ordered child sequence.
	KindGroup LayerKind = iota
	// KindPixel is a rasterized pixel layer.
	KindPixel
	// KindShape is a vector shape layer with a vector mask and optional
	// stroke/fill effect descriptors.
	KindShape
	// KindType is a text layer. Type layers are rasterized, not
	// vectorized: they route through the pixel-layer handler.
	KindType
	// KindAdjustment is a non-visual adjustment layer. Walked for
	// completeness, emits no output.
	KindAdjustment
)

// String returns the lowercase kind name, used for placeholder class
// attributes and log fields.
func (k LayerKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindPixel:
		return "pixel"
	case KindShape:
		return "shape"
	case KindType:
		return "type"
	case KindAdjustment:
		return "adjustment"
	default:
		return "unknown"
	}
}

// BlendMode is the layer compositing mode from the source document.
type BlendMode int

const (
	BlendPassThrough BlendMode = iota
	BlendNormal
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendLinearBurn
	BlendLinearDodge
	BlendHardLight
	BlendSoftLight
	BlendVividLight
	BlendLinearLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

// css maps a blend mode to its mix-blend-mode keyword. Modes without a
// vector-graphics equivalent map to the nearest keyword; pass-through and
// normal map to the empty string, meaning no attribute is emitted.
func (b BlendMode) css() string {
	switch b {
	case BlendMultiply, BlendLinearBurn:
		return "multiply"
	case BlendScreen, BlendLinearDodge:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendDarken:
		return "darken"
	case BlendLighten:
		return "lighten"
	case BlendColorDodge:
		return "color-dodge"
	case BlendColorBurn:
		return "color-burn"
	case BlendHardLight, BlendVividLight, BlendLinearLight:
		return "hard-light"
	case BlendSoftLight:
		return "soft-light"
	case BlendDifference:
		return "difference"
	case BlendExclusion:
		return "exclusion"
	case BlendHue:
		return "hue"
	case BlendSaturation:
		return "saturation"
	case BlendColor:
		return "color"
	case BlendLuminosity:
		return "luminosity"
	default:
		return ""
	}
}

// Vec2 is a 2D coordinate in normalized [0, 1] document-fraction space.
// Component 0 is the vertical fraction, component 1 the horizontal one;
// see [DocumentMatrix] for the mapping to pixel space.
type Vec2 [2]float64

// Anchor is one on-curve point of a Bézier subpath together with its two
// control handles.
type Anchor struct {
	// Anchor is the on-curve point.
	Anchor Vec2
	// Preceding is the incoming control handle.
	Preceding Vec2
	// Leaving is the outgoing control handle.
	Leaving Vec2
}

// Subpath is one contiguous run of anchors, open or closed.
type Subpath struct {
	Anchors []Anchor
	Closed  bool
}

// VectorMask is the vector outline of a shape layer: one or more disjoint
// subpaths in document-fraction coordinates.
type VectorMask struct {
	Subpaths []Subpath
}

// TextSpec describes the text content of a type layer for callers that
// rasterize text on demand (see the text subpackage). Layers decoded with
// a pre-composited raster do not need one.
type TextSpec struct {
	// Text is the layer's character content.
	Text string
	// Font is the raw font file (TTF/OTF) to shape and rasterize with.
	Font []byte
	// Size is the font size in document pixels.
	Size float64
	// Color is the fill color of the rasterized text.
	Color RGBA
}

// LayerNode is one node of the input layered-image tree. The tree is
// supplied fully decoded by an external document provider; the core reads
// it and never mutates it.
//
// Width and Height are always non-negative. A group's own bounding box is
// not required to equal the union of its children's boxes and must not be
// assumed to.
type LayerNode struct {
	Kind    LayerKind
	Name    string
	Visible bool

	// Bounding box in document pixel space.
	Left, Top, Width, Height int

	BlendMode BlendMode
	// Opacity in [0, 1]: 0 is fully transparent, 1 fully opaque.
	// Every layer carries an opacity; decoders must set 1 for layers
	// the document marks fully opaque.
	Opacity float64

	// Children is the ordered child sequence of a group. The parent
	// exclusively owns its children.
	Children []*LayerNode

	// Mask is the vector outline of a shape or type layer.
	Mask *VectorMask

	// Stroke carries the stroke/fill effect descriptors of a shape layer.
	Stroke *StrokeDescriptor

	// Paint is the shape layer's base fill paint.
	Paint *PaintDescriptor

	// PatternOffset is the reference-point offset for pattern paints on
	// this layer, in pixels. Zero when the document carries none.
	PatternOffset Point

	// Pixels is the flattened raster content of a pixel or type layer as
	// produced by the external raster compositor. Nil when the layer has
	// no renderable pixel content.
	Pixels image.Image

	// Text is the optional text description of a type layer, consulted
	// only when Pixels is nil and a text rasterizer is configured.
	Text *TextSpec
}

// HasPixels reports whether the layer carries renderable pixel content.
func (n *LayerNode) HasPixels() bool {
	if n.Pixels == nil {
		return false
	}
	b := n.Pixels.Bounds()
	return b.Dx() > 0 && b.Dy() > 0
}

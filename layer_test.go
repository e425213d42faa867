package layervec

import "testing"

func TestBlendModeCSS(t *testing.T) {
	tests := []struct {
		name string
		mode BlendMode
		want string
	}{
		{"pass-through emits nothing", BlendPassThrough, ""},
		{"normal emits nothing", BlendNormal, ""},
		{"multiply", BlendMultiply, "multiply"},
		{"screen", BlendScreen, "screen"},
		{"linear burn nearest keyword", BlendLinearBurn, "multiply"},
		{"linear dodge nearest keyword", BlendLinearDodge, "screen"},
		{"vivid light nearest keyword", BlendVividLight, "hard-light"},
		{"luminosity", BlendLuminosity, "luminosity"},
		{"unknown value emits nothing", BlendMode(-1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.css(); got != tt.want {
				t.Errorf("css() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayerKindString(t *testing.T) {
	tests := []struct {
		kind LayerKind
		want string
	}{
		{KindGroup, "group"},
		{KindPixel, "pixel"},
		{KindShape, "shape"},
		{KindType, "type"},
		{KindAdjustment, "adjustment"},
		{LayerKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("LayerKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestHasPixels(t *testing.T) {
	if (&LayerNode{}).HasPixels() {
		t.Error("layer without raster reported pixels")
	}
	if (&LayerNode{Pixels: testImage(0, 4)}).HasPixels() {
		t.Error("zero-width raster reported pixels")
	}
	if !(&LayerNode{Pixels: testImage(2, 2)}).HasPixels() {
		t.Error("non-empty raster reported no pixels")
	}
}

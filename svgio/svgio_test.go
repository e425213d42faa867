package svgio

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/gogpu/layervec"
)

func TestWriteEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	root := layervec.NewOutputNode(layervec.TagGroup)

	if err := Write(&buf, root, nil, 640, 480); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("output does not open an svg element: %q", out)
	}
	if !strings.Contains(out, `viewBox="0 0 640 480"`) {
		t.Errorf("output missing viewBox: %q", out)
	}
}

func TestWriteRootAttributesOnSvgElement(t *testing.T) {
	// A decorated root group lands on the document root node; its
	// attributes belong to the <svg> element, not to any child.
	root := layervec.NewOutputNode(layervec.TagGroup).
		SetAttr("title", "poster").
		SetAttr("opacity", "0.5")
	root.AppendChild(layervec.NewOutputNode(layervec.TagPath))

	var buf bytes.Buffer
	if err := Write(&buf, root, nil, 10, 10); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	open, _, ok := strings.Cut(buf.String(), ">")
	if !ok {
		t.Fatalf("no element opened: %q", buf.String())
	}
	if !strings.Contains(open, `title="poster"`) || !strings.Contains(open, `opacity="0.5"`) {
		t.Errorf("svg element %q missing root attributes", open)
	}
}

func TestWriteTagMapping(t *testing.T) {
	root := layervec.NewOutputNode(layervec.TagGroup)
	g := layervec.NewOutputNode(layervec.TagGroup).SetAttr("title", "back")
	p := layervec.NewOutputNode(layervec.TagPath).SetAttr("d", "M 0 0 Z")
	g.AppendChild(p)
	root.AppendChild(g)

	var buf bytes.Buffer
	if err := Write(&buf, root, nil, 10, 10); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<g title="back">`) {
		t.Errorf("group not serialized as <g>: %q", out)
	}
	if !strings.Contains(out, `<path d="M 0 0 Z"/>`) {
		t.Errorf("path not serialized self-closing: %q", out)
	}
}

func TestWriteUnknownTag(t *testing.T) {
	root := layervec.NewOutputNode(layervec.TagGroup)
	root.AppendChild(layervec.NewOutputNode("bogus"))

	if err := Write(&bytes.Buffer{}, root, nil, 10, 10); err == nil {
		t.Error("Write() error = nil, want unknown-tag failure")
	}
}

func TestWriteImageDataURI(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	root := layervec.NewOutputNode(layervec.TagGroup)
	ph := layervec.NewOutputNode(layervec.TagImage).
		SetAttr("index", "0").
		SetAttr("x", "5")
	root.AppendChild(ph)

	var buf bytes.Buffer
	if err := Write(&buf, root, layervec.ImageList{img}, 10, 10); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `xlink:href="data:image/png;base64,`) {
		t.Errorf("image not embedded as data URI: %q", out)
	}
	if strings.Contains(out, `index=`) {
		t.Errorf("index attribute leaked into output: %q", out)
	}
	if !strings.Contains(out, `x="5"`) {
		t.Errorf("other image attributes dropped: %q", out)
	}
}

func TestWriteImageIndexErrors(t *testing.T) {
	tests := []struct {
		name string
		ph   *layervec.OutputNode
	}{
		{"missing index", layervec.NewOutputNode(layervec.TagImage)},
		{"bad index", layervec.NewOutputNode(layervec.TagImage).SetAttr("index", "x")},
		{"out of range", layervec.NewOutputNode(layervec.TagImage).SetAttr("index", "3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := layervec.NewOutputNode(layervec.TagGroup)
			root.AppendChild(tt.ph)
			if err := Write(&bytes.Buffer{}, root, nil, 10, 10); err == nil {
				t.Error("Write() error = nil, want placeholder resolution failure")
			}
		})
	}
}

func TestWriteEscapesAttributes(t *testing.T) {
	root := layervec.NewOutputNode(layervec.TagGroup)
	root.AppendChild(layervec.NewOutputNode(layervec.TagGroup).SetAttr("title", `a<b&"c"`))

	var buf bytes.Buffer
	if err := Write(&buf, root, nil, 10, 10); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.Contains(buf.String(), `a<b`) {
		t.Errorf("attribute value not escaped: %q", buf.String())
	}
}

type failWriter struct{ err error }

func (f *failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWritePropagatesWriterError(t *testing.T) {
	want := errors.New("sink closed")
	root := layervec.NewOutputNode(layervec.TagGroup)
	root.AppendChild(layervec.NewOutputNode(layervec.TagPath))

	if err := Write(&failWriter{err: want}, root, nil, 10, 10); !errors.Is(err, want) {
		t.Errorf("Write() error = %v, want %v", err, want)
	}
}

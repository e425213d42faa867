// Package svgio renders a layervec output tree as SVG 1.1 text.
//
// The conversion core emits a format-agnostic element tree; this package
// maps its fixed tag vocabulary onto SVG elements and embeds the image
// list as base64 data URIs, resolving each image-placeholder through its
// index attribute so the placeholder/image correlation survives
// serialization.
package svgio

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image/png"
	"io"
	"strconv"

	"github.com/gogpu/layervec"
)

// tagNames maps the output-tree vocabulary onto SVG element names.
var tagNames = map[string]string{
	layervec.TagGroup:          "g",
	layervec.TagImage:          "image",
	layervec.TagPath:           "path",
	layervec.TagDefs:           "defs",
	layervec.TagLinearGradient: "linearGradient",
	layervec.TagPattern:        "pattern",
	layervec.TagClipPath:       "clipPath",
	layervec.TagStop:           "stop",
}

// Write serializes the output tree rooted at root to w as a standalone
// SVG document of the given pixel dimensions. The root node maps onto the
// <svg> element itself: its attributes (title, blend style, opacity when
// the document root is a decorated group) are emitted there and its
// children directly below. Every image placeholder is replaced by an
// <image> element with its list entry PNG-encoded into a data URI.
func Write(w io.Writer, root *layervec.OutputNode, images layervec.ImageList, width, height int) error {
	bw := &errWriter{w: w}
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d"`,
		width, height, width, height)
	if root != nil {
		for _, a := range root.Attrs {
			fmt.Fprintf(bw, ` %s="%s"`, a.Key, escape(a.Value))
		}
	}
	fmt.Fprint(bw, ">\n")
	if root != nil {
		for _, child := range root.Children {
			if err := writeNode(bw, child, images, 1); err != nil {
				return err
			}
		}
	}
	fmt.Fprint(bw, "</svg>\n")
	return bw.err
}

func writeNode(w *errWriter, n *layervec.OutputNode, images layervec.ImageList, depth int) error {
	name, ok := tagNames[n.Tag]
	if !ok {
		return fmt.Errorf("layervec/svgio: unknown output tag %q", n.Tag)
	}

	indent(w, depth)
	fmt.Fprintf(w, "<%s", name)
	for _, a := range n.Attrs {
		if n.Tag == layervec.TagImage && a.Key == "index" {
			// Resolved into xlink:href below, not emitted verbatim.
			continue
		}
		fmt.Fprintf(w, ` %s="%s"`, a.Key, escape(a.Value))
	}

	if n.Tag == layervec.TagImage {
		href, err := imageHref(n, images)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, ` xlink:href="%s"`, href)
	}

	if len(n.Children) == 0 && n.Text == "" {
		fmt.Fprint(w, "/>\n")
		return w.err
	}

	fmt.Fprint(w, ">")
	if n.Text != "" {
		fmt.Fprint(w, escape(n.Text))
	}
	if len(n.Children) > 0 {
		fmt.Fprint(w, "\n")
		for _, child := range n.Children {
			if err := writeNode(w, child, images, depth+1); err != nil {
				return err
			}
		}
		indent(w, depth)
	}
	fmt.Fprintf(w, "</%s>\n", name)
	return w.err
}

// imageHref resolves a placeholder's index attribute against the image
// list and encodes the entry as a PNG data URI.
func imageHref(n *layervec.OutputNode, images layervec.ImageList) (string, error) {
	v, ok := n.Attr("index")
	if !ok {
		return "", fmt.Errorf("layervec/svgio: image placeholder without index attribute")
	}
	idx, err := strconv.Atoi(v)
	if err != nil {
		return "", fmt.Errorf("layervec/svgio: bad image index %q: %w", v, err)
	}
	img := images.At(idx)
	if img == nil {
		return "", fmt.Errorf("layervec/svgio: image index %d outside list of %d", idx, len(images))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("layervec/svgio: encoding image %d: %w", idx, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// escape renders a value XML-escaped for use in attribute or text
// position.
func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails when the writer fails; bytes.Buffer cannot.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func indent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, "  ")
	}
}

// errWriter latches the first write error so serialization can bail out
// without checking every Fprintf.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

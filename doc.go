// Package layervec converts a decoded layered-image document tree into a
// vector-graphics element tree plus an ordered list of raster sub-images.
//
// # Overview
//
// The input is a [LayerNode] tree as produced by an external document
// decoder: nested groups, pixel layers, shape layers, type layers and
// adjustment layers, each carrying geometry, blend mode, opacity and
// optional vector masks and stroke/fill effect descriptors. A [Converter]
// walks that tree depth-first and emits an isomorphic [OutputNode] tree
// using a small fixed tag vocabulary (group-container, path,
// image-placeholder, plus gradient/pattern/clip definition nodes), along
// with an [ImageList] of flattened rasters correlated index-for-index with
// the image-placeholder nodes.
//
// # Quick Start
//
//	conv := layervec.NewConverter(800, 600)
//	root, images, err := conv.Convert(doc)
//	if err != nil {
//	    return err
//	}
//	svgio.Write(w, root, images, 800, 600)
//
// The conversion is a pure, deterministic, single-threaded tree transform.
// Each Convert call owns its run state, so independent documents may be
// converted concurrently on the same Converter.
//
// Binary decoding of the layered-image format, font discovery and
// rasterization of the output are out of scope; see the raster, text and
// svgio subpackages for the default collaborator implementations.
package layervec

package layervec

import "image"

// ImageList is the ordered side-channel of raster sub-images produced by
// one conversion run. It is append-only during the run and grows by one
// entry for every image-placeholder node emitted into the output tree;
// each placeholder carries an "index" attribute naming its entry.
//
// After a run completes, the placeholder count and the list length must
// match; the dispatch engine verifies this and fails the whole run on a
// mismatch. Consumers embedding or externalizing the images must preserve
// the index correlation.
type ImageList []image.Image

// At returns the image at index i, or nil when i is out of range.
func (l ImageList) At(i int) image.Image {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

package layervec

import "errors"

// Sentinel errors reported by the conversion core. Per-layer failures
// (missing vector masks, layers without pixel content) are logged and
// skipped instead; only contract and invariant violations surface as
// errors.
var (
	// ErrNoStops is returned when a gradient is constructed from an empty
	// color-stop or opacity-stop list.
	ErrNoStops = errors.New("layervec: gradient requires at least one stop")

	// ErrLocationRange is returned when a gradient is queried outside the
	// normalized [0, 1] location range.
	ErrLocationRange = errors.New("layervec: gradient location out of [0, 1] range")

	// ErrChannelCount is returned when a color-space conversion receives
	// input with the wrong number of channels.
	ErrChannelCount = errors.New("layervec: color conversion requires 4 channels")

	// ErrImageCount signals that the number of image-placeholder nodes in
	// the output tree diverged from the image list length at the end of a
	// run. This indicates a bug in the dispatch engine, not bad input.
	ErrImageCount = errors.New("layervec: image placeholder count does not match image list length")
)

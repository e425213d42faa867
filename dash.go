package layervec

import "math"

// Dash defines a dash pattern for a stroke outline.
// Lengths are in stroke-width multiples, as stored by the source
// document: a [2, 1] pattern on a 3px stroke dashes 6px on, 3px off.
// Scale by the resolved line width before emission.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	Array []float64

	// Offset is the starting offset into the pattern, in the same
	// stroke-width-multiple units.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are normalized to their absolute value.
// Returns nil if no lengths are provided or all lengths are zero,
// meaning a solid line.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	any := false
	for _, l := range lengths {
		if l > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &Dash{Array: normalized}
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for a nil Dash or an empty/all-zero array.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Scale returns a new Dash with all lengths and the offset multiplied by
// factor. The stroke resolver scales by the line width to turn the
// stored stroke-width-multiple units into absolute lengths.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}

	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}

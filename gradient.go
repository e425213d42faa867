package layervec

import (
	"sort"
)

// stopLocationDomain is the native integer keyframe location domain of the
// source document format: raw stop locations span 0..4096 and represent
// normalized gradient positions 0.0..1.0.
const stopLocationDomain = 4096

// RawColorStop is a color keyframe as decoded from the source document.
// Location is in the native 0..4096 integer domain.
type RawColorStop struct {
	Location int
	Color    RGBA
}

// RawOpacityStop is an opacity keyframe as decoded from the source
// document. Location is in the native 0..4096 integer domain; Opacity is
// a percentage 0..100.
type RawOpacityStop struct {
	Location int
	Opacity  float64
}

// ColorStop is a normalized color keyframe with Location in [0, 1].
type ColorStop struct {
	Location float64
	Color    RGBA
}

// OpacityStop is a normalized opacity keyframe with Location in [0, 1]
// and Opacity in [0, 1].
type OpacityStop struct {
	Location float64
	Opacity  float64
}

// GradientStop is a resampled gradient breakpoint carrying both the
// interpolated color and opacity at its location. Produced by
// [GradientInterpolation.Stops].
type GradientStop struct {
	Location float64
	Color    RGBA
	Opacity  float64
}

// GradientInterpolation maps a sparse, possibly-degenerate keyframe
// sequence to any query point in [0, 1].
//
// Construction sorts both stop sequences by location and pads them so the
// first stop sits at exactly 0.0 and the last at exactly 1.0, duplicating
// the nearest endpoint value when the original sequence did not already
// touch the boundary. Every query therefore has a bracketing pair.
// A GradientInterpolation is immutable after construction.
type GradientInterpolation struct {
	colorStops   []ColorStop
	opacityStops []OpacityStop
}

// NewGradientInterpolation builds an interpolator from raw keyframes.
// Returns ErrNoStops if either list is empty: a gradient with no color or
// no opacity keyframes is a malformed document, not a degenerate one.
func NewGradientInterpolation(colors []RawColorStop, opacities []RawOpacityStop) (*GradientInterpolation, error) {
	if len(colors) == 0 || len(opacities) == 0 {
		return nil, ErrNoStops
	}

	cs := make([]ColorStop, len(colors))
	for i, s := range colors {
		cs[i] = ColorStop{
			Location: float64(s.Location) / stopLocationDomain,
			Color:    s.Color,
		}
	}
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Location < cs[j].Location })
	if cs[0].Location != 0 {
		cs = append([]ColorStop{{Location: 0, Color: cs[0].Color}}, cs...)
	}
	if last := cs[len(cs)-1]; last.Location != 1 {
		cs = append(cs, ColorStop{Location: 1, Color: last.Color})
	}

	os := make([]OpacityStop, len(opacities))
	for i, s := range opacities {
		os[i] = OpacityStop{
			Location: float64(s.Location) / stopLocationDomain,
			Opacity:  clamp01(s.Opacity / 100),
		}
	}
	sort.SliceStable(os, func(i, j int) bool { return os[i].Location < os[j].Location })
	if os[0].Location != 0 {
		os = append([]OpacityStop{{Location: 0, Opacity: os[0].Opacity}}, os...)
	}
	if last := os[len(os)-1]; last.Location != 1 {
		os = append(os, OpacityStop{Location: 1, Opacity: last.Opacity})
	}

	return &GradientInterpolation{colorStops: cs, opacityStops: os}, nil
}

// ColorStops returns the normalized, padded color keyframes.
// The returned slice is shared; callers must not modify it.
func (g *GradientInterpolation) ColorStops() []ColorStop { return g.colorStops }

// OpacityStops returns the normalized, padded opacity keyframes.
// The returned slice is shared; callers must not modify it.
func (g *GradientInterpolation) OpacityStops() []OpacityStop { return g.opacityStops }

// ColorAt returns the interpolated color at location.
// Returns ErrLocationRange for queries outside [0, 1]. Coincident
// bracketing stops deterministically resolve to the earlier stop's color
// instead of dividing by zero.
func (g *GradientInterpolation) ColorAt(location float64) (RGBA, error) {
	if location < 0 || location > 1 {
		return RGBA{}, ErrLocationRange
	}

	// Scan for the first stop at or past the query. The padded sequence
	// guarantees one exists.
	idx := 0
	for idx < len(g.colorStops) && g.colorStops[idx].Location < location {
		idx++
	}
	if idx == 0 {
		return g.colorStops[0].Color, nil
	}

	lo, hi := g.colorStops[idx-1], g.colorStops[idx]
	if hi.Location == lo.Location {
		// Zero-width bracket: the earlier stop wins.
		return lo.Color, nil
	}
	if hi.Location == location {
		// Exact keyframe hit. Returning the stop value directly keeps
		// boundary queries exact instead of round-tripping through t=1.
		return hi.Color, nil
	}

	t := (location - lo.Location) / (hi.Location - lo.Location)
	return RGBA{
		R: lo.Color.R + t*(hi.Color.R-lo.Color.R),
		G: lo.Color.G + t*(hi.Color.G-lo.Color.G),
		B: lo.Color.B + t*(hi.Color.B-lo.Color.B),
		A: lo.Color.A + t*(hi.Color.A-lo.Color.A),
	}, nil
}

// OpacityAt returns the interpolated opacity in [0, 1] at location.
// Mirrors ColorAt exactly, including the range check and the
// earlier-stop rule for coincident brackets.
func (g *GradientInterpolation) OpacityAt(location float64) (float64, error) {
	if location < 0 || location > 1 {
		return 0, ErrLocationRange
	}

	idx := 0
	for idx < len(g.opacityStops) && g.opacityStops[idx].Location < location {
		idx++
	}
	if idx == 0 {
		return g.opacityStops[0].Opacity, nil
	}

	lo, hi := g.opacityStops[idx-1], g.opacityStops[idx]
	if hi.Location == lo.Location {
		return lo.Opacity, nil
	}
	if hi.Location == location {
		return hi.Opacity, nil
	}

	t := (location - lo.Location) / (hi.Location - lo.Location)
	return lo.Opacity + t*(hi.Opacity-lo.Opacity), nil
}

// Stops resamples the gradient at the union of its color and opacity
// keyframe locations, sorted and deduplicated, pairing each location with
// its interpolated color and opacity. This yields the canonical set of
// breakpoints for emission as discrete output gradient stops.
//
// Locations originate from the same integer domain, so exact float
// equality is well-defined for deduplication.
func (g *GradientInterpolation) Stops() []GradientStop {
	locs := make([]float64, 0, len(g.colorStops)+len(g.opacityStops))
	for _, s := range g.colorStops {
		locs = append(locs, s.Location)
	}
	for _, s := range g.opacityStops {
		locs = append(locs, s.Location)
	}
	sort.Float64s(locs)

	stops := make([]GradientStop, 0, len(locs))
	prev := -1.0
	for _, loc := range locs {
		if loc == prev {
			continue
		}
		prev = loc
		// Padded stop sequences cover [0, 1], so in-range queries cannot
		// fail.
		c, _ := g.ColorAt(loc)
		o, _ := g.OpacityAt(loc)
		stops = append(stops, GradientStop{Location: loc, Color: c, Opacity: o})
	}
	return stops
}

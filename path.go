package layervec

// DefaultCurveCommand is the path command emitted for Bézier segments
// when no override is configured: 'C', the cubic curve command.
const DefaultCurveCommand = 'C'

// PathTokens converts a vector mask into an ordered, finite sequence of
// path-data tokens. Each token is either a command letter or one
// formatted coordinate; joining the sequence with spaces yields valid
// path data.
//
// Anchor coordinates are mapped through m (normally [DocumentMatrix]),
// which scales document fractions to pixels and applies the fixed axis
// swap of the source format. Per non-empty subpath the sequence is: a
// move-to with the first anchor's on-curve point, the curve command
// letter once, then for each consecutive anchor pair six coordinates:
// the first anchor's leaving handle, then the second anchor's preceding
// handle and on-curve point. Closed subpaths wrap
// the final pair back to the first anchor and terminate with "Z"; open
// subpaths stop at the last anchor with neither. Empty subpaths emit
// nothing. Disjoint subpaths concatenate in input order.
//
// Nested subpaths do not punch holes: there is no even-odd fill-rule
// handling for compound masks.
func PathTokens(mask *VectorMask, m Matrix, curve rune) []string {
	if mask == nil {
		return nil
	}
	if curve == 0 {
		curve = DefaultCurveCommand
	}

	var tokens []string
	for _, sub := range mask.Subpaths {
		tokens = appendSubpathTokens(tokens, sub, m, curve)
	}
	return tokens
}

func appendSubpathTokens(tokens []string, sub Subpath, m Matrix, curve rune) []string {
	if len(sub.Anchors) == 0 {
		return tokens
	}

	first := project(m, sub.Anchors[0].Anchor)
	tokens = append(tokens, "M", formatFloat(first.X), formatFloat(first.Y))
	tokens = append(tokens, string(curve))

	segments := len(sub.Anchors) - 1
	if sub.Closed {
		// A closed subpath wraps its final segment back to the first
		// anchor.
		segments = len(sub.Anchors)
	}
	for i := 0; i < segments; i++ {
		from := sub.Anchors[i]
		to := sub.Anchors[(i+1)%len(sub.Anchors)]

		c1 := project(m, from.Leaving)
		c2 := project(m, to.Preceding)
		end := project(m, to.Anchor)
		tokens = append(tokens,
			formatFloat(c1.X), formatFloat(c1.Y),
			formatFloat(c2.X), formatFloat(c2.Y),
			formatFloat(end.X), formatFloat(end.Y),
		)
	}

	if sub.Closed {
		tokens = append(tokens, "Z")
	}
	return tokens
}

// project maps a document-fraction coordinate into pixel space.
func project(m Matrix, v Vec2) Point {
	return m.TransformPoint(Pt(v[0], v[1]))
}

package layervec

import (
	"math"
	"testing"
)

func pointsEqual(p1, p2 Point, epsilon float64) bool {
	return math.Abs(p1.X-p2.X) < epsilon && math.Abs(p1.Y-p2.Y) < epsilon
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	p := m.TransformPoint(Pt(3, 4))
	if !pointsEqual(p, Pt(3, 4), 1e-9) {
		t.Errorf("identity transform moved point to %+v", p)
	}
}

func TestTranslate(t *testing.T) {
	p := Translate(10, -5).TransformPoint(Pt(1, 2))
	if !pointsEqual(p, Pt(11, -3), 1e-9) {
		t.Errorf("translated point = %+v, want (11, -3)", p)
	}
}

func TestScale(t *testing.T) {
	p := Scale(2, 3).TransformPoint(Pt(4, 5))
	if !pointsEqual(p, Pt(8, 15), 1e-9) {
		t.Errorf("scaled point = %+v, want (8, 15)", p)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	p := Rotate(math.Pi / 2).TransformPoint(Pt(1, 0))
	if !pointsEqual(p, Pt(0, 1), 1e-9) {
		t.Errorf("rotated point = %+v, want (0, 1)", p)
	}
}

func TestDocumentMatrixAxisSwap(t *testing.T) {
	m := DocumentMatrix(100, 200)

	// Component 0 (point X here) is the vertical fraction, component 1
	// the horizontal one.
	p := m.TransformPoint(Pt(0.5, 0.25))
	if !pointsEqual(p, Pt(25, 100), 1e-9) {
		t.Errorf("document point = %+v, want (25, 100)", p)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Translate then scale is not scale then translate.
	a := Scale(2, 2).Multiply(Translate(1, 0)).TransformPoint(Pt(0, 0))
	b := Translate(1, 0).Multiply(Scale(2, 2)).TransformPoint(Pt(0, 0))
	if !pointsEqual(a, Pt(2, 0), 1e-9) {
		t.Errorf("scale*translate = %+v, want (2, 0)", a)
	}
	if !pointsEqual(b, Pt(1, 0), 1e-9) {
		t.Errorf("translate*scale = %+v, want (1, 0)", b)
	}
}

func TestInvert(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.7)).Multiply(Scale(2, 5))
	p := Pt(1.5, -2.5)
	back := m.Invert().TransformPoint(m.TransformPoint(p))
	if !pointsEqual(back, p, 1e-9) {
		t.Errorf("round trip = %+v, want %+v", back, p)
	}
}

func TestInvertSingular(t *testing.T) {
	m := Scale(0, 0).Invert()
	if !m.IsIdentity() {
		t.Errorf("singular inverse = %+v, want identity", m)
	}
}

package shapes

import "github.com/lunehart/vista/geom"

// Triangle is the filled triangle with vertices A, B and C, in either
// winding order.
type Triangle struct {
	A, B, C geom.Point
}

// Bounds returns the tightest rectangle covering all three vertices.
func (t Triangle) Bounds() geom.Rect {
	return geom.BoundsOf(t.A, t.B, t.C)
}

// Contains reports whether p lies within the triangle, edges included.
// A zero-area triangle contains nothing.
func (t Triangle) Contains(p geom.Point) bool {
	if t.B.Sub(t.A).Cross(t.C.Sub(t.A)) == 0 {
		return false
	}
	d1 := edgeSign(p, t.A, t.B)
	d2 := edgeSign(p, t.B, t.C)
	d3 := edgeSign(p, t.C, t.A)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// edgeSign is the cross product of the edge a->b with a->p. Its sign
// tells which side of the edge line p falls on; zero means on the line.
func edgeSign(p, a, b geom.Point) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

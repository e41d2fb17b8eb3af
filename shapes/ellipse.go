package shapes

import "github.com/lunehart/vista/geom"

// Ellipse is an axis-aligned ellipse around Center with radii RX and RY.
type Ellipse struct {
	Center geom.Point
	RX, RY float64
}

// Bounds returns the rectangle enclosing the ellipse.
func (e Ellipse) Bounds() geom.Rect {
	return geom.Rect{
		Pos: geom.Pt(e.Center.X-e.RX, e.Center.Y-e.RY),
		W:   2 * e.RX,
		H:   2 * e.RY,
	}
}

// Contains reports whether p lies within the ellipse, boundary included.
// Non-positive radii contain nothing.
func (e Ellipse) Contains(p geom.Point) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx := (p.X - e.Center.X) / e.RX
	dy := (p.Y - e.Center.Y) / e.RY
	return dx*dx+dy*dy <= 1
}

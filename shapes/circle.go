// Package shapes provides the built-in drawables beyond geom.Rect. Every
// shape answers two questions: its axis-aligned bounding box and whether a
// world point lies inside it. Anything with those two methods can be put
// on a canvas; this package is the reference for writing new ones.
//
// Boundary points are inside for all shapes here. A malformed shape (a
// negative radius, a zero-area triangle) contains nothing rather than
// panicking.
package shapes

import "github.com/lunehart/vista/geom"

// Circle is a disc around Center.
type Circle struct {
	Center geom.Point
	Radius float64
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() geom.Rect {
	return geom.Rect{
		Pos: geom.Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius),
		W:   2 * c.Radius,
		H:   2 * c.Radius,
	}
}

// Contains reports whether p lies within the circle, boundary included.
// A negative radius contains nothing.
func (c Circle) Contains(p geom.Point) bool {
	if c.Radius < 0 {
		return false
	}
	return p.Sub(c.Center).LengthSquared() <= c.Radius*c.Radius
}

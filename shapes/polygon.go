package shapes

import "github.com/lunehart/vista/geom"

// Polygon is a closed polygon over its vertex ring; the last vertex
// connects back to the first implicitly. Containment follows the non-zero
// winding rule, so self-intersecting rings behave the way vector graphics
// fills do.
type Polygon struct {
	Points []geom.Point
}

// Bounds returns the tightest rectangle covering all vertices.
func (pg Polygon) Bounds() geom.Rect {
	return geom.BoundsOf(pg.Points...)
}

// Contains reports whether p lies within the polygon under the non-zero
// winding rule. Rings with fewer than three vertices contain nothing.
func (pg Polygon) Contains(p geom.Point) bool {
	if len(pg.Points) < 3 {
		return false
	}
	winding := 0
	for i, a := range pg.Points {
		b := pg.Points[(i+1)%len(pg.Points)]
		winding += windingSegment(a, b, p)
	}
	return winding != 0
}

// windingSegment counts the crossing of the segment a->b over the
// horizontal ray from p toward +x: +1 for an upward crossing with p left
// of the segment, -1 for a downward crossing with p right of it.
func windingSegment(a, b, p geom.Point) int {
	if a.Y <= p.Y && b.Y > p.Y && isLeft(a, b, p) > 0 {
		return 1
	}
	if a.Y > p.Y && b.Y <= p.Y && isLeft(a, b, p) < 0 {
		return -1
	}
	return 0
}

// isLeft is positive if p is left of the directed line a->b, negative if
// right, zero if on it.
func isLeft(a, b, p geom.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle described by its top-left corner and
// size. It doubles as the universal bounding-box type: every drawable
// reports its extent as a Rect.
//
// Two containment flavors exist on purpose. Contains is the shape
// semantic: half-open, so adjacent rectangles tile without sharing cells.
// Covers is the bounding-box semantic: closed on all edges, so a box never
// rejects a boundary point of the shape it encloses.
type Rect struct {
	Pos  Point
	W, H float64
}

// NewRect returns the rectangle with the given top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Pt(x, y), W: w, H: h}
}

// BoundsOf returns the tightest rectangle covering all given points.
// With no points it returns the zero Rect.
func BoundsOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return Rect{Pos: min, W: max.X - min.X, H: max.Y - min.Y}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Pos.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Pt(r.Pos.X+r.W/2, r.Pos.Y+r.H/2)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the rectangle. The test is
// half-open: the left and top edges are inside, the right and bottom
// edges are not. Rectangles with non-positive size contain nothing.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.W &&
		p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.H
}

// Covers reports whether p lies inside the rectangle or on any of its
// edges. This is the closed-interval test bounding boxes are checked
// with: a shape whose boundary is inclusive (a circle, say) has boundary
// points exactly on its box edge, and Covers must not reject them.
func (r Rect) Covers(p Point) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.W &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.H
}

// Bounds returns the rectangle itself, making Rect its own bounding box.
func (r Rect) Bounds() Rect {
	return r
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Pos: r.Pos.Add(d), W: r.W, H: r.H}
}

// Expand returns the rectangle grown by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Pos: Pt(r.Pos.X-margin, r.Pos.Y-margin),
		W:   r.W + 2*margin,
		H:   r.H + 2*margin,
	}
}

// Union returns the smallest rectangle containing both r and s. Empty
// rectangles act as the identity.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	minX := math.Min(r.Pos.X, s.Pos.X)
	minY := math.Min(r.Pos.Y, s.Pos.Y)
	maxX := math.Max(r.Right(), s.Right())
	maxY := math.Max(r.Bottom(), s.Bottom())
	return Rect{Pos: Pt(minX, minY), W: maxX - minX, H: maxY - minY}
}

// Intersects reports whether the two rectangles overlap or touch. Edges
// count as overlap, consistent with Covers.
func (r Rect) Intersects(s Rect) bool {
	return r.Pos.X <= s.Pos.X+s.W && s.Pos.X <= r.Pos.X+r.W &&
		r.Pos.Y <= s.Pos.Y+s.H && s.Pos.Y <= r.Pos.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("%v %gx%g", r.Pos, r.W, r.H)
}

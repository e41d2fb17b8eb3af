package shapes

import (
	"math"

	"github.com/lunehart/vista/geom"
)

// Segment is a line segment from From to To drawn with the given stroke
// thickness: it contains every point within Thickness/2 of the segment.
type Segment struct {
	From, To  geom.Point
	Thickness float64
}

// Bounds returns the segment's extent grown by half the thickness.
func (s Segment) Bounds() geom.Rect {
	return geom.BoundsOf(s.From, s.To).Expand(s.Thickness / 2)
}

// Contains reports whether p lies within Thickness/2 of the segment,
// endpoints included. A negative thickness contains nothing.
func (s Segment) Contains(p geom.Point) bool {
	return distanceToSegment(p, s.From, s.To) <= s.Thickness/2
}

// distanceToSegment returns the distance from p to the closed segment ab.
func distanceToSegment(p, a, b geom.Point) float64 {
	ab := b.Sub(a)
	den := ab.LengthSquared()
	if den == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / den
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Lerp(b, t))
}

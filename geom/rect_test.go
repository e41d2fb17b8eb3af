package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(1, 2, 4, 3)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Pt(3, 3), true},
		{"top-left corner", Pt(1, 2), true},
		{"left edge", Pt(1, 3.5), true},
		{"top edge", Pt(2, 2), true},
		{"right edge excluded", Pt(5, 3), false},
		{"bottom edge excluded", Pt(3, 5), false},
		{"bottom-right corner excluded", Pt(5, 5), false},
		{"left of rect", Pt(0.999, 3), false},
		{"above rect", Pt(3, 1.999), false},
		{"right of rect", Pt(5.001, 3), false},
		{"below rect", Pt(3, 5.001), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectCoversClosed(t *testing.T) {
	r := NewRect(1, 2, 4, 3)

	assert.True(t, r.Covers(Pt(5, 5)), "max corner is covered")
	assert.True(t, r.Covers(Pt(1, 2)))
	assert.True(t, r.Covers(Pt(5, 3)))
	assert.True(t, r.Covers(Pt(3, 5)))
	assert.False(t, r.Covers(Pt(5.001, 3)))
	assert.False(t, r.Covers(Pt(0.999, 3)))
}

func TestRectDegenerate(t *testing.T) {
	zero := Rect{}
	assert.True(t, zero.Empty())
	assert.False(t, zero.Contains(Pt(0, 0)))
	assert.True(t, zero.Covers(Pt(0, 0)), "zero-size box still covers its corner")

	neg := NewRect(5, 5, -2, 3)
	assert.True(t, neg.Empty())
	assert.False(t, neg.Contains(Pt(5, 6)))
	assert.False(t, neg.Covers(Pt(5, 6)))
	assert.False(t, neg.Covers(Pt(4, 6)))

	// A height-zero box is a horizontal segment's bounds; it must still
	// cover points on the line.
	flat := NewRect(0, 3, 10, 0)
	assert.True(t, flat.Covers(Pt(4, 3)))
	assert.False(t, flat.Covers(Pt(4, 3.001)))
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(1, 2, 4, 3)

	assert.Equal(t, 5.0, r.Right())
	assert.Equal(t, 5.0, r.Bottom())
	assert.Equal(t, Pt(3, 3.5), r.Center())
	assert.Equal(t, r, r.Bounds())
	assert.Equal(t, "(1, 2) 4x3", r.String())
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 4, 3)
	moved := r.Translate(Pt(-1, 2))
	assert.Equal(t, NewRect(0, 4, 4, 3), moved)
	assert.Equal(t, r.W, moved.W)
	assert.Equal(t, r.H, moved.H)
}

func TestRectExpand(t *testing.T) {
	r := NewRect(2, 2, 2, 2).Expand(1)
	assert.Equal(t, NewRect(1, 1, 4, 4), r)
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(3, 1, 2, 2)

	assert.Equal(t, NewRect(0, 0, 5, 3), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))

	assert.Equal(t, a, a.Union(Rect{}), "empty is identity")
	assert.Equal(t, a, Rect{}.Union(a))
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 4, 4)

	assert.True(t, a.Intersects(NewRect(2, 2, 4, 4)))
	assert.True(t, a.Intersects(NewRect(4, 0, 2, 2)), "touching edges count")
	assert.True(t, a.Intersects(NewRect(-1, -1, 10, 10)), "containment counts")
	assert.False(t, a.Intersects(NewRect(4.001, 0, 2, 2)))
	assert.False(t, a.Intersects(NewRect(0, -3, 4, 2.999)))
}

func TestBoundsOf(t *testing.T) {
	assert.Equal(t, Rect{}, BoundsOf())
	assert.Equal(t, Rect{Pos: Pt(2, 3)}, BoundsOf(Pt(2, 3)))
	assert.Equal(t, NewRect(-1, 0, 4, 5), BoundsOf(Pt(3, 0), Pt(-1, 5), Pt(0, 2)))
}

package intents

import "github.com/lunehart/vista/geom"

// Pan moves the viewport one step along a cardinal direction. Fast pans
// use the configured fast step.
type Pan struct {
	Dir  geom.Direction
	Fast bool
}

func (Pan) isIntent() {}

// PanBy moves the viewport by an exact cell delta. Wheel scrolling and
// drag motion both reduce to this intent.
type PanBy struct {
	DX, DY int
}

func (PanBy) isIntent() {}

// Zoom doubles (In) or halves the cell-to-world scale, anchored at the
// viewport center.
type Zoom struct {
	In bool
}

func (Zoom) isIntent() {}

// Origin returns the viewport to the world origin.
type Origin struct{}

func (Origin) isIntent() {}

// GotoPoint moves the viewport so the given world point is centered.
type GotoPoint struct {
	Target geom.Point
}

func (GotoPoint) isIntent() {}

// CycleShape moves the shape selection forward or backward.
type CycleShape struct {
	Delta int
}

func (CycleShape) isIntent() {}

// SelectShape selects a shape by registry index, or clears the
// selection with a negative index.
type SelectShape struct {
	Index int
}

func (SelectShape) isIntent() {}

// CenterShape centers the viewport on the selected shape's bounds.
type CenterShape struct{}

func (CenterShape) isIntent() {}

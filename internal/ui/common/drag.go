package common

import (
	"github.com/charmbracelet/x/cellbuf"
)

// DragAware tracks an in-progress mouse drag for models that pan or
// resize by dragging.
type DragAware struct {
	dragging bool
	last     cellbuf.Position
}

func (d *DragAware) IsDragging() bool {
	return d.dragging
}

func (d *DragAware) BeginDrag(x, y int) {
	d.dragging = true
	d.last = cellbuf.Pos(x, y)
}

// DragTo records a new drag position and returns the delta from the
// previous one. Calling it without an active drag is a no-op.
func (d *DragAware) DragTo(x, y int) (dx, dy int) {
	if !d.dragging {
		return 0, 0
	}
	dx = x - d.last.X
	dy = y - d.last.Y
	d.last = cellbuf.Pos(x, y)
	return dx, dy
}

func (d *DragAware) EndDrag() {
	d.dragging = false
}

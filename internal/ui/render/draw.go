package render

import (
	"github.com/charmbracelet/x/cellbuf"
)

// Draw is a single content write. Draws render lowest Z first; equal Z
// renders in submission order.
type Draw struct {
	Rect    cellbuf.Rectangle // target area
	Content string            // rendered ANSI string (from lipgloss, etc.)
	Z       int               // layering (lower = back, higher = front)
}

package test

import (
	"github.com/charmbracelet/x/cellbuf"

	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
)

// RenderImmediate runs one view pass of an immediate model over a box
// covering the whole buffer and returns the painted screen as a
// string. Interactions registered during the pass are discarded; tests
// that need them drive a DisplayContext directly.
func RenderImmediate(model interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}, width, height int) string {
	dl := render.NewDisplayContext()
	model.ViewRect(dl, layout.NewBox(cellbuf.Rect(0, 0, width, height)))
	return dl.RenderToString(width, height)
}

package statusbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/test"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func newTestCanvas() *canvas.Canvas {
	c := canvas.New(canvas.Options{Cols: 20, Rows: 10})
	c.Add(geom.NewRect(0, 0, 3, 2), canvas.WithName("floor"))
	c.Add(geom.NewRect(5, 5, 2, 2))
	return c
}

func TestViewWithoutCanvas(t *testing.T) {
	m := New(config.Default())

	out := test.Stripped(test.RenderImmediate(m, 60, 1))
	assert.Contains(t, out, "vista")
	assert.Contains(t, out, "? help")
	assert.Contains(t, out, "q/ctrl+c quit")
}

func TestViewShowsViewportState(t *testing.T) {
	m := New(config.Default())
	c := newTestCanvas()
	c.SetOffset(geom.Pt(-3, 1.5))
	c.SetScale(0.5)
	m.SetInfo(CanvasInfo{Canvas: c, Selected: -1})

	out := test.Stripped(test.RenderImmediate(m, 80, 1))
	assert.Contains(t, out, "pos -3.0,1.5")
	assert.Contains(t, out, "scale 0.5")
	assert.Contains(t, out, "2 shapes")
}

func TestViewShowsSelection(t *testing.T) {
	m := New(config.Default())
	m.SetInfo(CanvasInfo{Canvas: newTestCanvas(), Selected: 0})

	out := test.Stripped(test.RenderImmediate(m, 80, 1))
	assert.Contains(t, out, "floor (1/2)")
}

func TestViewFallsBackToShapeIndex(t *testing.T) {
	m := New(config.Default())
	m.SetInfo(CanvasInfo{Canvas: newTestCanvas(), Selected: 1})

	out := test.Stripped(test.RenderImmediate(m, 80, 1))
	assert.Contains(t, out, "shape 1 (2/2)")
}

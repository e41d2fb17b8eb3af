package canvasview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/internal/ui/intents"
	"github.com/lunehart/vista/test"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func plainConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.SquareCells = false
	cfg.UI.Monochrome = true
	return cfg
}

func newTestModel(items ...canvas.Drawable) *Model {
	c := canvas.New(canvas.Options{Cols: 20, Rows: 10})
	for _, d := range items {
		c.Add(d)
	}
	return New(plainConfig(), c)
}

func TestPanIntentMovesOffset(t *testing.T) {
	m := newTestModel()

	m.Update(intents.Pan{Dir: geom.Right})
	assert.Equal(t, geom.Pt(1, 0), m.Canvas().Offset())

	m.Update(intents.Pan{Dir: geom.Down, Fast: true})
	assert.Equal(t, geom.Pt(1, 5), m.Canvas().Offset())

	m.Update(intents.Pan{Dir: geom.Up})
	m.Update(intents.Pan{Dir: geom.Left})
	assert.Equal(t, geom.Pt(0, 4), m.Canvas().Offset())
}

func TestPanByCellDelta(t *testing.T) {
	m := newTestModel()

	m.Update(intents.PanBy{DX: 4, DY: -2})
	assert.Equal(t, geom.Pt(4, -2), m.Canvas().Offset())

	m.Canvas().SetScale(2)
	m.Update(intents.PanBy{DX: 1, DY: 1})
	assert.Equal(t, geom.Pt(6, 0), m.Canvas().Offset())
}

func TestPanStepScalesWithZoom(t *testing.T) {
	m := newTestModel()
	m.Canvas().SetScale(2)

	m.Update(intents.Pan{Dir: geom.Right})
	assert.Equal(t, geom.Pt(2, 0), m.Canvas().Offset(), "one step is one cell in world units")
}

func TestZoomClampsAndKeepsCenter(t *testing.T) {
	m := newTestModel()

	before := m.Canvas().ViewExtent().Center()
	m.Update(intents.Zoom{In: true})
	assert.Equal(t, 0.5, m.Canvas().Scale())
	after := m.Canvas().ViewExtent().Center()
	assert.InDelta(t, before.X, after.X, 1)
	assert.InDelta(t, before.Y, after.Y, 1)

	for i := 0; i < 10; i++ {
		m.Update(intents.Zoom{In: true})
	}
	assert.Equal(t, 0.125, m.Canvas().Scale(), "zoom in clamps")

	for i := 0; i < 20; i++ {
		m.Update(intents.Zoom{})
	}
	assert.Equal(t, float64(8), m.Canvas().Scale(), "zoom out clamps")
}

func TestOriginAndGoto(t *testing.T) {
	m := newTestModel()

	m.Update(intents.Pan{Dir: geom.Right, Fast: true})
	m.Update(intents.Origin{})
	assert.Equal(t, geom.Point{}, m.Canvas().Offset())

	m.Update(intents.GotoPoint{Target: geom.Pt(100, 50)})
	assert.Equal(t, geom.Pt(100, 50), m.Canvas().ViewExtent().Center().Add(geom.Pt(0.5, 0.5)))
}

func TestCycleSelectionWraps(t *testing.T) {
	m := newTestModel(geom.NewRect(0, 0, 2, 2), geom.NewRect(5, 5, 2, 2))

	assert.Equal(t, -1, m.Selected())
	m.Update(intents.CycleShape{Delta: 1})
	assert.Equal(t, 0, m.Selected())
	m.Update(intents.CycleShape{Delta: 1})
	assert.Equal(t, 1, m.Selected())
	m.Update(intents.CycleShape{Delta: 1})
	assert.Equal(t, 0, m.Selected(), "cycling wraps around")
	m.Update(intents.CycleShape{Delta: -1})
	assert.Equal(t, 1, m.Selected())
}

func TestSelectShapeBounds(t *testing.T) {
	m := newTestModel(geom.NewRect(0, 0, 2, 2))

	m.Update(intents.SelectShape{Index: 0})
	assert.Equal(t, 0, m.Selected())
	it, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, geom.NewRect(0, 0, 2, 2), it.Drawable)

	m.Update(intents.SelectShape{Index: 5})
	assert.Equal(t, -1, m.Selected(), "out-of-range clears the selection")
}

func TestCenterShape(t *testing.T) {
	m := newTestModel(geom.NewRect(10, 10, 4, 4))

	m.Update(intents.SelectShape{Index: 0})
	m.Update(intents.CenterShape{})

	center := m.Canvas().ViewExtent().Center().Add(geom.Pt(0.5, 0.5))
	assert.Equal(t, geom.Pt(12, 12), center)
}

func TestScrollMsgPansThroughPanBy(t *testing.T) {
	m := newTestModel()

	var seen []tea.Msg
	test.SimulateModel(m,
		func() tea.Msg { return common.CanvasScrollMsg{Delta: 3} },
		func(msg tea.Msg) { seen = append(seen, msg) })
	assert.Contains(t, seen, tea.Msg(intents.PanBy{DY: 3}),
		"wheel input reduces to a pan intent")
	assert.Equal(t, geom.Pt(0, 3), m.Canvas().Offset())

	test.SimulateModel(m,
		func() tea.Msg { return common.CanvasScrollMsg{Delta: -2, Horizontal: true} })
	assert.Equal(t, geom.Pt(-2, 3), m.Canvas().Offset())
}

func TestDragPansOpposite(t *testing.T) {
	m := newTestModel()

	test.SimulateModel(m,
		func() tea.Msg { return common.CanvasDragMsg{X: 10, Y: 5} })
	require.True(t, m.IsDragging())

	var seen []tea.Msg
	test.SimulateModel(m,
		func() tea.Msg { return tea.MouseMsg{X: 13, Y: 7, Action: tea.MouseActionMotion} },
		func(msg tea.Msg) { seen = append(seen, msg) })
	assert.Contains(t, seen, tea.Msg(intents.PanBy{DX: -3, DY: -2}))
	assert.Equal(t, geom.Pt(-3, -2), m.Canvas().Offset(), "scene follows the pointer")

	test.SimulateModel(m,
		func() tea.Msg { return tea.MouseMsg{X: 13, Y: 7, Action: tea.MouseActionRelease} })
	assert.False(t, m.IsDragging())
}

func TestViewRendersFrame(t *testing.T) {
	m := newTestModel(geom.NewRect(0, 0, 3, 2))

	out := test.Stripped(test.RenderImmediate(m, 10, 4))
	assert.Equal(t, ""+
		"###-------\n"+
		"###-------\n"+
		"----------\n"+
		"----------", out)
}

func TestViewSquareCellsDoublesWidth(t *testing.T) {
	cfg := plainConfig()
	cfg.UI.SquareCells = true
	c := canvas.New(canvas.Options{})
	c.Add(geom.NewRect(0, 0, 2, 1))
	m := New(cfg, c)

	out := test.Stripped(test.RenderImmediate(m, 8, 2))
	assert.Equal(t, "# # - -\n- - - -", out)
}

package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/test"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.SquareCells = false
	cfg.UI.Monochrome = true
	return cfg
}

func newTestUI(items ...canvas.Drawable) *Model {
	c := canvas.New(canvas.Options{})
	for _, d := range items {
		c.Add(d)
	}
	m := NewUI(testConfig(), c)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m.View() // size the canvas to the window
	return m
}

func press(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPanKeysMoveViewport(t *testing.T) {
	m := newTestUI()

	test.SimulateModel(m, func() tea.Msg { return press('l') })
	assert.Equal(t, geom.Pt(1, 0), m.canvasView.Canvas().Offset())

	test.SimulateModel(m, func() tea.Msg { return press('J') })
	assert.Equal(t, geom.Pt(1, 5), m.canvasView.Canvas().Offset())
}

func TestQuitKeyQuits(t *testing.T) {
	m := newTestUI()

	var quits int
	test.SimulateModel(m, func() tea.Msg { return press('q') }, func(msg tea.Msg) {
		if _, ok := msg.(tea.QuitMsg); ok {
			quits++
		}
	})
	assert.Equal(t, 1, quits)
}

func TestHelpToggles(t *testing.T) {
	m := newTestUI()

	test.SimulateModel(m, func() tea.Msg { return press('?') })
	require.NotNil(t, m.stacked)
	assert.Contains(t, m.View(), "Viewport")

	test.SimulateModel(m, func() tea.Msg { return press('?') })
	assert.Nil(t, m.stacked, "help key closes the open help page")
}

func TestGotoFlow(t *testing.T) {
	m := newTestUI()

	test.SimulateModel(m, func() tea.Msg { return press('g') })
	require.NotNil(t, m.stacked)

	test.SimulateModel(m, test.Type("30 -4"))
	test.SimulateModel(m, test.Press(tea.KeyEnter))

	assert.Nil(t, m.stacked, "prompt closes on apply")
	center := m.canvasView.Canvas().ViewExtent().Center()
	assert.InDelta(t, 30, center.X, 1)
	assert.InDelta(t, -4, center.Y, 1)
}

func TestSidebarToggleAndSelection(t *testing.T) {
	m := newTestUI(geom.NewRect(0, 0, 5, 5), geom.NewRect(8, 0, 5, 5))

	assert.False(t, m.sidebarVisible)
	test.SimulateModel(m, func() tea.Msg { return press('s') })
	assert.True(t, m.sidebarVisible)
	assert.Contains(t, m.View(), "shapes (2)")

	test.SimulateModel(m, func() tea.Msg { return press('n') })
	assert.Equal(t, 0, m.canvasView.Selected())
	test.SimulateModel(m, func() tea.Msg { return press('n') })
	assert.Equal(t, 1, m.canvasView.Selected())

	test.SimulateModel(m, test.Press(tea.KeyEsc))
	assert.Equal(t, -1, m.canvasView.Selected(), "cancel clears the selection")
}

func TestViewShowsSceneAndStatus(t *testing.T) {
	m := newTestUI(geom.NewRect(0, 0, 4, 3))

	view := m.View()
	assert.Contains(t, view, "####")
	assert.Contains(t, view, "vista")
	assert.Contains(t, view, "pos 0.0,0.0")
	assert.Contains(t, view, "scale 1")
}

func TestRenderIsStableAcrossViews(t *testing.T) {
	m := newTestUI(geom.NewRect(2, 2, 3, 3))

	first := m.View()
	second := m.View()
	assert.Equal(t, first, second)
}

func TestProgramQuitsCleanly(t *testing.T) {
	c := canvas.New(canvas.Options{})
	c.Add(geom.NewRect(0, 0, 10, 10))

	tm := teatest.NewTestModel(t, New(testConfig(), c),
		teatest.WithInitialTermSize(80, 24))
	tm.Send(press('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestEmptySizeRendersNothing(t *testing.T) {
	c := canvas.New(canvas.Options{})
	m := NewUI(testConfig(), c)
	assert.Equal(t, "", m.View())
}

func TestStrippedViewTopLeftBlock(t *testing.T) {
	m := newTestUI(geom.NewRect(0, 0, 10, 10))

	lines := strings.Split(test.Stripped(m.View()), "\n")
	require.GreaterOrEqual(t, len(lines), 9)
	assert.True(t, strings.HasPrefix(lines[0], "##########"), "top-left block is filled: %q", lines[0])
}

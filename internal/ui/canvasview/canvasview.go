// Package canvasview is the sub-model that owns the canvas: it maps
// pan/zoom intents and mouse input onto viewport moves and draws the
// rasterized frame into the display context.
package canvasview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/internal/ui/intents"
	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
)

const (
	minScale = 0.125
	maxScale = 8
)

var _ common.ImmediateModel = (*Model)(nil)

type Model struct {
	*common.ViewNode
	common.DragAware
	canvas     *canvas.Canvas
	ui         config.UIConfig
	selected   int
	itemStyles []lipgloss.Style
	background lipgloss.Style
}

func New(cfg *config.Config, c *canvas.Canvas) *Model {
	m := &Model{
		ViewNode:   common.NewViewNode(0, 0),
		canvas:     c,
		ui:         cfg.UI,
		selected:   -1,
		background: lipgloss.NewStyle().Faint(true),
	}
	m.refreshStyles()
	return m
}

// refreshStyles assigns one color per registered item. Hues advance by
// the golden angle so neighboring registrations stay distinguishable.
func (m *Model) refreshStyles() {
	items := m.canvas.Items()
	if len(m.itemStyles) >= len(items) {
		return
	}
	for i := len(m.itemStyles); i < len(items); i++ {
		style := lipgloss.NewStyle()
		if !m.ui.Monochrome {
			hue := float64((i * 137) % 360)
			style = style.Foreground(lipgloss.Color(colorful.Hsv(hue, 0.55, 0.92).Hex()))
		}
		m.itemStyles = append(m.itemStyles, style)
	}
}

// Canvas exposes the underlying canvas for the status bar and for the
// copy-frame action.
func (m *Model) Canvas() *canvas.Canvas {
	return m.canvas
}

// Selected returns the selected registry index, or -1.
func (m *Model) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, if any.
func (m *Model) SelectedItem() (canvas.Item, bool) {
	items := m.canvas.Items()
	if m.selected < 0 || m.selected >= len(items) {
		return canvas.Item{}, false
	}
	return items[m.selected], true
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case intents.Pan:
		step := float64(m.ui.PanStep)
		if msg.Fast {
			step = float64(m.ui.PanStepFast)
		}
		m.canvas.Walk(msg.Dir, step*m.canvas.Scale())
	case intents.PanBy:
		m.panByCells(msg.DX, msg.DY)
	case intents.Zoom:
		m.zoom(msg.In)
	case intents.Origin:
		m.canvas.SetOffset(geom.Point{})
	case intents.GotoPoint:
		m.canvas.CenterOn(msg.Target)
	case intents.CycleShape:
		m.cycleSelection(msg.Delta)
	case intents.SelectShape:
		if msg.Index < 0 || msg.Index >= len(m.canvas.Items()) {
			m.selected = -1
		} else {
			m.selected = msg.Index
		}
	case intents.CenterShape:
		if it, ok := m.SelectedItem(); ok {
			m.canvas.CenterOn(it.Drawable.Bounds().Center())
		}
	case common.CanvasScrollMsg:
		if msg.Horizontal {
			return intents.Invoke(intents.PanBy{DX: msg.Delta})
		}
		return intents.Invoke(intents.PanBy{DY: msg.Delta})
	case common.CanvasDragMsg:
		m.BeginDrag(msg.X, msg.Y)
	case tea.MouseMsg:
		if !m.IsDragging() {
			return nil
		}
		switch msg.Action {
		case tea.MouseActionRelease:
			m.EndDrag()
		case tea.MouseActionMotion:
			dx, dy := m.DragTo(msg.X, msg.Y)
			// Dragging the scene moves the viewport the opposite way.
			if m.ui.SquareCells {
				dx = dx / 2
			}
			return intents.Invoke(intents.PanBy{DX: -dx, DY: -dy})
		}
	}
	return nil
}

func (m *Model) panByCells(dx, dy int) {
	scale := m.canvas.Scale()
	m.canvas.Pan(geom.Pt(float64(dx)*scale, float64(dy)*scale))
}

// zoom doubles or halves the scale while keeping the world point under
// the viewport center fixed.
func (m *Model) zoom(in bool) {
	scale := m.canvas.Scale()
	if in {
		scale /= 2
	} else {
		scale *= 2
	}
	if scale < minScale || scale > maxScale {
		return
	}
	center := m.canvas.ViewExtent().Center()
	m.canvas.SetScale(scale)
	m.canvas.CenterOn(center)
}

func (m *Model) cycleSelection(delta int) {
	count := len(m.canvas.Items())
	if count == 0 {
		return
	}
	if m.selected < 0 {
		if delta >= 0 {
			m.selected = 0
		} else {
			m.selected = count - 1
		}
		return
	}
	m.selected = ((m.selected+delta)%count + count) % count
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.SetFrame(box.R)
	cols := box.R.Dx()
	if m.ui.SquareCells {
		// A terminal cell is about twice as tall as wide; a trailing
		// space per cell restores the aspect ratio.
		cols = (cols + 1) / 2
	}
	m.canvas.Resize(cols, box.R.Dy())
	m.refreshStyles()

	frame := m.canvas.Render()
	dl.AddDraw(box.R, m.renderFrame(frame), render.ZCanvas)
	dl.AddInteraction(box.R, common.CanvasDragMsg{}, render.InteractionDrag, render.ZCanvas)
	dl.AddInteraction(box.R, common.CanvasScrollMsg{}, render.InteractionScroll, render.ZCanvas)
}

// renderFrame turns a frame into styled terminal lines. Consecutive cells
// owned by the same item render as one styled run.
func (m *Model) renderFrame(frame *canvas.Frame) string {
	cols, rows := frame.Size()
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		runStart := 0
		runItem := frame.At(0, row).Item
		for col := 1; col <= cols; col++ {
			item := -2
			if col < cols {
				item = frame.At(col, row).Item
			}
			if item == runItem {
				continue
			}
			sb.WriteString(m.renderRun(frame, row, runStart, col, runItem))
			runStart = col
			runItem = item
		}
	}
	return sb.String()
}

func (m *Model) renderRun(frame *canvas.Frame, row, from, to, item int) string {
	var run strings.Builder
	for col := from; col < to; col++ {
		run.WriteRune(frame.At(col, row).Glyph)
		if m.ui.SquareCells {
			run.WriteByte(' ')
		}
	}
	return m.styleFor(item).Render(run.String())
}

func (m *Model) styleFor(item int) lipgloss.Style {
	if item < 0 {
		return m.background
	}
	style := lipgloss.NewStyle()
	if item < len(m.itemStyles) {
		style = m.itemStyles[item]
	}
	if item == m.selected {
		style = style.Reverse(true)
	}
	return style
}

// Package sidebar lists the registered shapes. The cursor follows the
// canvas selection; clicking a row selects its shape.
package sidebar

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/internal/ui/intents"
	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
)

// Width is the fixed sidebar width in cells.
const Width = 28

var _ common.ImmediateModel = (*Model)(nil)

type scrollMsg struct {
	delta int
}

// SetDelta implements render.ScrollDeltaCarrier.
func (m scrollMsg) SetDelta(delta int, _ bool) tea.Msg {
	m.delta = delta
	return m
}

type Model struct {
	canvas   *canvas.Canvas
	selected int
	list     *render.ListRenderer
	styles   styles
}

type styles struct {
	title  lipgloss.Style
	text   lipgloss.Style
	dimmed lipgloss.Style
}

func New(c *canvas.Canvas) *Model {
	return &Model{
		canvas:   c,
		selected: -1,
		list:     render.NewListRenderer(scrollMsg{}),
		styles: styles{
			title:  lipgloss.NewStyle().Bold(true),
			text:   lipgloss.NewStyle(),
			dimmed: lipgloss.NewStyle().Faint(true),
		},
	}
}

// SetSelected syncs the cursor with the canvas selection.
func (m *Model) SetSelected(index int) {
	m.selected = index
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(scrollMsg); ok {
		m.list.SetScrollOffset(m.list.GetScrollOffset() + msg.delta)
	}
	return nil
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	items := m.canvas.Items()
	dl.AddFill(box.R, ' ', lipgloss.NewStyle(), render.ZSidebar)
	dl.Text(box.R.Min.X+1, box.R.Min.Y, render.ZSidebar).
		Styled(fmt.Sprintf("shapes (%d)", len(items)), m.styles.title).
		Done()

	listBox := layout.NewBox(cellbuf.Rect(
		box.R.Min.X, box.R.Min.Y+1, box.R.Dx(), box.R.Dy()-1))
	if listBox.R.Dy() <= 0 {
		return
	}

	m.list.Render(dl, listBox, len(items), m.selected, true,
		func(int) int { return 1 },
		func(dl *render.DisplayContext, index int, rect cellbuf.Rectangle) {
			m.renderRow(dl, items[index], index, rect)
		},
		func(index int) render.ClickMessage {
			return intents.SelectShape{Index: index}
		},
	)
	m.list.RegisterScroll(dl, listBox)
}

func (m *Model) renderRow(dl *render.DisplayContext, it canvas.Item, index int, rect cellbuf.Rectangle) {
	name := it.Name
	if name == "" {
		name = fmt.Sprintf("shape %d", index)
	}
	dl.Text(rect.Min.X+1, rect.Min.Y, render.ZSidebar).
		Styled(fmt.Sprintf("%c ", it.Glyph), m.styles.text).
		Styled(fmt.Sprintf("%-12.12s", name), m.styles.text).
		Space(1).
		Styled(boundsLabel(it.Drawable.Bounds()), m.styles.dimmed).
		Done()
	if index == m.selected {
		dl.AddReverse(rect, render.ZSidebar)
	}
}

func boundsLabel(b geom.Rect) string {
	return fmt.Sprintf("%.0f,%.0f %gx%g", b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Package statusbar renders the single-line footer: viewport position,
// scale, shape count and the most useful key hints.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
)

var _ common.ImmediateModel = (*Model)(nil)

// CanvasInfo is what the root model feeds the status bar before each
// view pass.
type CanvasInfo struct {
	Canvas   *canvas.Canvas
	Selected int
}

type Model struct {
	keyMap config.KeyMappings[key.Binding]
	info   CanvasInfo
	styles styles
}

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	shortcut lipgloss.Style
	dimmed   lipgloss.Style
}

func New(cfg *config.Config) *Model {
	return &Model{
		keyMap: cfg.GetKeyMap(),
		styles: styles{
			title:    lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
			text:     lipgloss.NewStyle(),
			shortcut: lipgloss.NewStyle().Bold(true),
			dimmed:   lipgloss.NewStyle().Faint(true),
		},
	}
}

// SetInfo updates the values shown on the next view pass.
func (m *Model) SetInfo(info CanvasInfo) {
	m.info = info
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(tea.Msg) tea.Cmd {
	return nil
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	tb := dl.Text(box.R.Min.X, box.R.Min.Y, render.ZStatusBar)
	tb.Styled("vista", m.styles.title)

	if c := m.info.Canvas; c != nil {
		offset := c.Offset()
		tb.Space(1).
			Styled(fmt.Sprintf("pos %.1f,%.1f", offset.X, offset.Y), m.styles.text).
			Space(2).
			Styled(fmt.Sprintf("scale %g", c.Scale()), m.styles.text).
			Space(2).
			Styled(m.selectionLabel(c), m.styles.text)
	}

	tb.Space(2).
		Styled(m.hint(m.keyMap.Help), m.styles.shortcut).
		Styled(" help", m.styles.dimmed).
		Space(2).
		Styled(m.hint(m.keyMap.Quit), m.styles.shortcut).
		Styled(" quit", m.styles.dimmed)
	tb.Done()
}

func (m *Model) selectionLabel(c *canvas.Canvas) string {
	items := c.Items()
	if m.info.Selected < 0 || m.info.Selected >= len(items) {
		return fmt.Sprintf("%d shapes", len(items))
	}
	it := items[m.info.Selected]
	name := it.Name
	if name == "" {
		name = fmt.Sprintf("shape %d", m.info.Selected)
	}
	return fmt.Sprintf("%s (%d/%d)", name, m.info.Selected+1, len(items))
}

func (m *Model) hint(b key.Binding) string {
	return b.Help().Key
}

// Package helppage provides the key binding overlay.
package helppage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
)

var _ common.ImmediateModel = (*Model)(nil)

type Model struct {
	keyMap config.KeyMappings[key.Binding]
	styles styles
}

type styles struct {
	border   lipgloss.Style
	title    lipgloss.Style
	shortcut lipgloss.Style
	dimmed   lipgloss.Style
}

func New(cfg *config.Config) *Model {
	return &Model{
		keyMap: cfg.GetKeyMap(),
		styles: styles{
			border:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1),
			title:    lipgloss.NewStyle().Bold(true),
			shortcut: lipgloss.NewStyle().Bold(true),
			dimmed:   lipgloss.NewStyle().Faint(true),
		},
	}
}

func (h *Model) Init() tea.Cmd {
	return nil
}

func (h *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, h.keyMap.Help) || key.Matches(msg, h.keyMap.Cancel) {
			return common.Close
		}
	}
	return nil
}

func (h *Model) printKeyBinding(k key.Binding) string {
	return h.printKey(k.Help().Key, k.Help().Desc)
}

func (h *Model) printKey(key string, desc string) string {
	keyAligned := fmt.Sprintf("%16s", key)
	return lipgloss.JoinHorizontal(0,
		h.styles.shortcut.Render(keyAligned), " ", h.styles.dimmed.Render(desc))
}

func (h *Model) printTitle(header string) string {
	return h.printKey("", "") + h.styles.title.Render(header)
}

func (h *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	left := []string{
		h.printTitle("Viewport"),
		h.printKey(fmt.Sprintf("%s/%s/%s/%s",
			h.keyMap.PanUp.Help().Key,
			h.keyMap.PanDown.Help().Key,
			h.keyMap.PanLeft.Help().Key,
			h.keyMap.PanRight.Help().Key,
		), "pan"),
		h.printKey(fmt.Sprintf("%s/%s/%s/%s",
			h.keyMap.FastPanUp.Help().Key,
			h.keyMap.FastPanDown.Help().Key,
			h.keyMap.FastPanLeft.Help().Key,
			h.keyMap.FastPanRight.Help().Key,
		), "pan fast"),
		h.printKeyBinding(h.keyMap.ZoomIn),
		h.printKeyBinding(h.keyMap.ZoomOut),
		h.printKeyBinding(h.keyMap.Origin),
		h.printKeyBinding(h.keyMap.Goto),
	}
	right := []string{
		h.printTitle("Shapes"),
		h.printKeyBinding(h.keyMap.ToggleSidebar),
		h.printKeyBinding(h.keyMap.NextShape),
		h.printKeyBinding(h.keyMap.PrevShape),
		h.printKeyBinding(h.keyMap.CenterShape),
		h.printTitle("UI"),
		h.printKeyBinding(h.keyMap.CopyFrame),
		h.printKeyBinding(h.keyMap.Help),
		h.printKeyBinding(h.keyMap.Cancel),
		h.printKeyBinding(h.keyMap.Quit),
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n"), "   ", strings.Join(right, "\n"))
	content := h.styles.border.Render(columns)
	w, ch := lipgloss.Size(content)

	pw, ph := box.R.Dx(), box.R.Dy()
	sx := box.R.Min.X + max((pw-w)/2, 0)
	sy := box.R.Min.Y + max((ph-ch)/2, 0)

	dl.AddDim(box.R, render.ZHelpPage-1)
	dl.AddDraw(cellbuf.Rect(sx, sy, w, ch), content, render.ZHelpPage)
}

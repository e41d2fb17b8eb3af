// Package gotoview is the modal prompt for jumping the viewport to a
// world coordinate. It accepts "x y" or "x,y".
package gotoview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/internal/ui/intents"
	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
)

var _ common.ImmediateModel = (*Model)(nil)

type Model struct {
	input  textinput.Model
	keyMap config.KeyMappings[key.Binding]
	err    error
	styles styles
}

type styles struct {
	border lipgloss.Style
	title  lipgloss.Style
	error  lipgloss.Style
}

func New(cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "x y"
	ti.CharLimit = 64
	return &Model{
		input:  ti,
		keyMap: cfg.GetKeyMap(),
		styles: styles{
			border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
			title:  lipgloss.NewStyle().Bold(true),
			error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Apply):
			target, err := ParseTarget(m.input.Value())
			if err != nil {
				m.err = err
				return nil
			}
			return tea.Batch(
				intents.Invoke(intents.GotoPoint{Target: target}),
				common.Close,
			)
		case key.Matches(msg, m.keyMap.Cancel):
			return common.Close
		}
		m.err = nil
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// ParseTarget parses "x y" or "x,y" into a world point.
func ParseTarget(s string) (geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) != 2 {
		return geom.Point{}, fmt.Errorf("want two coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad x coordinate %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad y coordinate %q", fields[1])
	}
	return geom.Pt(x, y), nil
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	rows := []string{
		m.styles.title.Render("go to"),
		m.input.View(),
	}
	if m.err != nil {
		rows = append(rows, m.styles.error.Render(m.err.Error()))
	}

	content := m.styles.border.Padding(0, 1).Render(lipgloss.JoinVertical(0, rows...))
	w, h := lipgloss.Size(content)

	pw, ph := box.R.Dx(), box.R.Dy()
	sx := box.R.Min.X + max((pw-w)/2, 0)
	sy := box.R.Min.Y + max((ph-h)/2, 0)
	dl.AddDraw(cellbuf.Rect(sx, sy, w, h), content, render.ZDialogs)
}

// Package flash shows transient notifications in the bottom-right
// corner. Informational messages expire on their own; errors stay until
// dismissed.
package flash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
)

const expiringMessageTimeout = 3 * time.Second

var _ common.ImmediateModel = (*Model)(nil)

type (
	// InfoMsg adds an expiring notification.
	InfoMsg string
	// ErrorMsg adds a sticky error notification.
	ErrorMsg struct {
		Err error
	}
	expireMessageMsg struct {
		id uint64
	}
)

// Info wraps a notification text into a command.
func Info(text string) tea.Cmd {
	return func() tea.Msg {
		return InfoMsg(text)
	}
}

// Error wraps an error into a command.
func Error(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

type message struct {
	text string
	err  error
	id   uint64
}

type Model struct {
	messages   []message
	nextID     uint64
	infoStyle  lipgloss.Style
	errorStyle lipgloss.Style
}

func New() *Model {
	return &Model{
		infoStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10")),
		errorStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("9")),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case InfoMsg:
		id := m.add(string(msg), nil)
		return tea.Tick(expiringMessageTimeout, func(time.Time) tea.Msg {
			return expireMessageMsg{id: id}
		})
	case ErrorMsg:
		m.add("", msg.Err)
	case expireMessageMsg:
		for i, message := range m.messages {
			if message.id == msg.id {
				m.messages = append(m.messages[:i], m.messages[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Any reports whether any message is currently shown.
func (m *Model) Any() bool {
	return len(m.messages) > 0
}

// DeleteOldest dismisses the oldest message, used by the cancel key.
func (m *Model) DeleteOldest() {
	if len(m.messages) > 0 {
		m.messages = m.messages[1:]
	}
}

func (m *Model) add(text string, err error) uint64 {
	text = strings.TrimSpace(text)
	if text == "" && err == nil {
		return 0
	}
	m.nextID++
	m.messages = append(m.messages, message{text: text, err: err, id: m.nextID})
	return m.nextID
}

// ViewRect stacks messages upward from the bottom-right corner of the
// box, newest at the bottom.
func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	if len(m.messages) == 0 {
		return
	}
	y := box.R.Max.Y
	for i := len(m.messages) - 1; i >= 0; i-- {
		msg := m.messages[i]
		var content string
		if msg.err != nil {
			content = m.errorStyle.Render(msg.err.Error())
		} else {
			content = m.infoStyle.Render(msg.text)
		}
		w, h := lipgloss.Size(content)
		y -= h
		if y < box.R.Min.Y {
			break
		}
		dl.AddDraw(cellbuf.Rect(box.R.Max.X-w, y, w, h), content, render.ZOverlay)
	}
}

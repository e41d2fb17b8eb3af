package helppage

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/test"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestHelpKeyCloses(t *testing.T) {
	h := New(config.Default())

	var seen []tea.Msg
	test.SimulateModel(h, func() tea.Msg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	}, func(msg tea.Msg) {
		seen = append(seen, msg)
	})

	assert.Contains(t, seen, tea.Msg(common.CloseOverlayMsg{}))
}

func TestEscCloses(t *testing.T) {
	h := New(config.Default())

	var seen []tea.Msg
	test.SimulateModel(h, test.Press(tea.KeyEsc), func(msg tea.Msg) {
		seen = append(seen, msg)
	})

	assert.Contains(t, seen, tea.Msg(common.CloseOverlayMsg{}))
}

func TestOtherKeysIgnored(t *testing.T) {
	h := New(config.Default())

	var seen []tea.Msg
	test.SimulateModel(h, func() tea.Msg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	}, func(msg tea.Msg) {
		seen = append(seen, msg)
	})

	assert.NotContains(t, seen, tea.Msg(common.CloseOverlayMsg{}))
}

func TestViewListsBindings(t *testing.T) {
	h := New(config.Default())

	out := test.Stripped(test.RenderImmediate(h, 120, 30))
	assert.Contains(t, out, "Viewport")
	assert.Contains(t, out, "Shapes")
	assert.Contains(t, out, "pan fast")
	assert.Contains(t, out, "zoom in")
	assert.Contains(t, out, "toggle sidebar")
	assert.Contains(t, out, "quit")
}

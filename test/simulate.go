package test

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// SimulateModel runs a model the way the bubbletea loop would: the
// first command is executed, its message applied, and any commands the
// update returns are queued until nothing is left. Observers see every
// delivered message, including the one that started the exchange.
func SimulateModel[T interface {
	Update(tea.Msg) tea.Cmd
}](model T, first tea.Cmd, observers ...func(tea.Msg)) {
	pending := []tea.Cmd{first}

	for len(pending) > 0 {
		cmd := pending[0]
		pending = pending[1:]
		if cmd == nil {
			continue
		}

		msg := cmd()
		switch msg := msg.(type) {
		case nil:
			continue
		case cursor.BlinkMsg:
			// textinput blink timers never settle; drop them.
			continue
		case tea.BatchMsg:
			pending = append(pending, msg...)
			continue
		}
		if cmds, ok := unwrapCmds(msg); ok {
			pending = append(pending, cmds...)
			continue
		}

		for _, observe := range observers {
			observe(msg)
		}
		if next := model.Update(msg); next != nil {
			pending = append(pending, next)
		}
	}
}

// Type emits one key message per rune, in order.
func Type(runes string) tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range runes {
		cmds = append(cmds, func() tea.Msg {
			return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		})
	}
	return tea.Sequence(cmds...)
}

// Press emits a single special-key message.
func Press(key tea.KeyType) tea.Cmd {
	return func() tea.Msg {
		return tea.KeyMsg{Type: key}
	}
}

var teaCmdType = reflect.TypeOf((tea.Cmd)(nil))

// unwrapCmds recognizes bubbletea's unexported command-carrier messages
// (tea.Sequence yields one) as any named slice of tea.Cmd.
func unwrapCmds(msg tea.Msg) ([]tea.Cmd, bool) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || !v.Type().Elem().AssignableTo(teaCmdType) {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i] = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

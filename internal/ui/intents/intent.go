// Package intents names the high-level actions the UI can perform. They
// decouple inputs (keyboard, mouse, scripts) from the capability that
// carries them out.
package intents

import tea "github.com/charmbracelet/bubbletea"

// Intent represents a high-level action routed through the root model.
type Intent interface {
	isIntent()
}

func Invoke(intent Intent) tea.Cmd {
	return func() tea.Msg {
		return intent
	}
}

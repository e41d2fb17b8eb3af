// Package common holds the messages and small interfaces shared by the
// UI sub-models.
package common

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
)

// ImmediateModel is a sub-model that renders into a display context
// instead of returning a view string. The root model composes these with
// layout boxes.
type ImmediateModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	ViewRect(dl *render.DisplayContext, box layout.Box)
}

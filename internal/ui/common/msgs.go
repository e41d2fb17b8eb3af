package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

type (
	// CloseOverlayMsg dismisses the topmost stacked overlay.
	CloseOverlayMsg struct{}
	// ToggleHelpMsg opens or closes the help page.
	ToggleHelpMsg struct{}
	// CanvasScrollMsg pans the canvas by a wheel delta, in cells.
	CanvasScrollMsg struct {
		Delta      int
		Horizontal bool
	}
	// CanvasDragMsg starts a drag pan at the given screen position.
	CanvasDragMsg struct {
		X, Y int
	}
)

// SetDelta implements render.ScrollDeltaCarrier.
func (m CanvasScrollMsg) SetDelta(delta int, horizontal bool) tea.Msg {
	m.Delta = delta
	m.Horizontal = horizontal
	return m
}

// SetDragStart implements render.DragStartCarrier.
func (m CanvasDragMsg) SetDragStart(x, y int) tea.Msg {
	m.X = x
	m.Y = y
	return m
}

func Close() tea.Msg {
	return CloseOverlayMsg{}
}

func ToggleHelp() tea.Msg {
	return ToggleHelpMsg{}
}

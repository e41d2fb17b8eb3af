package render

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"
)

// InteractionType defines what kinds of mouse input a region responds to.
// Types combine with bitwise OR.
type InteractionType int

const (
	InteractionClick InteractionType = 1 << iota
	InteractionScroll
	InteractionDrag
)

// InteractionOp is an interactive region registered during the view pass.
type InteractionOp struct {
	Rect cellbuf.Rectangle // the interactive area, absolute coordinates
	Msg  tea.Msg           // message to send when the region is hit
	Type InteractionType
	Z    int // overlapping regions resolve highest Z first
}

// ScrollDeltaCarrier lets a scroll region's message receive the wheel
// delta before delivery.
type ScrollDeltaCarrier interface {
	SetDelta(delta int, horizontal bool) tea.Msg
}

// DragStartCarrier lets a drag region's message receive the press
// position before delivery.
type DragStartCarrier interface {
	SetDragStart(x, y int) tea.Msg
}

func hit(op interactionOp, x, y int) bool {
	return x >= op.Rect.Min.X && x < op.Rect.Max.X &&
		y >= op.Rect.Min.Y && y < op.Rect.Max.Y
}

// processMouseEvent matches a press event against interactions already
// sorted by priority. Drag regions win over click regions on left press.
func processMouseEvent(interactions []interactionOp, msg tea.MouseMsg) (tea.Msg, bool) {
	if msg.Action != tea.MouseActionPress {
		return nil, false
	}

	if msg.Button == tea.MouseButtonLeft {
		for _, op := range interactions {
			if op.Type&InteractionDrag == 0 || !hit(op, msg.X, msg.Y) {
				continue
			}
			if carrier, ok := op.Msg.(DragStartCarrier); ok {
				return carrier.SetDragStart(msg.X, msg.Y), true
			}
			return op.Msg, true
		}
		for _, op := range interactions {
			if op.Type&InteractionClick == 0 || !hit(op, msg.X, msg.Y) {
				continue
			}
			return op.Msg, true
		}
		return nil, false
	}

	var delta int
	var horizontal bool
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		delta = -3
	case tea.MouseButtonWheelDown:
		delta = 3
	case tea.MouseButtonWheelLeft:
		delta, horizontal = -3, true
	case tea.MouseButtonWheelRight:
		delta, horizontal = 3, true
	default:
		return nil, false
	}

	for _, op := range interactions {
		if op.Type&InteractionScroll == 0 || !hit(op, msg.X, msg.Y) {
			continue
		}
		if carrier, ok := op.Msg.(ScrollDeltaCarrier); ok {
			return carrier.SetDelta(delta, horizontal), true
		}
		return op.Msg, true
	}
	return nil, false
}

package common

import "github.com/charmbracelet/x/cellbuf"

// ViewNode records the screen rectangle a sub-model was last rendered
// into.
type ViewNode struct {
	Width  int
	Height int
	Frame  cellbuf.Rectangle
}

func (s *ViewNode) SetFrame(f cellbuf.Rectangle) {
	s.Frame = f
	s.Width = f.Dx()
	s.Height = f.Dy()
}

func NewViewNode(width, height int) *ViewNode {
	return &ViewNode{Width: width, Height: height}
}

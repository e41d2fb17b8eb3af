package render

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/lunehart/vista/internal/ui/layout"
)

// RenderItemFunc draws one item into its visible screen rect. The rect
// may be shorter than the item's measured height when the item is
// clipped at the top or bottom of the list box.
type RenderItemFunc func(dl *DisplayContext, index int, rect cellbuf.Rectangle)

// MeasureItemFunc reports an item's height in lines.
type MeasureItemFunc func(index int) int

type ClickMessage = tea.Msg

// ClickMessageFunc builds the message delivered when an item's row is
// clicked.
type ClickMessageFunc func(index int) ClickMessage

// ListRenderer windows a vertical list of items onto a box, keeping a
// scroll position across frames. It draws only the visible items and
// registers a click region per row.
type ListRenderer struct {
	startLine int // first visible list line
	scrollMsg tea.Msg
	firstRow  int // index of the topmost visible item, -1 before a render
	lastRow   int
}

func NewListRenderer(scrollMsg tea.Msg) *ListRenderer {
	return &ListRenderer{
		scrollMsg: scrollMsg,
		firstRow:  -1,
		lastRow:   -1,
	}
}

// Render lays the items out in list-line space, clamps the scroll
// position, and draws every item that overlaps the visible window.
// When followCursor is set the window first shifts just far enough to
// bring the cursor item fully into view.
func (r *ListRenderer) Render(
	dl *DisplayContext,
	box layout.Box,
	itemCount int,
	cursor int,
	followCursor bool,
	measure MeasureItemFunc,
	renderItem RenderItemFunc,
	clickMsg ClickMessageFunc,
) {
	r.firstRow, r.lastRow = -1, -1
	viewHeight := box.R.Dy()
	if itemCount <= 0 || viewHeight <= 0 {
		return
	}

	heights := make([]int, itemCount)
	total := 0
	for i := range heights {
		h := measure(i)
		if h < 0 {
			h = 0
		}
		heights[i] = h
		total += h
	}

	r.startLine = clampLine(r.startLine, total-viewHeight)
	if followCursor && cursor >= 0 && cursor < itemCount {
		r.scrollIntoView(heights, cursor, viewHeight)
	}

	viewEnd := r.startLine + viewHeight
	lineY := 0
	for i, h := range heights {
		itemEnd := lineY + h
		if itemEnd > r.startLine && lineY < viewEnd {
			top := max(lineY, r.startLine)
			bottom := min(itemEnd, viewEnd)
			rect := cellbuf.Rect(
				box.R.Min.X,
				box.R.Min.Y+(top-r.startLine),
				box.R.Dx(),
				bottom-top,
			)
			renderItem(dl, i, rect)
			dl.AddInteraction(rect, clickMsg(i), InteractionClick, 0)
			if r.firstRow == -1 {
				r.firstRow = i
			}
			r.lastRow = i
		}
		lineY = itemEnd
	}
}

// scrollIntoView shifts the window by the minimum amount that makes the
// cursor item fully visible.
func (r *ListRenderer) scrollIntoView(heights []int, cursor, viewHeight int) {
	start := 0
	for _, h := range heights[:cursor] {
		start += h
	}
	end := start + heights[cursor]

	if start < r.startLine {
		r.startLine = start
	} else if end > r.startLine+viewHeight {
		r.startLine = clampLine(end-viewHeight, end)
	}
}

func clampLine(line, maxLine int) int {
	if maxLine < 0 {
		maxLine = 0
	}
	if line > maxLine {
		line = maxLine
	}
	if line < 0 {
		line = 0
	}
	return line
}

func (r *ListRenderer) SetScrollOffset(offset int) {
	r.startLine = offset
}

func (r *ListRenderer) GetScrollOffset() int {
	return r.startLine
}

// GetFirstRowIndex reports the topmost item drawn by the last Render,
// or -1 when nothing was visible.
func (r *ListRenderer) GetFirstRowIndex() int {
	return r.firstRow
}

func (r *ListRenderer) GetLastRowIndex() int {
	return r.lastRow
}

// RegisterScroll makes the whole list box a wheel target. Call after
// Render so the region covers the final box.
func (r *ListRenderer) RegisterScroll(dl *DisplayContext, box layout.Box) {
	if r.scrollMsg == nil {
		return
	}
	dl.AddInteraction(box.R, r.scrollMsg, InteractionScroll, 0)
}

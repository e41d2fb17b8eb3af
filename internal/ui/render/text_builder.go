package render

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// TextBuilder accumulates styled text chunks and flows them onto the
// display list as single-line draws. Chunks may span newlines; a chunk
// carrying an onClick message also registers a click region over its
// cells.
type TextBuilder struct {
	dl     *DisplayContext
	chunks []textChunk
	x, y   int
	z      int
}

type textChunk struct {
	text    string
	style   lipgloss.Style
	onClick tea.Msg
}

// textRun is one single-line piece after flowing, relative to the
// builder origin.
type textRun struct {
	col, row int
	width    int
	content  string
	onClick  tea.Msg
}

// Text starts a builder anchored at the given cell.
func (dl *DisplayContext) Text(x, y, z int) *TextBuilder {
	return &TextBuilder{dl: dl, x: x, y: y, z: z}
}

func (tb *TextBuilder) Write(text string) *TextBuilder {
	return tb.Styled(text, lipgloss.Style{})
}

func (tb *TextBuilder) NewLine() *TextBuilder {
	return tb.Write("\n")
}

func (tb *TextBuilder) Space(count int) *TextBuilder {
	if count <= 0 {
		return tb
	}
	return tb.Write(strings.Repeat(" ", count))
}

func (tb *TextBuilder) Styled(text string, style lipgloss.Style) *TextBuilder {
	tb.chunks = append(tb.chunks, textChunk{text: text, style: style})
	return tb
}

func (tb *TextBuilder) Clickable(text string, style lipgloss.Style, onClick tea.Msg) *TextBuilder {
	tb.chunks = append(tb.chunks, textChunk{text: text, style: style, onClick: onClick})
	return tb
}

// Measure reports the flowed width and height without drawing.
func (tb *TextBuilder) Measure() (int, int) {
	_, width, height := tb.flow()
	return width, height
}

// Done flushes the accumulated chunks to the display list.
func (tb *TextBuilder) Done() {
	runs, _, _ := tb.flow()
	for _, run := range runs {
		rect := cellbuf.Rect(tb.x+run.col, tb.y+run.row, run.width, 1)
		tb.dl.AddDraw(rect, run.content, tb.z)
		if run.onClick != nil {
			tb.dl.AddInteraction(rect, run.onClick, InteractionClick, tb.z)
		}
	}
}

// flow walks the chunks left to right, breaking only at explicit
// newlines, and places every non-empty run. Width is measured on the
// rendered string so styles that pad count toward layout.
func (tb *TextBuilder) flow() ([]textRun, int, int) {
	var runs []textRun
	col, row, width := 0, 0, 0

	for _, c := range tb.chunks {
		for i, part := range strings.Split(c.text, "\n") {
			if i > 0 {
				row++
				col = 0
			}
			if part == "" {
				continue
			}
			content := c.style.Render(part)
			w := lipgloss.Width(content)
			if w == 0 {
				continue
			}
			runs = append(runs, textRun{
				col:     col,
				row:     row,
				width:   w,
				content: content,
				onClick: c.onClick,
			})
			col += w
			if col > width {
				width = col
			}
		}
	}

	if len(runs) == 0 {
		return nil, 0, 0
	}
	return runs, width, row + 1
}

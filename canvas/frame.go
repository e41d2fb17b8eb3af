package canvas

import "strings"

// Cell is one rendered character cell. Item is the registry index of the
// shape that claimed the cell, or -1 for background.
type Cell struct {
	Glyph rune
	Item  int
}

// Frame is the result of one render pass: a rows x cols grid of cells in
// row-major order. Frames are plain values; they stay valid after the
// canvas that produced them changes.
type Frame struct {
	cols, rows int
	cells      []Cell
}

func newFrame(cols, rows int, background rune) *Frame {
	f := &Frame{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	for i := range f.cells {
		f.cells[i] = Cell{Glyph: background, Item: -1}
	}
	return f
}

func (f *Frame) set(col, row int, cell Cell) {
	f.cells[row*f.cols+col] = cell
}

// Size returns the frame dimensions in cells.
func (f *Frame) Size() (cols, rows int) {
	return f.cols, f.rows
}

// At returns the cell at (col, row). Out-of-range coordinates return a
// zero-glyph background cell.
func (f *Frame) At(col, row int) Cell {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return Cell{Item: -1}
	}
	return f.cells[row*f.cols+col]
}

// Line returns row as a string of glyphs.
func (f *Frame) Line(row int) string {
	if row < 0 || row >= f.rows {
		return ""
	}
	var sb strings.Builder
	sb.Grow(f.cols)
	for col := 0; col < f.cols; col++ {
		sb.WriteRune(f.cells[row*f.cols+col].Glyph)
	}
	return sb.String()
}

// Lines returns all rows, top to bottom.
func (f *Frame) Lines() []string {
	lines := make([]string, f.rows)
	for row := 0; row < f.rows; row++ {
		lines[row] = f.Line(row)
	}
	return lines
}

// String renders the frame as newline-joined rows.
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Equal reports whether two frames have identical size and cells.
func (f *Frame) Equal(other *Frame) bool {
	if f.cols != other.cols || f.rows != other.rows {
		return false
	}
	for i, cell := range f.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

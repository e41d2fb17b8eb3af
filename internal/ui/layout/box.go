// Package layout carves the terminal screen into panes. A Box wraps a
// cellbuf.Rectangle and splits declaratively instead of by rectangle
// arithmetic scattered across view code.
package layout

import "github.com/charmbracelet/x/cellbuf"

type Box struct {
	R cellbuf.Rectangle
}

func NewBox(r cellbuf.Rectangle) Box {
	return Box{R: r}
}

// Spec determines how much of a split each pane receives.
type Spec interface {
	// size resolves the spec against the dimension being split.
	// total is the full dimension, remaining is what is left after
	// Fixed/Percent allocations, fillWeight the sum of Fill weights.
	size(total, remaining int, fillWeight float64) int
}

// Fixed is an absolute pane size in cells.
type Fixed int

func (f Fixed) size(total, _ int, _ float64) int {
	n := int(f)
	if n < 0 {
		return 0
	}
	if n > total {
		return total
	}
	return n
}

// Percent is a pane size as a percentage (0-100) of the dimension.
type Percent int

func (p Percent) size(total, _ int, _ float64) int {
	pct := int(p)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return total
	}
	return total * pct / 100
}

// FillSpec takes a share of the space left over after Fixed and Percent
// panes, proportional to its weight.
type FillSpec float64

func (f FillSpec) size(_, remaining int, fillWeight float64) int {
	w := float64(f)
	if remaining <= 0 || fillWeight <= 0 || w <= 0 {
		return 0
	}
	n := int(float64(remaining) * w / fillWeight)
	if n < 0 {
		return 0
	}
	return n
}

// Fill creates a Spec that shares leftover space by weight: Fill(2) gets
// twice the cells of Fill(1).
func Fill(weight float64) Spec {
	return FillSpec(weight)
}

// Inset shrinks the box by n cells on all sides.
func (b Box) Inset(n int) Box {
	return Box{R: b.R.Inset(n)}
}

// V splits the box into stacked rows, top to bottom, one per spec.
func (b Box) V(specs ...Spec) []Box {
	return b.split(specs, false)
}

// H splits the box into side-by-side columns, left to right, one per spec.
func (b Box) H(specs ...Spec) []Box {
	return b.split(specs, true)
}

func (b Box) split(specs []Spec, horizontal bool) []Box {
	if len(specs) == 0 {
		return []Box{b}
	}

	total := b.R.Dy()
	if horizontal {
		total = b.R.Dx()
	}
	if total <= 0 {
		empty := Box{R: cellbuf.Rectangle{Min: b.R.Min, Max: b.R.Min}}
		result := make([]Box, len(specs))
		for i := range result {
			result[i] = empty
		}
		return result
	}

	// First pass: resolve Fixed/Percent, accumulate Fill weight.
	sizes := make([]int, len(specs))
	consumed := 0
	fillWeight := 0.0
	for i, spec := range specs {
		if f, ok := spec.(FillSpec); ok {
			fillWeight += float64(f)
			continue
		}
		sizes[i] = spec.size(total, 0, 0)
		consumed += sizes[i]
	}

	remaining := total - consumed
	if remaining < 0 {
		remaining = 0
	}

	// Second pass: share the leftover among Fill panes by weight.
	fillAllocated := 0
	for i, spec := range specs {
		if _, ok := spec.(FillSpec); ok {
			sizes[i] = spec.size(total, remaining, fillWeight)
			fillAllocated += sizes[i]
		}
	}

	// Integer division leaves a remainder; the last Fill pane absorbs it.
	if fillWeight > 0 && remaining > fillAllocated {
		for i := len(specs) - 1; i >= 0; i-- {
			if _, ok := specs[i].(FillSpec); ok {
				sizes[i] += remaining - fillAllocated
				break
			}
		}
	}

	result := make([]Box, len(specs))
	pos := b.R.Min.Y
	limit := b.R.Max.Y
	if horizontal {
		pos = b.R.Min.X
		limit = b.R.Max.X
	}
	for i, size := range sizes {
		if pos >= limit {
			result[i] = b.slice(limit, limit, horizontal)
			continue
		}
		next := pos + size
		if next > limit {
			next = limit
		}
		result[i] = b.slice(pos, next, horizontal)
		pos = next
	}
	return result
}

// slice returns the sub-box spanning [from, to) along the split axis and
// the full box extent along the other.
func (b Box) slice(from, to int, horizontal bool) Box {
	if horizontal {
		return Box{R: cellbuf.Rectangle{
			Min: cellbuf.Pos(from, b.R.Min.Y),
			Max: cellbuf.Pos(to, b.R.Max.Y),
		}}
	}
	return Box{R: cellbuf.Rectangle{
		Min: cellbuf.Pos(b.R.Min.X, from),
		Max: cellbuf.Pos(b.R.Max.X, to),
	}}
}

// CutTop cuts h rows off the top, returning the cut and the rest.
func (b Box) CutTop(h int) (top, rest Box) {
	h = clampCut(h, b.R.Dy())
	split := b.R.Min.Y + h
	return b.slice(b.R.Min.Y, split, false), b.slice(split, b.R.Max.Y, false)
}

// CutBottom cuts h rows off the bottom, returning the rest and the cut.
func (b Box) CutBottom(h int) (rest, bottom Box) {
	h = clampCut(h, b.R.Dy())
	split := b.R.Max.Y - h
	return b.slice(b.R.Min.Y, split, false), b.slice(split, b.R.Max.Y, false)
}

// CutLeft cuts w columns off the left, returning the cut and the rest.
func (b Box) CutLeft(w int) (left, rest Box) {
	w = clampCut(w, b.R.Dx())
	split := b.R.Min.X + w
	return b.slice(b.R.Min.X, split, true), b.slice(split, b.R.Max.X, true)
}

// CutRight cuts w columns off the right, returning the rest and the cut.
func (b Box) CutRight(w int) (rest, right Box) {
	w = clampCut(w, b.R.Dx())
	split := b.R.Max.X - w
	return b.slice(b.R.Min.X, split, true), b.slice(split, b.R.Max.X, true)
}

func clampCut(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// Center returns a w×h box centered within this one, clamped to fit.
func (b Box) Center(w, h int) Box {
	if w > b.R.Dx() {
		w = b.R.Dx()
	}
	if h > b.R.Dy() {
		h = b.R.Dy()
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	x := b.R.Min.X + (b.R.Dx()-w)/2
	y := b.R.Min.Y + (b.R.Dy()-h)/2
	return Box{R: cellbuf.Rect(x, y, w, h)}
}

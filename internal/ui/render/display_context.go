// Package render accumulates a frame's draw operations into a display
// list that is flushed to a cellbuf screen buffer once per view pass.
package render

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// DisplayContext holds all rendering operations for one frame. Views add
// draws, effects and interactive regions during the layout pass; Render
// executes them ordered by Z-index, then submission order.
type DisplayContext struct {
	draws        []drawOp
	effects      []effectOp
	interactions []interactionOp
	orderCounter int
}

func NewDisplayContext() *DisplayContext {
	return &DisplayContext{
		draws:        make([]drawOp, 0, 16),
		effects:      make([]effectOp, 0, 4),
		interactions: make([]interactionOp, 0, 4),
	}
}

func (dl *DisplayContext) nextOrder() int {
	dl.orderCounter++
	return dl.orderCounter
}

// AddDraw adds a content write at the given Z-index.
func (dl *DisplayContext) AddDraw(rect cellbuf.Rectangle, content string, z int) {
	dl.draws = append(dl.draws, drawOp{
		Draw: Draw{
			Rect:    rect,
			Content: content,
			Z:       z,
		},
		order: dl.nextOrder(),
	})
}

// AddFill fills a rectangle with the given rune and style.
func (dl *DisplayContext) AddFill(rect cellbuf.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	line := style.Render(strings.Repeat(string(ch), rect.Dx()))
	rows := make([]string, rect.Dy())
	for i := range rows {
		rows[i] = line
	}
	dl.AddDraw(rect, strings.Join(rows, "\n"), z)
}

// AddEffect adds a post-processing effect applied after all draws.
func (dl *DisplayContext) AddEffect(effect Effect) {
	dl.effects = append(dl.effects, effectOp{
		effect: effect,
		order:  dl.nextOrder(),
		z:      effect.GetZ(),
	})
}

// AddReverse reverses foreground/background in the given area.
func (dl *DisplayContext) AddReverse(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(ReverseEffect{Rect: rect, Z: z})
}

// AddDim fades the given area, used under modal overlays.
func (dl *DisplayContext) AddDim(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(DimEffect{Rect: rect, Z: z})
}

// AddInteraction registers a region that reacts to mouse input.
func (dl *DisplayContext) AddInteraction(rect cellbuf.Rectangle, msg tea.Msg, typ InteractionType, z int) {
	dl.interactions = append(dl.interactions, interactionOp{
		InteractionOp: InteractionOp{
			Rect: rect,
			Msg:  msg,
			Type: typ,
			Z:    z,
		},
		order: dl.nextOrder(),
	})
}

// Clear removes all operations so the context can be reused for the next
// frame.
func (dl *DisplayContext) Clear() {
	dl.draws = dl.draws[:0]
	dl.effects = dl.effects[:0]
	dl.interactions = dl.interactions[:0]
	dl.orderCounter = 0
}

// Render executes all accumulated operations against the buffer. Draws
// and effects are interleaved by Z-index (stable within a Z level), so an
// effect at Z dims everything below it but not draws above it.
func (dl *DisplayContext) Render(buf *cellbuf.Buffer) {
	if len(dl.draws) == 0 && len(dl.effects) == 0 {
		return
	}

	ops := make([]renderOp, 0, len(dl.draws)+len(dl.effects))
	for _, op := range dl.draws {
		ops = append(ops, renderOp{
			z:      op.Z,
			order:  op.order,
			draw:   op.Draw,
			isDraw: true,
		})
	}
	for _, op := range dl.effects {
		ops = append(ops, renderOp{
			z:      op.z,
			order:  op.order,
			effect: op.effect,
		})
	}

	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].z != ops[j].z {
			return ops[i].z < ops[j].z
		}
		return ops[i].order < ops[j].order
	})

	for _, op := range ops {
		if op.isDraw {
			cellbuf.SetContentRect(buf, op.draw.Content, op.draw.Rect)
			continue
		}
		op.effect.Apply(buf)
	}
}

// RenderToString renders into a fresh buffer and returns the final
// terminal string.
func (dl *DisplayContext) RenderToString(width, height int) string {
	buf := cellbuf.NewBuffer(width, height)
	dl.Render(buf)
	return cellbuf.Render(buf)
}

// InteractionsList returns a copy of all interactive regions, for
// inspection in tests.
func (dl *DisplayContext) InteractionsList() []InteractionOp {
	result := make([]InteractionOp, len(dl.interactions))
	for i, op := range dl.interactions {
		result[i] = op.InteractionOp
	}
	return result
}

// DrawList returns a copy of all draw operations, for inspection in tests.
func (dl *DisplayContext) DrawList() []Draw {
	result := make([]Draw, len(dl.draws))
	for i, op := range dl.draws {
		result[i] = op.Draw
	}
	return result
}

// Len returns the total number of accumulated operations.
func (dl *DisplayContext) Len() int {
	return len(dl.draws) + len(dl.effects) + len(dl.interactions)
}

// ProcessMouseEvent matches a mouse event against the registered
// interactive regions, highest Z first.
func (dl *DisplayContext) ProcessMouseEvent(msg tea.MouseMsg) (tea.Msg, bool) {
	if len(dl.interactions) == 0 {
		return nil, false
	}
	sorted := make([]interactionOp, len(dl.interactions))
	copy(sorted, dl.interactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Z != sorted[j].Z {
			return sorted[i].Z > sorted[j].Z
		}
		return sorted[i].order < sorted[j].order
	})
	return processMouseEvent(sorted, msg)
}

type drawOp struct {
	Draw
	order int
}

type effectOp struct {
	effect Effect
	order  int
	z      int
}

type interactionOp struct {
	InteractionOp
	order int
}

type renderOp struct {
	z      int
	order  int
	draw   Draw
	effect Effect
	isDraw bool
}

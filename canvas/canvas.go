// Package canvas rasterizes 2D shapes onto a character grid. A Canvas
// holds a registry of drawables and a movable viewport; each Render pass
// samples one world point per character cell and asks the registered
// shapes, in order, whether they contain it. The last added shape wins
// overlapping cells.
//
// A Canvas is not safe for concurrent use; the owning event loop must
// serialize mutation and rendering.
package canvas

import (
	"github.com/lunehart/vista/geom"
)

// Default glyphs for freshly created canvases and items.
const (
	DefaultBackground = '-'
	DefaultGlyph      = '#'
)

// Drawable is anything placeable on a canvas.
//
// Bounds returns an axis-aligned box covering the shape; it may
// over-approximate but must cover every point for which Contains reports
// true, because the renderer uses it to skip cells without consulting
// Contains. Contains reports whether a world point lies inside the shape
// and must be pure. geom.Rect and every type in the shapes package
// satisfy Drawable.
type Drawable interface {
	Bounds() geom.Rect
	Contains(geom.Point) bool
}

// Item is one registered drawable together with its presentation.
type Item struct {
	Drawable Drawable
	Glyph    rune
	Name     string
}

// ItemOption customizes an item at registration time.
type ItemOption func(*Item)

// WithGlyph sets the rune used for cells covered by the item.
func WithGlyph(g rune) ItemOption {
	return func(it *Item) { it.Glyph = g }
}

// WithName attaches a display name to the item.
func WithName(name string) ItemOption {
	return func(it *Item) { it.Name = name }
}

// Options configure a new canvas. Zero fields fall back to defaults.
type Options struct {
	Cols, Rows int
	Scale      float64 // world units per cell
	Background rune
}

// DefaultOptions returns the options New applies for unset fields.
func DefaultOptions() Options {
	return Options{Scale: 1, Background: DefaultBackground}
}

// Canvas owns a viewport over world space and the registry of shapes to
// draw. Shapes are held by reference and never copied or freed; callers
// keep them alive for the lifetime of the canvas.
type Canvas struct {
	offset     geom.Point
	scale      float64
	cols, rows int
	background rune
	items      []Item
}

// New returns an empty canvas with the viewport anchored at the origin.
func New(opts Options) *Canvas {
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}
	if opts.Background == 0 {
		opts.Background = DefaultOptions().Background
	}
	c := &Canvas{
		scale:      opts.Scale,
		cols:       max(opts.Cols, 0),
		rows:       max(opts.Rows, 0),
		background: opts.Background,
	}
	Logger().Debug("canvas created",
		"cols", c.cols, "rows", c.rows, "scale", c.scale)
	return c
}

// Add registers a drawable. The registry is append-only: there is no
// removal, and indices handed out by Render stay stable. A nil drawable
// is ignored.
func (c *Canvas) Add(d Drawable, opts ...ItemOption) {
	if d == nil {
		Logger().Warn("ignoring nil drawable")
		return
	}
	it := Item{Drawable: d, Glyph: DefaultGlyph}
	for _, opt := range opts {
		opt(&it)
	}
	c.items = append(c.items, it)
	Logger().Debug("shape added",
		"index", len(c.items)-1, "name", it.Name, "bounds", d.Bounds())
}

// Items returns the registry in registration order. The slice is shared
// with the canvas; callers must not modify it.
func (c *Canvas) Items() []Item {
	return c.items
}

// Pan moves the viewport by a world-space delta. There are no bounds:
// the viewport may move arbitrarily far from every shape.
func (c *Canvas) Pan(delta geom.Point) {
	c.offset = c.offset.Add(delta)
}

// Walk pans the viewport the given world-space distance along a cardinal
// direction.
func (c *Canvas) Walk(dir geom.Direction, distance float64) {
	c.Pan(dir.Vector().Mul(distance))
}

// Offset returns the world position sampled by the top-left cell.
func (c *Canvas) Offset() geom.Point {
	return c.offset
}

// SetOffset moves the viewport so its top-left cell samples p.
func (c *Canvas) SetOffset(p geom.Point) {
	c.offset = p
}

// Scale returns the current world-units-per-cell ratio.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// SetScale changes the world-units-per-cell ratio. Non-positive values
// are ignored.
func (c *Canvas) SetScale(s float64) {
	if s <= 0 {
		Logger().Warn("ignoring non-positive scale", "scale", s)
		return
	}
	c.scale = s
}

// Resize changes the viewport grid. Negative dimensions clamp to zero.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
}

// Size returns the viewport dimensions in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Background returns the glyph rendered for uncovered cells.
func (c *Canvas) Background() rune {
	return c.background
}

// ViewExtent returns the world-space rectangle spanned by the points the
// current viewport samples. For an empty viewport it returns an empty
// rectangle at the offset.
func (c *Canvas) ViewExtent() geom.Rect {
	if c.cols == 0 || c.rows == 0 {
		return geom.Rect{Pos: c.offset}
	}
	return geom.Rect{
		Pos: c.offset,
		W:   float64(c.cols-1) * c.scale,
		H:   float64(c.rows-1) * c.scale,
	}
}

// CenterOn moves the viewport so that p sits in the middle cell.
func (c *Canvas) CenterOn(p geom.Point) {
	half := geom.Pt(float64(c.cols)/2*c.scale, float64(c.rows)/2*c.scale)
	c.offset = p.Sub(half)
}

type renderTarget struct {
	index  int
	bounds geom.Rect
	item   Item
}

// Render rasterizes the scene into a fresh frame. Cell (col, row) samples
// the world point offset + (col, row) * scale. Every registered shape is
// consulted per cell, cheapest test first: the shape's bounding box, then
// Contains only when the box covers the point. Later registrations
// overwrite earlier ones; cells no shape claims show the background
// glyph.
func (c *Canvas) Render() *Frame {
	frame := newFrame(c.cols, c.rows, c.background)
	if c.cols == 0 || c.rows == 0 || len(c.items) == 0 {
		return frame
	}

	// One bounds call per item per pass. Items whose box misses every
	// sampled point this pass are dropped up front.
	extent := c.ViewExtent()
	visible := make([]renderTarget, 0, len(c.items))
	for i, it := range c.items {
		b := it.Drawable.Bounds()
		if !extent.Intersects(b) {
			continue
		}
		visible = append(visible, renderTarget{index: i, bounds: b, item: it})
	}
	Logger().Debug("render pass",
		"cols", c.cols, "rows", c.rows,
		"items", len(c.items), "visible", len(visible))
	if len(visible) == 0 {
		return frame
	}

	for row := 0; row < c.rows; row++ {
		y := c.offset.Y + float64(row)*c.scale
		for col := 0; col < c.cols; col++ {
			p := geom.Pt(c.offset.X+float64(col)*c.scale, y)
			cell := Cell{Glyph: c.background, Item: -1}
			for _, tgt := range visible {
				if !tgt.bounds.Covers(p) {
					continue
				}
				if tgt.item.Drawable.Contains(p) {
					cell = Cell{Glyph: tgt.item.Glyph, Item: tgt.index}
				}
			}
			frame.set(col, row, cell)
		}
	}
	return frame
}

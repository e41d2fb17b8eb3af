// Package scenescript evaluates Lua scene files. A scene script calls one
// global constructor per shape:
//
//	rect{x=0, y=0, w=10, h=10}
//	circle{x=7, y=3, r=10, glyph="@", name="sun"}
//	ellipse{x=0, y=0, rx=6, ry=3}
//	triangle{a={0,0}, b={4,0}, c={0,4}}
//	polygon{points={{0,0}, {4,0}, {2,3}}}
//	segment{from={0,0}, to={10,5}, thickness=1.2}
//	background(".")
//
// Coordinates are world units, y growing downward. Every constructor
// accepts optional glyph and name fields. The same functions are also
// available under the vista namespace table.
package scenescript

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	lua "github.com/yuin/gopher-lua"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/shapes"
)

// Item is one shape produced by a scene script.
type Item struct {
	Drawable canvas.Drawable
	Glyph    rune
	Name     string
}

// Scene is the result of evaluating a scene script.
type Scene struct {
	Items      []Item
	Background rune // 0 unless the script called background()
}

// Load evaluates the Lua scene file at path.
func Load(path string) (*Scene, error) {
	s := &Scene{}
	L := lua.NewState()
	defer L.Close()
	registerAPI(L, s)
	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// LoadString evaluates Lua scene source directly.
func LoadString(src string) (*Scene, error) {
	s := &Scene{}
	L := lua.NewState()
	defer L.Close()
	registerAPI(L, s)
	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return s, nil
}

// Apply registers every scene item on the canvas, in script order.
func (s *Scene) Apply(c *canvas.Canvas) {
	for _, it := range s.Items {
		c.Add(it.Drawable, canvas.WithGlyph(it.Glyph), canvas.WithName(it.Name))
	}
}

func registerAPI(L *lua.LState, s *Scene) {
	rectFn := L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		s.add(L, tbl, "rect", geom.Rect{
			Pos: geom.Pt(numField(tbl, "x"), numField(tbl, "y")),
			W:   requireNum(L, tbl, "rect", "w"),
			H:   requireNum(L, tbl, "rect", "h"),
		})
		return 0
	})
	circleFn := L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		s.add(L, tbl, "circle", shapes.Circle{
			Center: geom.Pt(numField(tbl, "x"), numField(tbl, "y")),
			Radius: requireNum(L, tbl, "circle", "r"),
		})
		return 0
	})
	ellipseFn := L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		s.add(L, tbl, "ellipse", shapes.Ellipse{
			Center: geom.Pt(numField(tbl, "x"), numField(tbl, "y")),
			RX:     requireNum(L, tbl, "ellipse", "rx"),
			RY:     requireNum(L, tbl, "ellipse", "ry"),
		})
		return 0
	})
	triangleFn := L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		s.add(L, tbl, "triangle", shapes.Triangle{
			A: requirePoint(L, tbl, "triangle", "a"),
			B: requirePoint(L, tbl, "triangle", "b"),
			C: requirePoint(L, tbl, "triangle", "c"),
		})
		return 0
	})
	polygonFn := L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		pts := pointsField(tbl, "points")
		if len(pts) < 3 {
			L.RaiseError("polygon: want at least 3 points, got %d", len(pts))
		}
		s.add(L, tbl, "polygon", shapes.Polygon{Points: pts})
		return 0
	})
	segmentFn := L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		thickness := 1.0
		if n, ok := tbl.RawGetString("thickness").(lua.LNumber); ok {
			thickness = float64(n)
		}
		s.add(L, tbl, "segment", shapes.Segment{
			From:      requirePoint(L, tbl, "segment", "from"),
			To:        requirePoint(L, tbl, "segment", "to"),
			Thickness: thickness,
		})
		return 0
	})
	backgroundFn := L.NewFunction(func(L *lua.LState) int {
		s.Background = checkGlyph(L, L.CheckString(1), "background")
		return 0
	})

	root := L.NewTable()
	for name, fn := range map[string]*lua.LFunction{
		"rect":       rectFn,
		"circle":     circleFn,
		"ellipse":    ellipseFn,
		"triangle":   triangleFn,
		"polygon":    polygonFn,
		"segment":    segmentFn,
		"background": backgroundFn,
	} {
		root.RawSetString(name, fn)
		L.SetGlobal(name, fn)
	}
	L.SetGlobal("vista", root)
}

func (s *Scene) add(L *lua.LState, tbl *lua.LTable, kind string, d canvas.Drawable) {
	it := Item{Drawable: d, Glyph: canvas.DefaultGlyph, Name: kind}
	if g, ok := tbl.RawGetString("glyph").(lua.LString); ok {
		it.Glyph = checkGlyph(L, g.String(), kind)
	}
	if n, ok := tbl.RawGetString("name").(lua.LString); ok {
		it.Name = n.String()
	}
	s.Items = append(s.Items, it)
}

func numField(tbl *lua.LTable, key string) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func requireNum(L *lua.LState, tbl *lua.LTable, fn, key string) float64 {
	n, ok := tbl.RawGetString(key).(lua.LNumber)
	if !ok {
		L.RaiseError("%s: missing numeric field %q", fn, key)
	}
	return float64(n)
}

func requirePoint(L *lua.LState, tbl *lua.LTable, fn, key string) geom.Point {
	pt, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		L.RaiseError("%s: missing point field %q", fn, key)
		return geom.Point{}
	}
	return pointFromTable(pt)
}

// pointFromTable accepts {x, y} pairs and {x=..., y=...} tables.
func pointFromTable(tbl *lua.LTable) geom.Point {
	if x, ok := tbl.RawGetInt(1).(lua.LNumber); ok {
		y, _ := tbl.RawGetInt(2).(lua.LNumber)
		return geom.Pt(float64(x), float64(y))
	}
	return geom.Pt(numField(tbl, "x"), numField(tbl, "y"))
}

func pointsField(tbl *lua.LTable, key string) []geom.Point {
	list, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	var pts []geom.Point
	list.ForEach(func(_, v lua.LValue) {
		if pt, ok := v.(*lua.LTable); ok {
			pts = append(pts, pointFromTable(pt))
		}
	})
	return pts
}

func checkGlyph(L *lua.LState, s, fn string) rune {
	r := []rune(s)
	if len(r) != 1 || runewidth.RuneWidth(r[0]) != 1 {
		L.RaiseError("%s: glyph %q is not a single-cell character", fn, s)
	}
	return r[0]
}

package scenescript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/shapes"
)

func TestLoadStringAllConstructors(t *testing.T) {
	scene, err := LoadString(`
rect{x=1, y=2, w=3, h=4, glyph="+", name="box"}
circle{x=7, y=3, r=10}
ellipse{x=0, y=0, rx=4, ry=2}
triangle{a={0, 0}, b={4, 0}, c={0, 4}}
polygon{points={{0, 0}, {4, 0}, {2, 3}}}
segment{from={0, 0}, to={10, 5}, thickness=2}
`)
	require.NoError(t, err)
	require.Len(t, scene.Items, 6)

	box := scene.Items[0]
	assert.Equal(t, geom.NewRect(1, 2, 3, 4), box.Drawable)
	assert.Equal(t, '+', box.Glyph)
	assert.Equal(t, "box", box.Name)

	sun := scene.Items[1]
	assert.Equal(t, shapes.Circle{Center: geom.Pt(7, 3), Radius: 10}, sun.Drawable)
	assert.Equal(t, rune(canvas.DefaultGlyph), sun.Glyph, "glyph defaults")
	assert.Equal(t, "circle", sun.Name, "name defaults to the constructor")

	assert.Equal(t, shapes.Ellipse{RX: 4, RY: 2}, scene.Items[2].Drawable)
	assert.Equal(t,
		shapes.Triangle{A: geom.Pt(0, 0), B: geom.Pt(4, 0), C: geom.Pt(0, 4)},
		scene.Items[3].Drawable)
	assert.Equal(t,
		shapes.Polygon{Points: []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}},
		scene.Items[4].Drawable)
	assert.Equal(t,
		shapes.Segment{From: geom.Pt(0, 0), To: geom.Pt(10, 5), Thickness: 2},
		scene.Items[5].Drawable)
}

func TestNamedPointForm(t *testing.T) {
	scene, err := LoadString(`segment{from={x=1, y=2}, to={x=3, y=4}}`)
	require.NoError(t, err)
	require.Len(t, scene.Items, 1)
	assert.Equal(t,
		shapes.Segment{From: geom.Pt(1, 2), To: geom.Pt(3, 4), Thickness: 1},
		scene.Items[0].Drawable, "thickness defaults to 1")
}

func TestBackgroundOverride(t *testing.T) {
	scene, err := LoadString(`background(".")`)
	require.NoError(t, err)
	assert.Equal(t, '.', scene.Background)

	scene, err = LoadString(`circle{r=1}`)
	require.NoError(t, err)
	assert.Equal(t, rune(0), scene.Background, "unset unless called")

	_, err = LoadString(`background("ab")`)
	assert.Error(t, err)
}

func TestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax error", `rect{`, "scene:"},
		{"missing radius", `circle{x=1}`, `missing numeric field "r"`},
		{"missing size", `rect{x=1, y=1}`, `missing numeric field "w"`},
		{"missing vertex", `triangle{a={0, 0}, b={1, 0}}`, `missing point field "c"`},
		{"too few points", `polygon{points={{0, 0}, {1, 1}}}`, "at least 3 points"},
		{"bad glyph", `circle{r=1, glyph=""}`, "single-cell"},
		{"runtime error", `nosuchfunction()`, "scene:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
-- a scene can compute its shapes
for i = 0, 2 do
  circle{x=i * 10, y=0, r=3, name="dot " .. i}
end
`), 0o644))

	scene, err := Load(path)
	require.NoError(t, err)
	require.Len(t, scene.Items, 3)
	assert.Equal(t, "dot 2", scene.Items[2].Name)
	assert.Equal(t, shapes.Circle{Center: geom.Pt(20, 0), Radius: 3}, scene.Items[2].Drawable)

	_, err = Load(filepath.Join(t.TempDir(), "absent.lua"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	scene, err := LoadString(`
rect{x=0, y=0, w=2, h=2, glyph="a", name="first"}
rect{x=1, y=1, w=2, h=2, glyph="b", name="second"}
`)
	require.NoError(t, err)

	c := canvas.New(canvas.Options{Cols: 4, Rows: 4})
	scene.Apply(c)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, 'b', items[1].Glyph)
	assert.Equal(t, 'b', c.Render().At(1, 1).Glyph, "registration order carries over")
}

func TestDemoScene(t *testing.T) {
	scene, err := Demo()
	require.NoError(t, err)
	require.NotEmpty(t, scene.Items)

	assert.Equal(t,
		shapes.Circle{Center: geom.Pt(7, 3), Radius: 10},
		scene.Items[0].Drawable, "demo keeps the classic big circle")

	kinds := map[string]bool{}
	for _, it := range scene.Items {
		switch it.Drawable.(type) {
		case geom.Rect:
			kinds["rect"] = true
		case shapes.Circle:
			kinds["circle"] = true
		case shapes.Ellipse:
			kinds["ellipse"] = true
		case shapes.Triangle:
			kinds["triangle"] = true
		case shapes.Polygon:
			kinds["polygon"] = true
		case shapes.Segment:
			kinds["segment"] = true
		}
	}
	assert.Len(t, kinds, 6, "one of each built-in shape")
}

package scenescript

// demoScript is the scene shown when no scene file is configured: one of
// each built-in shape, spread around the origin so panning in any
// direction finds something.
const demoScript = `
circle{x=7, y=3, r=10, name="big circle"}
rect{x=-16, y=-6, w=9, h=5, glyph="+", name="plaque"}
ellipse{x=20, y=-5, rx=6, ry=3, glyph="o", name="blob"}
triangle{a={-2, 18}, b={10, 15}, c={3, 24}, glyph="^", name="delta"}
polygon{points={{24, 10}, {31, 12}, {29, 18}, {24, 21}, {21, 15}}, glyph="*", name="pentagon"}
segment{from={-12, 12}, to={0, 4}, thickness=1.2, glyph=".", name="strut"}
`

// Demo returns the built-in scene.
func Demo() (*Scene, error) {
	return LoadString(demoScript)
}

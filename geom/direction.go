package geom

// Direction is one of the four cardinal pan directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector returns the unit step for the direction. World space is y-down,
// so Up points toward negative y.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Pt(0, -1)
	case Down:
		return Pt(0, 1)
	case Left:
		return Pt(-1, 0)
	case Right:
		return Pt(1, 0)
	}
	return Point{}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

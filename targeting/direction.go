package targeting

// Direction is a compass direction for relative pointer movement.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionUpRight
	DirectionRight
	DirectionDownRight
	DirectionDown
	DirectionDownLeft
	DirectionLeft
	DirectionUpLeft
)

var directionNames = [...]string{
	DirectionNone:      "none",
	DirectionUp:        "up",
	DirectionUpRight:   "up-right",
	DirectionRight:     "right",
	DirectionDownRight: "down-right",
	DirectionDown:      "down",
	DirectionDownLeft:  "down-left",
	DirectionLeft:      "left",
	DirectionUpLeft:    "up-left",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// ResolveDirection combines the four held signals into a single direction.
// Opposed signals on the same axis cancel, leaving only the other axis.
func ResolveDirection(left, right, up, down bool) Direction {
	dx, dy := axis(left, right), axis(up, down)
	switch {
	case dx == 0 && dy < 0:
		return DirectionUp
	case dx > 0 && dy < 0:
		return DirectionUpRight
	case dx > 0 && dy == 0:
		return DirectionRight
	case dx > 0 && dy > 0:
		return DirectionDownRight
	case dx == 0 && dy > 0:
		return DirectionDown
	case dx < 0 && dy > 0:
		return DirectionDownLeft
	case dx < 0 && dy == 0:
		return DirectionLeft
	case dx < 0 && dy < 0:
		return DirectionUpLeft
	}
	return DirectionNone
}

func axis(neg, pos bool) int {
	v := 0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}

// Unit returns the per-axis step for d in window space (y grows downward).
// Diagonals move one unit on each axis.
func (d Direction) Unit() Point {
	switch d {
	case DirectionUp:
		return Point{X: 0, Y: -1}
	case DirectionUpRight:
		return Point{X: 1, Y: -1}
	case DirectionRight:
		return Point{X: 1, Y: 0}
	case DirectionDownRight:
		return Point{X: 1, Y: 1}
	case DirectionDown:
		return Point{X: 0, Y: 1}
	case DirectionDownLeft:
		return Point{X: -1, Y: 1}
	case DirectionLeft:
		return Point{X: -1, Y: 0}
	case DirectionUpLeft:
		return Point{X: -1, Y: -1}
	}
	return Point{}
}

// Speed selects the movement step size.
type Speed int

const (
	SpeedNormal Speed = iota
	SpeedFast
)

func (s Speed) String() string {
	if s == SpeedFast {
		return "fast"
	}
	return "normal"
}

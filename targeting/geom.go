package targeting

// Point is a position in window space.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Div divides both dimensions by n.
func (s Size) Div(n float64) Size {
	return Size{W: s.W / n, H: s.H / n}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Min  Point
	Size Size
}

// RectFromCenter builds the rectangle of the given size centered on c.
func RectFromCenter(c Point, s Size) Rect {
	return Rect{
		Min:  Point{X: c.X - s.W/2, Y: c.Y - s.H/2},
		Size: s,
	}
}

func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.Size.W/2, Y: r.Min.Y + r.Size.H/2}
}

func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.Size.W, Y: r.Min.Y + r.Size.H}
}

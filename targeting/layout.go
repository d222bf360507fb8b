package targeting

import "math"

// Grid is the geometry of a uniform grid tiling an area.
type Grid struct {
	Origin Point
	Rows   int
	Cols   int
	Cell   Size
}

// Layout fits a grid of roughly targetCell-sized cells into area. Row and
// column counts never drop below one, and cells are stretched so the grid
// covers the area exactly.
func Layout(area Rect, targetCell float64) Grid {
	cols := fitCount(area.Size.W, targetCell)
	rows := fitCount(area.Size.H, targetCell)
	return Grid{
		Origin: area.Min,
		Rows:   rows,
		Cols:   cols,
		Cell:   Size{W: area.Size.W / float64(cols), H: area.Size.H / float64(rows)},
	}
}

// maxCount caps rows and columns so huge extents or tiny cells cannot
// overflow int.
const maxCount = 1 << 16

func fitCount(extent, target float64) int {
	if !(target > 0) || !(extent > 0) {
		return 1
	}
	n := math.Floor(extent / target)
	if n < 1 {
		return 1
	}
	if n > maxCount {
		return maxCount
	}
	return int(n)
}

// Len is the number of cells in the grid.
func (g Grid) Len() int {
	return g.Rows * g.Cols
}

// CellRect returns the rectangle of the cell at (row, col).
func (g Grid) CellRect(row, col int) Rect {
	return Rect{
		Min: Point{
			X: g.Origin.X + float64(col)*g.Cell.W,
			Y: g.Origin.Y + float64(row)*g.Cell.H,
		},
		Size: g.Cell,
	}
}

// Bounds is the full area covered by the grid.
func (g Grid) Bounds() Rect {
	return Rect{
		Min:  g.Origin,
		Size: Size{W: g.Cell.W * float64(g.Cols), H: g.Cell.H * float64(g.Rows)},
	}
}

package targeting

// CoarseGrid is the first targeting level: a full-area grid addressed by
// two-letter labels.
type CoarseGrid struct {
	cellSize float64

	grid   Grid
	cells  []Cell
	labels map[string]Point

	// first is the pending first key of a combo, KeyNone when empty.
	first Key
}

func NewCoarseGrid(cellSize float64) *CoarseGrid {
	return &CoarseGrid{cellSize: cellSize}
}

// LayOut recomputes the grid for area and rebuilds the label map. Labels are
// assigned row-major from index 0.
func (c *CoarseGrid) LayOut(area Rect) Grid {
	c.grid = Layout(area, c.cellSize)

	n := c.grid.Len()
	c.cells = c.cells[:0]
	c.labels = make(map[string]Point, min(n, labelSpace))

	id := 0
	for row := 0; row < c.grid.Rows; row++ {
		for col := 0; col < c.grid.Cols; col++ {
			rect := c.grid.CellRect(row, col)
			label := Encode(id)
			c.cells = append(c.cells, Cell{Label: label, Rect: rect})
			// later cells take over a wrapped label
			c.labels[label] = rect.Center()
			id++
		}
	}
	return c.grid
}

// HandleInput feeds one frame of key edges into the combo state.
func (c *CoarseGrid) HandleInput(in Input) Command {
	key := in.Pressed.First(KeyA, KeyZ)
	if key == KeyNone {
		return await()
	}

	if c.first == KeyNone {
		c.first = key
		return await()
	}

	combo := c.first.String() + key.String()
	c.first = KeyNone

	pos, ok := c.labels[combo]
	if !ok {
		return await()
	}
	return Command{Kind: CommandEnterFine, Position: pos, CellSize: c.grid.Cell}
}

// Lookup returns the center of the cell labelled label in the current frame.
func (c *CoarseGrid) Lookup(label string) (Point, bool) {
	p, ok := c.labels[label]
	return p, ok
}

// Pending returns the first key of an incomplete combo, or KeyNone.
func (c *CoarseGrid) Pending() Key {
	return c.first
}

// Reset drops any pending combo.
func (c *CoarseGrid) Reset() {
	c.first = KeyNone
}

func (c *CoarseGrid) Grid() Grid {
	return c.grid
}

func (c *CoarseGrid) Cells() []Cell {
	return c.cells
}

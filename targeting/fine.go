package targeting

const fineDivisions = 3

// Direction key groups. Arrows and the vi keys are interchangeable.
var (
	leftKeys  = []Key{KeyArrowLeft, KeyH}
	rightKeys = []Key{KeyArrowRight, KeyL}
	upKeys    = []Key{KeyArrowUp, KeyK}
	downKeys  = []Key{KeyArrowDown, KeyJ}

	directionKeys = NewKeySet(
		KeyArrowLeft, KeyH, KeyArrowRight, KeyL,
		KeyArrowUp, KeyK, KeyArrowDown, KeyJ,
	)
)

// ClickKey clicks at the current pointer location on the fine level.
const ClickKey = KeySpace

// FineGrid is the second targeting level: a 3x3 subdivision of one coarse
// cell addressed by the digits 1..9.
type FineGrid struct {
	origin   Point
	cellSize Size

	step, fast float64

	grid   Grid
	cells  []Cell
	labels map[string]Point

	// suppressed holds direction keys that were already down when the level
	// was entered. Each is ignored until it is released.
	suppressed KeySet
}

// NewFineGrid subdivides the coarse cell of size cellSize centered on origin.
func NewFineGrid(origin Point, cellSize Size, opts Options) *FineGrid {
	opts = opts.withDefaults()
	return &FineGrid{
		origin:   origin,
		cellSize: cellSize,
		step:     opts.MoveStep,
		fast:     opts.FastMultiplier,
		cells:    make([]Cell, 0, fineDivisions*fineDivisions),
		labels:   make(map[string]Point, fineDivisions*fineDivisions),
	}
}

// LayOut re-derives the sub-cells from the fixed geometry. The host area is
// ignored: the fine level never moves once entered.
func (f *FineGrid) LayOut() Grid {
	f.grid = Grid{
		Origin: RectFromCenter(f.origin, f.cellSize).Min,
		Rows:   fineDivisions,
		Cols:   fineDivisions,
		Cell:   f.cellSize.Div(fineDivisions),
	}

	f.cells = f.cells[:0]
	clear(f.labels)
	digit := Key1
	for row := 0; row < fineDivisions; row++ {
		for col := 0; col < fineDivisions; col++ {
			rect := f.grid.CellRect(row, col)
			label := digit.String()
			f.cells = append(f.cells, Cell{Label: label, Rect: rect})
			f.labels[label] = rect.Center()
			digit++
		}
	}
	return f.grid
}

// Suppress ignores the direction keys in held until each is released. The
// key that completed the coarse combo may be one of them.
func (f *FineGrid) Suppress(held KeySet) {
	f.suppressed = held & directionKeys
}

// HandleInput resolves digits and the click key on their press edge, and
// direction keys while they are held.
func (f *FineGrid) HandleInput(in Input) Command {
	f.suppressed &= in.Held &^ in.Pressed
	active := in.Held &^ f.suppressed

	if digit := in.Pressed.First(Key1, Key9); digit != KeyNone {
		if pos, ok := f.labels[digit.String()]; ok {
			return Command{Kind: CommandMoveAndClick, Position: pos}
		}
	}

	if in.Pressed.Has(ClickKey) {
		return Command{Kind: CommandClick}
	}

	dir := ResolveDirection(
		active.Any(leftKeys...),
		active.Any(rightKeys...),
		active.Any(upKeys...),
		active.Any(downKeys...),
	)
	if dir == DirectionNone {
		return await()
	}

	speed := SpeedNormal
	if in.Shift {
		speed = SpeedFast
	}
	return Command{
		Kind:      CommandMove,
		Direction: dir,
		Speed:     speed,
		Delta:     f.displacement(dir, speed),
	}
}

func (f *FineGrid) displacement(dir Direction, speed Speed) Point {
	step := f.step
	if speed == SpeedFast {
		step *= f.fast
	}
	u := dir.Unit()
	return Point{X: u.X * step, Y: u.Y * step}
}

// Origin returns the center and size of the coarse cell being refined.
func (f *FineGrid) Origin() (Point, Size) {
	return f.origin, f.cellSize
}

func (f *FineGrid) Grid() Grid {
	return f.grid
}

func (f *FineGrid) Cells() []Cell {
	return f.cells
}

func (f *FineGrid) setMovement(opts Options) {
	opts = opts.withDefaults()
	f.step = opts.MoveStep
	f.fast = opts.FastMultiplier
}

// Package targeting implements keyboard pointer targeting: a coarse grid of
// two-letter cells, a 3x3 fine grid inside the chosen cell, and held-key
// pointer nudging. It has no rendering or OS dependencies; a host feeds it one
// Input per frame and executes the Command it returns.
package targeting

import "fmt"

// CancelKey ends the session from any level.
const CancelKey = KeyEscape

// Level identifies the active targeting level.
type Level int

const (
	LevelCoarse Level = iota
	LevelFine
)

func (l Level) String() string {
	switch l {
	case LevelCoarse:
		return "coarse"
	case LevelFine:
		return "fine"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Machine owns the active level and routes each frame's input to it. The
// fine level is active exactly when fine is set.
type Machine struct {
	opts Options

	coarse *CoarseGrid
	fine   *FineGrid
	done   bool
}

func NewMachine(opts Options) *Machine {
	opts = opts.withDefaults()
	return &Machine{
		opts:   opts,
		coarse: NewCoarseGrid(opts.CellSize),
	}
}

// Advance runs one frame. Cancel is checked before anything else. After a
// terminal command the machine is done and every later frame is CommandAwait.
func (m *Machine) Advance(in Input) Command {
	if m.done {
		return await()
	}

	if in.Pressed.Has(CancelKey) {
		m.finish()
		return Command{Kind: CommandTerminate}
	}

	if m.fine != nil {
		m.fine.LayOut()
		cmd := m.fine.HandleInput(in)
		if cmd.Terminal() {
			m.finish()
		}
		return cmd
	}

	m.coarse.LayOut(in.Area)
	cmd := m.coarse.HandleInput(in)
	if cmd.Kind != CommandEnterFine {
		return cmd
	}
	m.enterFine(cmd.Position, cmd.CellSize, in.Held)
	return Command{Kind: CommandWarpPointer, Position: cmd.Position}
}

// enterFine switches to the fine level around origin. Direction keys in held
// are still down from the combo and stay inert until released.
func (m *Machine) enterFine(origin Point, cellSize Size, held KeySet) {
	m.coarse.Reset()
	m.fine = NewFineGrid(origin, cellSize, m.opts)
	m.fine.Suppress(held)
	m.fine.LayOut()
}

func (m *Machine) finish() {
	m.done = true
	m.coarse.Reset()
}

// SetOptions applies new tuning. The coarse layout picks it up on the next
// frame; an active fine level keeps its geometry and only takes the new
// movement steps.
func (m *Machine) SetOptions(opts Options) {
	m.opts = opts.withDefaults()
	m.coarse.cellSize = m.opts.CellSize
	if m.fine != nil {
		m.fine.setMovement(m.opts)
	}
}

func (m *Machine) Options() Options {
	return m.opts
}

func (m *Machine) Level() Level {
	if m.fine != nil {
		return LevelFine
	}
	return LevelCoarse
}

// Done reports whether the session has ended.
func (m *Machine) Done() bool {
	return m.done
}

// Pending returns the first key of an incomplete coarse combo, or "".
func (m *Machine) Pending() string {
	if m.fine != nil {
		return ""
	}
	return m.coarse.Pending().String()
}

// Grid returns the active level's geometry as of the last frame.
func (m *Machine) Grid() Grid {
	if m.fine != nil {
		return m.fine.Grid()
	}
	return m.coarse.Grid()
}

// Cells returns the active level's labelled cells as of the last frame. The
// slice is reused by the next call to Advance.
func (m *Machine) Cells() []Cell {
	if m.fine != nil {
		return m.fine.Cells()
	}
	return m.coarse.Cells()
}

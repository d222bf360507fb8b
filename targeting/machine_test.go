package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineFullSession(t *testing.T) {
	m := NewMachine(DefaultOptions())
	require.Equal(t, LevelCoarse, m.Level())

	cmd := m.Advance(frame(square2x2))
	assert.Equal(t, CommandAwait, cmd.Kind)
	assert.Len(t, m.Cells(), 4)

	cmd = m.Advance(frame(square2x2, KeyB))
	assert.Equal(t, CommandAwait, cmd.Kind)
	assert.Equal(t, "B", m.Pending())

	cmd = m.Advance(frame(square2x2, KeyA))
	require.Equal(t, CommandWarpPointer, cmd.Kind)
	assert.Equal(t, Point{X: 40, Y: 120}, cmd.Position)
	assert.Equal(t, LevelFine, m.Level())
	assert.Equal(t, "", m.Pending())
	assert.False(t, m.Done())

	// Fine cells are available immediately for the same frame's paint.
	cells := m.Cells()
	require.Len(t, cells, 9)
	center := cells[4].Rect.Center()
	assert.InDelta(t, 40, center.X, 1e-9)
	assert.InDelta(t, 120, center.Y, 1e-9)

	cmd = m.Advance(frame(square2x2, Key1))
	require.Equal(t, CommandMoveAndClick, cmd.Kind)
	assert.InDelta(t, 40-80.0/3, cmd.Position.X, 1e-9)
	assert.InDelta(t, 120-80.0/3, cmd.Position.Y, 1e-9)
	assert.True(t, m.Done())

	// Nothing more comes out once done.
	cmd = m.Advance(frame(square2x2, Key5))
	assert.Equal(t, CommandAwait, cmd.Kind)
}

func TestMachineClick(t *testing.T) {
	m := NewMachine(DefaultOptions())
	m.Advance(frame(square2x2, KeyA))
	m.Advance(frame(square2x2, KeyA))
	require.Equal(t, LevelFine, m.Level())

	cmd := m.Advance(frame(square2x2, ClickKey))
	assert.Equal(t, CommandClick, cmd.Kind)
	assert.True(t, m.Done())
}

func TestMachineMoveIsContinuous(t *testing.T) {
	m := NewMachine(DefaultOptions())
	m.Advance(frame(square2x2, KeyA))
	m.Advance(frame(square2x2, KeyB))
	require.Equal(t, LevelFine, m.Level())

	for i := 0; i < 3; i++ {
		cmd := m.Advance(held(square2x2, false, KeyArrowLeft, KeyArrowUp))
		require.Equal(t, CommandMove, cmd.Kind)
		assert.Equal(t, DirectionUpLeft, cmd.Direction)
		assert.Equal(t, Point{X: -DefaultMoveStep, Y: -DefaultMoveStep}, cmd.Delta)
	}
	assert.False(t, m.Done())
}

func TestMachineCancel(t *testing.T) {
	t.Run("coarse", func(t *testing.T) {
		m := NewMachine(DefaultOptions())
		m.Advance(frame(square2x2, KeyB))

		// Cancel wins over a letter that would complete the combo.
		cmd := m.Advance(frame(square2x2, CancelKey, KeyA))
		assert.Equal(t, CommandTerminate, cmd.Kind)
		assert.True(t, m.Done())
		assert.Equal(t, LevelCoarse, m.Level())
		assert.Equal(t, "", m.Pending())

		assert.Equal(t, CommandAwait, m.Advance(frame(square2x2, KeyA)).Kind)
	})

	t.Run("fine", func(t *testing.T) {
		m := NewMachine(DefaultOptions())
		m.Advance(frame(square2x2, KeyB))
		m.Advance(frame(square2x2, KeyB))
		require.Equal(t, LevelFine, m.Level())

		// Cancel wins over a digit in the same frame.
		cmd := m.Advance(frame(square2x2, CancelKey, Key5))
		assert.Equal(t, CommandTerminate, cmd.Kind)
		assert.True(t, m.Done())
	})
}

func TestMachineTypoDoesNotLeaveCoarse(t *testing.T) {
	m := NewMachine(DefaultOptions())
	m.Advance(frame(square2x2, KeyZ))
	cmd := m.Advance(frame(square2x2, KeyZ))
	assert.Equal(t, CommandAwait, cmd.Kind)
	assert.Equal(t, LevelCoarse, m.Level())
	assert.Equal(t, "", m.Pending())
}

func TestMachineSetOptions(t *testing.T) {
	m := NewMachine(DefaultOptions())
	m.Advance(frame(square2x2))
	require.Equal(t, 2, m.Grid().Cols)

	m.SetOptions(Options{CellSize: 40, MoveStep: 3, FastMultiplier: 4})
	m.Advance(frame(square2x2))
	assert.Equal(t, 4, m.Grid().Cols)
	assert.Equal(t, 4, m.Grid().Rows)

	m.Advance(frame(square2x2, KeyA))
	m.Advance(frame(square2x2, KeyA))
	require.Equal(t, LevelFine, m.Level())

	cmd := m.Advance(held(square2x2, true, KeyArrowRight))
	require.Equal(t, CommandMove, cmd.Kind)
	assert.Equal(t, Point{X: 12, Y: 0}, cmd.Delta)
}

func TestMachineZeroOptionsUseDefaults(t *testing.T) {
	m := NewMachine(Options{})
	assert.Equal(t, DefaultOptions(), m.Options())
}

func TestMachineLevelFollowsResolvedCell(t *testing.T) {
	m := NewMachine(DefaultOptions())
	m.Advance(frame(square2x2, KeyZ))
	assert.Equal(t, LevelCoarse, m.Level())
	assert.Len(t, m.Cells(), 4)

	m.Advance(frame(square2x2, KeyZ))
	assert.Equal(t, LevelCoarse, m.Level())

	m.Advance(frame(square2x2, KeyB))
	m.Advance(frame(square2x2, KeyB))
	assert.Equal(t, LevelFine, m.Level())
	assert.Len(t, m.Cells(), 9)
}

func TestMachineComboKeyHeldIntoFineDoesNotMove(t *testing.T) {
	screen := Size{W: 1920, H: 1080}
	m := NewMachine(DefaultOptions())
	m.Advance(frame(screen, KeyA))
	cmd := m.Advance(frame(screen, KeyH))
	require.Equal(t, CommandWarpPointer, cmd.Kind)
	require.Equal(t, LevelFine, m.Level())

	for i := 0; i < 3; i++ {
		cmd = m.Advance(held(screen, false, KeyH))
		assert.Equal(t, CommandAwait, cmd.Kind, "frame %d", i)
	}

	// Other direction keys are live while H stays down.
	cmd = m.Advance(held(screen, false, KeyH, KeyJ))
	require.Equal(t, CommandMove, cmd.Kind)
	assert.Equal(t, DirectionDown, cmd.Direction)

	// Once released, H moves again.
	assert.Equal(t, CommandAwait, m.Advance(held(screen, false)).Kind)
	cmd = m.Advance(held(screen, false, KeyH))
	require.Equal(t, CommandMove, cmd.Kind)
	assert.Equal(t, DirectionLeft, cmd.Direction)
}

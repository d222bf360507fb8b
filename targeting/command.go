package targeting

import "fmt"

// CommandKind tags a Command.
type CommandKind int

const (
	// CommandAwait means nothing to do this frame.
	CommandAwait CommandKind = iota
	// CommandEnterFine is produced by the coarse level when a combo
	// resolves. The machine consumes it and hands the host a warp instead.
	CommandEnterFine
	// CommandWarpPointer moves the pointer to Position.
	CommandWarpPointer
	// CommandMove displaces the pointer by Delta.
	CommandMove
	// CommandClick clicks at the current pointer location. Terminal.
	CommandClick
	// CommandMoveAndClick warps to Position, then clicks. Terminal.
	CommandMoveAndClick
	// CommandTerminate ends the session without touching the pointer.
	CommandTerminate
)

var commandNames = [...]string{
	CommandAwait:        "await",
	CommandEnterFine:    "enter-fine",
	CommandWarpPointer:  "warp-pointer",
	CommandMove:         "move",
	CommandClick:        "click",
	CommandMoveAndClick: "move-and-click",
	CommandTerminate:    "terminate",
}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[k]
}

// Command is what one frame of input resolved to. Only the fields relevant
// to Kind are set.
type Command struct {
	Kind CommandKind

	// Position is set for EnterFine, WarpPointer and MoveAndClick.
	Position Point
	// CellSize is set for EnterFine.
	CellSize Size

	// Direction, Speed and Delta are set for Move.
	Direction Direction
	Speed     Speed
	Delta     Point
}

// Terminal reports whether the command ends the session.
func (c Command) Terminal() bool {
	switch c.Kind {
	case CommandClick, CommandMoveAndClick, CommandTerminate:
		return true
	}
	return false
}

func (c Command) String() string {
	switch c.Kind {
	case CommandEnterFine:
		return fmt.Sprintf("%s(%.1f,%.1f %.1fx%.1f)", c.Kind, c.Position.X, c.Position.Y, c.CellSize.W, c.CellSize.H)
	case CommandWarpPointer, CommandMoveAndClick:
		return fmt.Sprintf("%s(%.1f,%.1f)", c.Kind, c.Position.X, c.Position.Y)
	case CommandMove:
		return fmt.Sprintf("%s(%s,%s)", c.Kind, c.Direction, c.Speed)
	}
	return c.Kind.String()
}

func await() Command {
	return Command{Kind: CommandAwait}
}

package game

import "fmt"

// Command is what a single key press asks the game to do.
type Command int

const (
	CommandUnknown Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandFullScreen
	CommandExit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandMoveUp:
		return "move_up"
	case CommandMoveDown:
		return "move_down"
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandFullScreen:
		return "fullscreen"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// IsMove returns true for the four directional commands.
func (c Command) IsMove() bool {
	switch c {
	case CommandMoveUp, CommandMoveDown, CommandMoveLeft, CommandMoveRight:
		return true
	default:
		return false
	}
}

// Delta returns the unit step of a directional command.
// It panics for any other command.
func (c Command) Delta() (dx, dy int) {
	switch c {
	case CommandMoveUp:
		return 0, -1
	case CommandMoveDown:
		return 0, 1
	case CommandMoveLeft:
		return -1, 0
	case CommandMoveRight:
		return 1, 0
	default:
		panic(fmt.Sprintf("game: %s is not a movement command", c))
	}
}

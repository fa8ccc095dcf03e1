package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonwalk/internal/ui"
)

// Translate maps a key press to a command. No state is kept between keys.
// With viKeys set, h/j/k/l move left/down/up/right alongside the arrows.
func Translate(key ui.Key, viKeys bool) Command {
	switch key.Code {
	case tcell.KeyUp:
		return CommandMoveUp
	case tcell.KeyDown:
		return CommandMoveDown
	case tcell.KeyLeft:
		return CommandMoveLeft
	case tcell.KeyRight:
		return CommandMoveRight
	case tcell.KeyEnter:
		if key.Alt() {
			return CommandFullScreen
		}
	case tcell.KeyEscape:
		return CommandExit
	case tcell.KeyRune:
		if viKeys {
			return translateVi(key.Char)
		}
	}
	return CommandUnknown
}

func translateVi(r rune) Command {
	switch r {
	case 'h':
		return CommandMoveLeft
	case 'j':
		return CommandMoveDown
	case 'k':
		return CommandMoveUp
	case 'l':
		return CommandMoveRight
	default:
		return CommandUnknown
	}
}

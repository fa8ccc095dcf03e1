package ui

import "github.com/gdamore/tcell/v2"

// Key is a single key press read from the window.
type Key struct {
	Code tcell.Key     // tcell.KeyRune for printable characters
	Mod  tcell.ModMask // Modifier flags held during the press
	Char rune          // Printable character when Code is tcell.KeyRune
}

// Alt returns true if the Alt modifier was held.
func (k Key) Alt() bool {
	return k.Mod&tcell.ModAlt != 0
}

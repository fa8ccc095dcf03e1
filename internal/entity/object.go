// Package entity provides the things drawn on top of the map.
package entity

import "github.com/gdamore/tcell/v2"

// Console is the drawing surface objects paint themselves onto.
type Console interface {
	PutChar(x, y int, r rune, fg tcell.Color)
	SetChar(x, y int, r rune)
}

// Object is a glyph at a map position: the player or any other actor.
// Objects are values; moving one produces a new Object.
type Object struct {
	X, Y  int         // Current position on the map
	Glyph rune        // Display character
	Color tcell.Color // Foreground color of the glyph
}

// New creates an object at the given position.
func New(x, y int, glyph rune, color tcell.Color) Object {
	return Object{
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// MoveBy returns a copy of the object shifted by the given delta.
// Bounds and collision are the caller's concern.
func (o Object) MoveBy(dx, dy int) Object {
	o.X += dx
	o.Y += dy
	return o
}

// Position returns the current x, y coordinates.
func (o Object) Position() (int, int) {
	return o.X, o.Y
}

// Draw paints the glyph in the object's color.
func (o Object) Draw(con Console) {
	con.PutChar(o.X, o.Y, o.Glyph, o.Color)
}

// Clear blanks the object's cell, leaving the background alone.
func (o Object) Clear(con Console) {
	con.SetChar(o.X, o.Y, ' ')
}

package ui

import "github.com/gdamore/tcell/v2"

// Cell is one character position of an off-screen buffer.
type Cell struct {
	Char rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Buffer is an off-screen drawing surface that is blitted to a Screen.
// Writes outside the buffer are silently ignored.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a blank buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i] = Cell{Char: ' ', Fg: tcell.ColorWhite, Bg: tcell.ColorBlack}
	}
	return b
}

// Width returns the buffer width in characters.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in characters.
func (b *Buffer) Height() int {
	return b.height
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// PutChar places a character with the given foreground color.
func (b *Buffer) PutChar(x, y int, r rune, fg tcell.Color) {
	if i, ok := b.index(x, y); ok {
		b.cells[i].Char = r
		b.cells[i].Fg = fg
	}
}

// SetChar replaces the character and keeps both colors.
func (b *Buffer) SetChar(x, y int, r rune) {
	if i, ok := b.index(x, y); ok {
		b.cells[i].Char = r
	}
}

// SetBackground sets the background color of a cell.
func (b *Buffer) SetBackground(x, y int, bg tcell.Color) {
	if i, ok := b.index(x, y); ok {
		b.cells[i].Bg = bg
	}
}

// Cell returns the contents of a cell. Out-of-bounds reads return the zero Cell.
func (b *Buffer) Cell(x, y int) Cell {
	if i, ok := b.index(x, y); ok {
		return b.cells[i]
	}
	return Cell{}
}

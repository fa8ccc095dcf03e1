// Package ui provides the terminal window and off-screen buffer using tcell.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps tcell.Screen as a fixed-size character window.
type Screen struct {
	screen     tcell.Screen
	width      int
	height     int
	fullscreen bool
	closed     bool
	finalized  bool
	frame      time.Duration
	lastFlush  time.Time
}

// NewScreen creates and initializes a terminal window of the given console size.
// Flush never presents more than fps frames per second; fps <= 0 disables the limit.
func NewScreen(width, height int, title string, fps int) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return NewScreenFrom(s, width, height, title, fps), nil
}

// NewScreenFrom wraps an already initialized tcell.Screen.
func NewScreenFrom(s tcell.Screen, width, height int, title string, fps int) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	if t, ok := s.(interface{ SetTitle(string) }); ok {
		t.SetTitle(title)
	}
	s.Clear()

	var frame time.Duration
	if fps > 0 {
		frame = time.Second / time.Duration(fps)
	}

	return &Screen{
		screen: s,
		width:  width,
		height: height,
		frame:  frame,
	}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.closed = true
	if s.finalized {
		return
	}
	s.finalized = true
	s.screen.Fini()
}

// Closed returns true once the window has been closed.
func (s *Screen) Closed() bool {
	return s.closed
}

// Blit copies the buffer onto the screen. Nothing is visible until Flush.
func (s *Screen) Blit(buf *Buffer) {
	ox, oy := s.origin(buf)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.Cell(x, y)
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
			s.screen.SetContent(ox+x, oy+y, c.Char, nil, style)
		}
	}
}

// origin returns where the buffer's top-left corner lands on the terminal.
func (s *Screen) origin(buf *Buffer) (int, int) {
	if !s.fullscreen {
		return 0, 0
	}
	tw, th := s.screen.Size()
	return max(0, (tw-buf.Width())/2), max(0, (th-buf.Height())/2)
}

// Flush presents the blitted content, holding to the frame rate limit.
func (s *Screen) Flush() {
	if s.frame > 0 && !s.lastFlush.IsZero() {
		if wait := s.frame - time.Since(s.lastFlush); wait > 0 {
			time.Sleep(wait)
		}
	}
	s.screen.Show()
	s.lastFlush = time.Now()
}

// WaitForKeypress blocks until a key is pressed.
// It returns false once the window is closed; Ctrl+C closes the window.
// Resize events are handled here and never returned.
func (s *Screen) WaitForKeypress() (Key, bool) {
	for !s.closed {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			s.closed = true
		case *tcell.EventKey:
			if isInterrupt(ev) {
				s.closed = true
				continue
			}
			return Key{Code: ev.Key(), Mod: ev.Modifiers(), Char: ev.Rune()}, true
		case *tcell.EventResize:
			// The centered origin moves with the terminal size
			if s.fullscreen {
				s.screen.Clear()
			}
			s.screen.Sync()
		}
	}
	return Key{}, false
}

// SetFullscreen switches between centered and top-left placement.
// It returns the new mode.
func (s *Screen) SetFullscreen(on bool) bool {
	if s.fullscreen != on {
		s.fullscreen = on
		s.screen.Clear()
	}
	return s.fullscreen
}

// IsFullscreen returns true if the buffer is centered on the terminal.
func (s *Screen) IsFullscreen() bool {
	return s.fullscreen
}

// Size returns the console dimensions the window was created with.
// The game sizes its off-screen buffer from it.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// isInterrupt reports a Ctrl+C press, which closes the window.
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
}

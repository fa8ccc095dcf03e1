// Package game provides the main loop, input handling and game state.
package game

// LoopState represents whether the main loop keeps going.
type LoopState int

const (
	// LoopRunning draws a frame and waits for the next key.
	LoopRunning LoopState = iota
	// LoopExiting stops the loop after the current iteration.
	LoopExiting
)

// String returns a human-readable state name.
func (s LoopState) String() string {
	switch s {
	case LoopRunning:
		return "running"
	case LoopExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

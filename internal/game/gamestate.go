package game

import (
	"github.com/samdwyer/dungeonwalk/internal/config"
	"github.com/samdwyer/dungeonwalk/internal/entity"
	"github.com/samdwyer/dungeonwalk/internal/ui"
	"github.com/samdwyer/dungeonwalk/internal/world"
)

// GameState is everything drawn in a frame. It is replaced, not mutated,
// when the player moves.
type GameState struct {
	Player  entity.Object
	Objects []entity.Object
	Map     *world.Map
}

// NewState creates a game state.
func NewState(player entity.Object, objects []entity.Object, m *world.Map) GameState {
	return GameState{
		Player:  player,
		Objects: objects,
		Map:     m,
	}
}

// WithPlayer returns a copy of the state with a different player.
func (s GameState) WithPlayer(player entity.Object) GameState {
	return NewState(player, s.Objects, s.Map)
}

// Render draws the player, then the objects in order, then every tile background.
// Later objects cover earlier ones on the same cell.
func (s GameState) Render(buf *ui.Buffer, palette config.Palette) {
	s.Player.Draw(buf)
	for _, o := range s.Objects {
		o.Draw(buf)
	}

	for y := 0; y < s.Map.Height; y++ {
		for x := 0; x < s.Map.Width; x++ {
			if s.Map.At(x, y).IsWall() {
				buf.SetBackground(x, y, palette.DarkWall)
			} else {
				buf.SetBackground(x, y, palette.DarkGround)
			}
		}
	}
}

// Clear blanks the cells drawn by Render. Backgrounds are left for the next Render.
func (s GameState) Clear(buf *ui.Buffer) {
	s.Player.Clear(buf)
	for _, o := range s.Objects {
		o.Clear(buf)
	}
}

package game

import (
	"github.com/samdwyer/dungeonwalk/internal/entity"
	"github.com/samdwyer/dungeonwalk/internal/world"
)

// CanMove returns true if obj may step by (dx, dy). Off-map targets count as blocked.
func CanMove(obj entity.Object, m *world.Map, dx, dy int) bool {
	return !m.IsBlocked(obj.X+dx, obj.Y+dy)
}

// HandleInput returns the player after applying a directional command.
// A rejected move returns the player unchanged. Passing any other command panics.
func HandleInput(cmd Command, player entity.Object, m *world.Map) entity.Object {
	dx, dy := cmd.Delta()
	if !CanMove(player, m, dx, dy) {
		return player
	}
	return player.MoveBy(dx, dy)
}

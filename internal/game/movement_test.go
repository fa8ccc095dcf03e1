package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonwalk/internal/entity"
	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/world"
)

var moves = []Command{CommandMoveUp, CommandMoveDown, CommandMoveLeft, CommandMoveRight}

func buildLayout(t *testing.T, id string) *world.Map {
	t.Helper()
	registry, err := gamedata.LoadLayoutRegistry()
	require.NoError(t, err)
	layout, err := registry.Get(id)
	require.NoError(t, err)
	m, err := world.Build(context.Background(), world.DefaultWidth, world.DefaultHeight, layout)
	require.NoError(t, err)
	return m
}

func TestCommandDelta(t *testing.T) {
	tests := []struct {
		cmd    Command
		dx, dy int
	}{
		{CommandMoveUp, 0, -1},
		{CommandMoveDown, 0, 1},
		{CommandMoveLeft, -1, 0},
		{CommandMoveRight, 1, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.cmd.Delta()
		assert.Equal(t, [2]int{tt.dx, tt.dy}, [2]int{dx, dy}, tt.cmd.String())
		assert.True(t, tt.cmd.IsMove())
	}

	for _, cmd := range []Command{CommandFullScreen, CommandExit, CommandUnknown} {
		assert.False(t, cmd.IsMove())
		assert.Panics(t, func() { cmd.Delta() }, cmd.String())
	}
}

func TestCanMoveInsideRoomInterior(t *testing.T) {
	m := buildLayout(t, "rooms")
	room := m.Rooms[0]

	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			obj := entity.New(x, y, '@', tcell.ColorWhite)
			for _, cmd := range moves {
				dx, dy := cmd.Delta()
				if room.Contains(x+dx, y+dy) {
					assert.True(t, CanMove(obj, m, dx, dy), "(%d,%d) %s", x, y, cmd)
				}
			}
		}
	}
}

func TestCanMoveRejectsRoomBoundary(t *testing.T) {
	m := buildLayout(t, "rooms")
	room := m.Rooms[0]

	for y := room.Y1 + 1; y < room.Y2; y++ {
		assert.False(t, CanMove(entity.New(room.X1+1, y, '@', 0), m, -1, 0))
		assert.False(t, CanMove(entity.New(room.X2-1, y, '@', 0), m, 1, 0))
	}
	for x := room.X1 + 1; x < room.X2; x++ {
		assert.False(t, CanMove(entity.New(x, room.Y1+1, '@', 0), m, 0, -1))
		assert.False(t, CanMove(entity.New(x, room.Y2-1, '@', 0), m, 0, 1))
	}
}

func TestCanMoveRejectsGridEdge(t *testing.T) {
	m := world.NewMap(world.DefaultWidth, world.DefaultHeight, world.Empty())
	w, h := m.Width, m.Height

	for x := 0; x < w; x++ {
		assert.False(t, CanMove(entity.New(x, 0, '@', 0), m, 0, -1))
		assert.False(t, CanMove(entity.New(x, h-1, '@', 0), m, 0, 1))
	}
	for y := 0; y < h; y++ {
		assert.False(t, CanMove(entity.New(0, y, '@', 0), m, -1, 0))
		assert.False(t, CanMove(entity.New(w-1, y, '@', 0), m, 1, 0))
	}
}

func TestHandleInput(t *testing.T) {
	m := buildLayout(t, "open")
	player := entity.New(29, 22, '@', tcell.ColorWhite)

	// (30,22) is a wall override
	blocked := HandleInput(CommandMoveRight, player, m)
	assert.Equal(t, player, blocked)

	for _, cmd := range moves[:3] {
		dx, dy := cmd.Delta()
		moved := HandleInput(cmd, player, m)
		assert.Equal(t, entity.New(29+dx, 22+dy, '@', tcell.ColorWhite), moved, cmd.String())
	}

	assert.Panics(t, func() { HandleInput(CommandExit, player, m) })
}

func TestWalkToRoomEdge(t *testing.T) {
	m := buildLayout(t, "rooms")
	player := entity.New(21, 16, '@', tcell.ColorWhite)

	player = HandleInput(CommandMoveRight, player, m)
	require.Equal(t, [2]int{22, 16}, [2]int{player.X, player.Y})

	for i := 0; i < 7; i++ {
		player = HandleInput(CommandMoveRight, player, m)
	}
	require.Equal(t, [2]int{29, 16}, [2]int{player.X, player.Y})

	again := HandleInput(CommandMoveRight, player, m)
	assert.Equal(t, player, again, "(30,16) is wall")
}

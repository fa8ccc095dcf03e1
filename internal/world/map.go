package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

var (
	// ErrUnknownFill is returned when a layout names a fill other than wall or empty.
	ErrUnknownFill = errors.New("unknown layout fill")
	// ErrUnknownAxis is returned when a tunnel is neither horizontal nor vertical.
	ErrUnknownAxis = errors.New("unknown tunnel axis")
	// ErrOutOfBounds is returned when a layout element falls outside the map.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrBlockedSpawn is returned when the spawn point is a blocked tile.
	ErrBlockedSpawn = errors.New("spawn point is blocked")
)

// Map represents the tile grid. Tiles are indexed [y][x].
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Rect
}

// NewMap creates a map with every tile set to fill.
func NewMap(width, height int, fill Tile) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}

	return &Map{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Rect, 0),
	}
}

// InBounds returns true if the position lies on the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at the given position. Off-grid positions read as wall.
func (m *Map) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return Wall()
	}
	return m.Tiles[y][x]
}

// Set replaces the tile at the given position. Off-grid positions are ignored.
func (m *Map) Set(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.Tiles[y][x] = t
}

// IsBlocked returns true if nothing can move onto the position.
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].Blocked
}

// Equal reports whether both maps have the same size and tiles.
func (m *Map) Equal(other *Map) bool {
	if other == nil || m.Width != other.Width || m.Height != other.Height {
		return false
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] != other.Tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// CarveRoom empties every tile inside the rectangle's border.
// The border itself stays wall.
func (m *Map) CarveRoom(r Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			m.Set(x, y, Empty())
		}
	}
	m.Rooms = append(m.Rooms, r)
}

// CarveHorizontalTunnel empties row y from x1 to x2 inclusive.
func (m *Map) CarveHorizontalTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.Set(x, y, Empty())
	}
}

// CarveVerticalTunnel empties column x from y1 to y2 inclusive.
func (m *Map) CarveVerticalTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.Set(x, y, Empty())
	}
}

// Build creates a map of the given size from a layout definition.
// The same layout always produces the same grid.
func Build(ctx context.Context, width, height int, layout gamedata.LayoutDef) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.build")
	defer span.End()

	startTime := time.Now()

	fail := func(err error) (*Map, error) {
		span.RecordError(err)
		return nil, err
	}

	var m *Map
	switch layout.Fill {
	case gamedata.FillWall:
		m = NewMap(width, height, Wall())
	case gamedata.FillEmpty:
		m = NewMap(width, height, Empty())
	default:
		return fail(fmt.Errorf("layout %s: %w: %q", layout.ID, ErrUnknownFill, layout.Fill))
	}

	for _, rd := range layout.Rooms {
		r := NewRect(rd.X, rd.Y, rd.W, rd.H)
		if rd.W <= 0 || rd.H <= 0 || r.X1 < 0 || r.Y1 < 0 || r.X2 > width || r.Y2 > height {
			return fail(fmt.Errorf("layout %s: room (%d,%d,%d,%d): %w", layout.ID, rd.X, rd.Y, rd.W, rd.H, ErrOutOfBounds))
		}
		m.CarveRoom(r)
	}

	for _, td := range layout.Tunnels {
		if err := m.carveTunnel(td); err != nil {
			return fail(fmt.Errorf("layout %s: %w", layout.ID, err))
		}
	}

	for _, p := range layout.Walls {
		if !m.InBounds(p.X, p.Y) {
			return fail(fmt.Errorf("layout %s: wall (%d,%d): %w", layout.ID, p.X, p.Y, ErrOutOfBounds))
		}
		m.Set(p.X, p.Y, Wall())
	}

	span.SetAttributes(
		attribute.String("map.layout", layout.ID),
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int("map.room_count", len(layout.Rooms)),
		attribute.Int("map.tunnel_count", len(layout.Tunnels)),
		attribute.Int("map.wall_count", len(layout.Walls)),
		attribute.Int64("map.build_us", time.Since(startTime).Microseconds()),
	)

	return m, nil
}

// carveTunnel carves a single tunnel definition after checking its endpoints.
func (m *Map) carveTunnel(td gamedata.TunnelDef) error {
	switch td.Axis {
	case gamedata.AxisHorizontal:
		if !m.InBounds(td.From, td.At) || !m.InBounds(td.To, td.At) {
			return fmt.Errorf("tunnel %d..%d at y=%d: %w", td.From, td.To, td.At, ErrOutOfBounds)
		}
		m.CarveHorizontalTunnel(td.From, td.To, td.At)
	case gamedata.AxisVertical:
		if !m.InBounds(td.At, td.From) || !m.InBounds(td.At, td.To) {
			return fmt.Errorf("tunnel %d..%d at x=%d: %w", td.From, td.To, td.At, ErrOutOfBounds)
		}
		m.CarveVerticalTunnel(td.From, td.To, td.At)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAxis, td.Axis)
	}
	return nil
}

// SpawnPoint returns where the player starts on a map built from layout.
// An explicit spawn wins, then the first room's interior origin, then the map center.
func SpawnPoint(m *Map, layout gamedata.LayoutDef) (int, int, error) {
	var x, y int
	switch {
	case layout.Spawn != nil:
		x, y = layout.Spawn.X, layout.Spawn.Y
	case len(m.Rooms) > 0:
		x, y = m.Rooms[0].Interior()
	default:
		x, y = m.Width/2, m.Height/2
	}

	if !m.InBounds(x, y) {
		return 0, 0, fmt.Errorf("spawn (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	if m.IsBlocked(x, y) {
		return 0, 0, fmt.Errorf("spawn (%d,%d): %w", x, y, ErrBlockedSpawn)
	}
	return x, y, nil
}

// Package world provides the tile grid and map building.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked    bool // Nothing can move onto the tile
	BlockSight bool // Drawn with the wall background
}

// Wall returns an impassable, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// Empty returns a passable, transparent floor tile.
func Empty() Tile {
	return Tile{}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// IsWall returns true if the tile is drawn as a wall.
func (t Tile) IsWall() bool {
	return t.BlockSight
}

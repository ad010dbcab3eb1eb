// Package world provides terrain grids and the scene catalogue.
package world

// Tile represents a single terrain code on a scene grid.
type Tile int

const (
	// TileGrass is open grassland.
	TileGrass Tile = 0
	// TileDirt is a dirt road.
	TileDirt Tile = 1
	// TileStone is an impassable boulder.
	TileStone Tile = 2
	// TileFlower is a decorative flower bed; it blocks movement.
	TileFlower Tile = 3
	// TileRiver is impassable water.
	TileRiver Tile = 4
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileGrass || t == TileDirt
}

// Valid reports whether t is a known terrain code.
func (t Tile) Valid() bool {
	return t >= TileGrass && t <= TileRiver
}

// String returns the terrain name.
func (t Tile) String() string {
	switch t {
	case TileGrass:
		return "grass"
	case TileDirt:
		return "dirt"
	case TileStone:
		return "stone"
	case TileFlower:
		return "flower"
	case TileRiver:
		return "river"
	default:
		return "unknown"
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileGrass:
		return '.'
	case TileDirt:
		return ':'
	case TileStone:
		return 'o'
	case TileFlower:
		return '*'
	case TileRiver:
		return '~'
	default:
		return '?'
	}
}

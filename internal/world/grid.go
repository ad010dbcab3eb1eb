package world

import (
	"errors"
	"fmt"
)

// Grid is a static rectangular terrain map. It is loaded once and never
// mutated afterwards.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGrid builds a grid from terrain rows (row-major, y then x).
// Rows must be non-empty, rectangular, and contain only known terrain codes.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("terrain grid is empty")
	}

	width := len(rows[0])
	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("terrain row %d has %d cells, want %d", y, len(row), width)
		}
		tiles[y] = make([]Tile, width)
		for x, code := range row {
			tile := Tile(code)
			if !tile.Valid() {
				return nil, fmt.Errorf("unknown terrain code %d at (%d,%d)", code, x, y)
			}
			tiles[y][x] = tile
		}
	}

	return &Grid{
		Width:  width,
		Height: len(rows),
		Tiles:  tiles,
	}, nil
}

// InBounds returns true if the position lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Tiles[y][x].IsPassable()
}

// GetTile returns the tile at the given position.
// Out-of-bounds positions report TileStone.
func (g *Grid) GetTile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileStone
	}
	return g.Tiles[y][x]
}

// EdgesPassable returns an error naming the first blocked cell on the left
// or right edge column. Scene entry places the player on these columns.
func (g *Grid) EdgesPassable() error {
	for y := 0; y < g.Height; y++ {
		if !g.IsPassable(0, y) {
			return fmt.Errorf("left edge blocked at row %d (%s)", y, g.Tiles[y][0])
		}
		if !g.IsPassable(g.Width-1, y) {
			return fmt.Errorf("right edge blocked at row %d (%s)", y, g.Tiles[y][g.Width-1])
		}
	}
	return nil
}

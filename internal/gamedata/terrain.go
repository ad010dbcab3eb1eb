package gamedata

import (
	"fmt"

	"github.com/samdwyer/campusquest/internal/world"
)

// TerrainFile represents the structure of a terrain map file.
type TerrainFile struct {
	Name string  `json:"name"`
	Rows [][]int `json:"rows"`
}

// LoadFieldGrid loads the field scene terrain from the embedded field.json.
func LoadFieldGrid() (*world.Grid, error) {
	return LoadGrid("field.json")
}

// LoadGrid loads and validates a terrain grid from an embedded file.
// Both edge columns must be walkable because scene entry lands there.
func LoadGrid(filename string) (*world.Grid, error) {
	file, err := Load[TerrainFile](filename)
	if err != nil {
		return nil, err
	}
	return buildGrid(filename, file)
}

func buildGrid(filename string, file TerrainFile) (*world.Grid, error) {
	grid, err := world.NewGrid(file.Rows)
	if err != nil {
		return nil, fmt.Errorf("terrain %s: %w", filename, err)
	}
	if err := grid.EdgesPassable(); err != nil {
		return nil, fmt.Errorf("terrain %s: %w", filename, err)
	}
	return grid, nil
}

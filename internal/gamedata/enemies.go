package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "assignment")
	Name   string `json:"name"`   // Display name (e.g., "Assignment")
	Glyph  string `json:"glyph"`  // Single character for rendering (e.g., "A")
	Color  string `json:"color"`  // Hex color code (e.g., "#3366FF")
	HP     int    `json:"hp"`     // Base hit points
	Attack int    `json:"attack"` // Base attack power
	XP     int    `json:"xp"`     // Experience awarded when evicted
	Boss   bool   `json:"boss"`   // Defeating it ends the game
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

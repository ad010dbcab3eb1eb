package world

// Scene identifies one of the ordered exploration areas.
type Scene int

const (
	// SceneVillage is the starting village. It has no encounters.
	SceneVillage Scene = iota
	// SceneField is the open field where random encounters happen.
	SceneField
	// SceneCampus is the final area; the boss waits deep inside.
	SceneCampus
)

// FirstScene and LastScene bound the scene sequence.
const (
	FirstScene = SceneVillage
	LastScene  = SceneCampus
)

// String returns a human-readable scene name.
func (s Scene) String() string {
	switch s {
	case SceneVillage:
		return "village"
	case SceneField:
		return "field"
	case SceneCampus:
		return "campus"
	default:
		return "unknown"
	}
}

// Title returns the display title for the scene.
func (s Scene) Title() string {
	switch s {
	case SceneVillage:
		return "Village"
	case SceneField:
		return "Field"
	case SceneCampus:
		return "Campus"
	default:
		return "???"
	}
}

// Layout describes a scene's extent and optional terrain.
// A nil Grid means every cell inside the extent is walkable.
type Layout struct {
	Scene  Scene
	Width  int
	Height int
	Grid   *Grid
}

// IsPassable returns true if (x, y) is inside the layout and walkable.
func (l Layout) IsPassable(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	if l.Grid == nil {
		return true
	}
	return l.Grid.IsPassable(x, y)
}

// Atlas holds the layout of every scene, indexed by Scene.
type Atlas struct {
	layouts [LastScene + 1]Layout
}

// NewAtlas creates an atlas from the given layouts. Missing scenes keep a
// zero layout.
func NewAtlas(layouts ...Layout) *Atlas {
	a := &Atlas{}
	for _, l := range layouts {
		if l.Scene >= FirstScene && l.Scene <= LastScene {
			a.layouts[l.Scene] = l
		}
	}
	return a
}

// Layout returns the layout of the given scene.
func (a *Atlas) Layout(s Scene) Layout {
	if s < FirstScene || s > LastScene {
		return Layout{Scene: s}
	}
	return a.layouts[s]
}

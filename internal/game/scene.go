package game

import "github.com/samdwyer/campusquest/internal/world"

// Step is the outcome of one movement attempt.
type Step struct {
	Scene   world.Scene
	X, Y    int
	Moved   bool // position or scene changed
	Changed bool // crossed into another scene
	Boss    bool // landed beyond the boss threshold in the last scene
}

// Navigator applies the scene transition rules. It is the only code that
// decides scene changes.
type Navigator struct {
	atlas         *world.Atlas
	bossThreshold int
}

// NewNavigator creates a navigator over the given atlas.
func NewNavigator(atlas *world.Atlas, bossThreshold int) *Navigator {
	return &Navigator{atlas: atlas, bossThreshold: bossThreshold}
}

// Step moves from (x, y) in scene by (dx, dy).
//
// Crossing the right edge advances to the next scene at its left edge, or
// clamps in the last scene. Crossing the left edge retreats to the previous
// scene at its right edge, or clamps in the first. Vertical movement is
// clamped and never changes scene. A destination blocked by terrain leaves
// the player in place.
func (n *Navigator) Step(scene world.Scene, x, y, dx, dy int) Step {
	layout := n.atlas.Layout(scene)
	nx, ny := x+dx, clamp(y+dy, 0, layout.Height-1)
	next := scene

	switch {
	case nx >= layout.Width:
		if scene < world.LastScene {
			next = scene + 1
			nx = 0
		} else {
			nx = layout.Width - 1
		}
	case nx < 0:
		if scene > world.FirstScene {
			next = scene - 1
			nx = n.atlas.Layout(next).Width - 1
		} else {
			nx = 0
		}
	}

	if next != scene {
		ny = clamp(ny, 0, n.atlas.Layout(next).Height-1)
	}

	if !n.atlas.Layout(next).IsPassable(nx, ny) {
		nx, ny, next = x, y, scene
	}

	return Step{
		Scene:   next,
		X:       nx,
		Y:       ny,
		Moved:   next != scene || nx != x || ny != y,
		Changed: next != scene,
		Boss:    next == world.LastScene && nx > n.bossThreshold,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

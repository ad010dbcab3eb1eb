package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/campusquest/internal/world"
)

// testAtlas is a tiny three-scene world. The field has a stone at (2,0) and
// the campus is one row shorter than the others.
func testAtlas(t *testing.T) *world.Atlas {
	t.Helper()
	grid, err := world.NewGrid([][]int{
		{0, 0, 2, 0, 0},
		{1, 1, 1, 1, 1},
		{0, 4, 0, 0, 0},
	})
	require.NoError(t, err)

	return world.NewAtlas(
		world.Layout{Scene: world.SceneVillage, Width: 4, Height: 3},
		world.Layout{Scene: world.SceneField, Width: 5, Height: 3, Grid: grid},
		world.Layout{Scene: world.SceneCampus, Width: 6, Height: 2},
	)
}

func TestNavigatorStep(t *testing.T) {
	tests := []struct {
		name   string
		scene  world.Scene
		x, y   int
		dx, dy int
		want   Step
	}{
		{"walk inside village", world.SceneVillage, 1, 1, 1, 0,
			Step{Scene: world.SceneVillage, X: 2, Y: 1, Moved: true}},
		{"village right edge enters field", world.SceneVillage, 3, 1, 1, 0,
			Step{Scene: world.SceneField, X: 0, Y: 1, Moved: true, Changed: true}},
		{"village left edge clamps", world.SceneVillage, 0, 1, -1, 0,
			Step{Scene: world.SceneVillage, X: 0, Y: 1}},
		{"field left edge returns to village", world.SceneField, 0, 2, -1, 0,
			Step{Scene: world.SceneVillage, X: 3, Y: 2, Moved: true, Changed: true}},
		{"field stone blocks", world.SceneField, 1, 0, 1, 0,
			Step{Scene: world.SceneField, X: 1, Y: 0}},
		{"field river blocks vertical", world.SceneField, 1, 1, 0, 1,
			Step{Scene: world.SceneField, X: 1, Y: 1}},
		{"entering shorter scene clamps y", world.SceneField, 4, 2, 1, 0,
			Step{Scene: world.SceneCampus, X: 0, Y: 1, Moved: true, Changed: true}},
		{"vertical clamps at top", world.SceneVillage, 2, 0, 0, -1,
			Step{Scene: world.SceneVillage, X: 2, Y: 0}},
		{"vertical clamps at bottom", world.SceneCampus, 1, 1, 0, 1,
			Step{Scene: world.SceneCampus, X: 1, Y: 1}},
		{"campus at threshold", world.SceneCampus, 2, 0, 1, 0,
			Step{Scene: world.SceneCampus, X: 3, Y: 0, Moved: true}},
		{"campus beyond threshold", world.SceneCampus, 3, 0, 1, 0,
			Step{Scene: world.SceneCampus, X: 4, Y: 0, Moved: true, Boss: true}},
		{"campus right edge clamps deep", world.SceneCampus, 5, 0, 1, 0,
			Step{Scene: world.SceneCampus, X: 5, Y: 0, Boss: true}},
	}

	nav := NewNavigator(testAtlas(t), 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nav.Step(tt.scene, tt.x, tt.y, tt.dx, tt.dy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstDirection(t *testing.T) {
	tests := []struct {
		name string
		d    Directions
		want Intent
	}{
		{"none", Directions{}, IntentNone},
		{"left wins over all", Directions{Left: true, Right: true, Up: true, Down: true}, IntentMoveLeft},
		{"right over vertical", Directions{Right: true, Up: true}, IntentMoveRight},
		{"up over down", Directions{Up: true, Down: true}, IntentMoveUp},
		{"down alone", Directions{Down: true}, IntentMoveDown},
	}

	for _, tt := range tests {
		if got := FirstDirection(tt.d); got != tt.want {
			t.Errorf("FirstDirection(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIntentDelta(t *testing.T) {
	for _, in := range []Intent{IntentAttack, IntentRestart, IntentQuit, IntentNone} {
		_, _, ok := in.delta()
		assert.False(t, ok, in.String())
	}
	dx, dy, ok := IntentMoveUp.delta()
	assert.True(t, ok)
	assert.Equal(t, 0, dx)
	assert.Equal(t, -1, dy)
}

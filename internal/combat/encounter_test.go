package combat

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/campusquest/internal/config"
	"github.com/samdwyer/campusquest/internal/entity"
	"github.com/samdwyer/campusquest/internal/gamedata"
)

func testRegistry(t *testing.T) *gamedata.EnemyRegistry {
	t.Helper()
	registry, err := gamedata.NewEnemyRegistry([]gamedata.EnemyDef{gruntDef(), bossDef()})
	require.NoError(t, err)
	return registry
}

func newTestGenerator(t *testing.T, rng Rand, cfg config.Encounters) *Generator {
	t.Helper()
	g, err := NewGenerator(rng, cfg, testRegistry(t), entity.DefaultTimers())
	require.NoError(t, err)
	return g
}

func TestRollNeverDrawsInBattle(t *testing.T) {
	rng := script(t)
	g := newTestGenerator(t, rng, config.Default().Encounters)

	for i := 0; i < 100; i++ {
		assert.False(t, g.Roll(true))
	}
}

func TestRollThreshold(t *testing.T) {
	tests := []struct {
		draw int
		want bool
	}{
		{0, true},
		{1, false},
		{99, false},
	}

	for _, tt := range tests {
		g := newTestGenerator(t, script(t, tt.draw), config.Default().Encounters)
		if got := g.Roll(false); got != tt.want {
			t.Errorf("Roll(false) with draw %d = %v, want %v", tt.draw, got, tt.want)
		}
	}
}

func TestOrdinaryRoster(t *testing.T) {
	tests := []struct {
		draw int
		want int
	}{
		{0, 1},
		{1, 2},
		{2, 3},
	}

	for _, tt := range tests {
		g := newTestGenerator(t, script(t, tt.draw), config.Default().Encounters)
		enemies := g.Ordinary()
		require.Len(t, enemies, tt.want)

		for i, e := range enemies {
			assert.Equal(t, i, e.Slot)
			assert.Equal(t, 50, e.HP)
			assert.Equal(t, 10, e.Attack)
			assert.Equal(t, 40, e.XP)
			assert.False(t, e.Boss)
		}
		assert.Equal(t, "Assignment 1", enemies[0].Name)
		assert.Equal(t, fmt.Sprintf("Assignment %d", tt.want), enemies[tt.want-1].Name)
	}
}

func TestOrdinaryRosterSeededIsDeterministic(t *testing.T) {
	sizes := func() []int {
		g := newTestGenerator(t, rand.New(rand.NewSource(99)), config.Default().Encounters)
		var out []int
		for i := 0; i < 20; i++ {
			n := len(g.Ordinary())
			require.True(t, n >= 1 && n <= 3, "roster size %d", n)
			out = append(out, n)
		}
		return out
	}
	assert.Equal(t, sizes(), sizes())
}

func TestBossRoster(t *testing.T) {
	g := newTestGenerator(t, script(t), config.Default().Encounters)

	roster := g.Boss()
	require.Len(t, roster, 1)
	assert.Equal(t, "Evil Organization", roster[0].Name)
	assert.Equal(t, 1000, roster[0].HP)
	assert.True(t, roster[0].Boss)
}

func TestGeneratorOverrides(t *testing.T) {
	cfg := config.Default().Encounters
	cfg.Overrides = map[string]config.EnemyOverride{
		"assignment": {HP: 60, XP: 45},
	}
	g := newTestGenerator(t, script(t, 0), cfg)

	e := g.Ordinary()[0]
	assert.Equal(t, 60, e.HP)
	assert.Equal(t, 10, e.Attack)
	assert.Equal(t, 45, e.XP)
}

func TestNewGeneratorUnknownEnemy(t *testing.T) {
	cfg := config.Default().Encounters
	cfg.Boss = "dean"

	_, err := NewGenerator(script(t), cfg, testRegistry(t), entity.DefaultTimers())
	assert.ErrorContains(t, err, "dean")
}

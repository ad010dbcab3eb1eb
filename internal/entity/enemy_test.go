package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/campusquest/internal/gamedata"
)

func testGrunt() gamedata.EnemyDef {
	return gamedata.EnemyDef{ID: "assignment", Name: "Assignment", Glyph: "A", Color: "#3366FF", HP: 50, Attack: 10, XP: 40}
}

func TestNewEnemyFromDef(t *testing.T) {
	e := NewEnemyFromDef(testGrunt(), "Assignment 2", 1, DefaultTimers())

	assert.Equal(t, "Assignment 2", e.Name)
	assert.Equal(t, 'A', e.Symbol)
	assert.Equal(t, 1, e.Slot)
	assert.Equal(t, 50, e.HP)
	assert.Equal(t, 50, e.MaxHP)
	assert.Equal(t, 10, e.Attack)
	assert.Equal(t, 40, e.XP)
	assert.False(t, e.Boss)
	assert.False(t, e.Dying())
	assert.False(t, e.Flashing())
	assert.Equal(t, 0, e.RemovalLeft())

	unnamed := NewEnemyFromDef(testGrunt(), "", 0, DefaultTimers())
	assert.Equal(t, "Assignment", unnamed.Name)
}

func TestEnemyFlashCountdown(t *testing.T) {
	e := NewEnemyFromDef(testGrunt(), "", 0, Timers{Flash: 3, Removal: 5})

	dealt, killed := e.TakeDamage(10)
	assert.Equal(t, 10, dealt)
	assert.False(t, killed)
	assert.True(t, e.Flashing())

	for i := 0; i < 2; i++ {
		assert.False(t, e.Tick())
		assert.True(t, e.Flashing(), "tick %d", i+1)
	}
	assert.False(t, e.Tick())
	assert.False(t, e.Flashing())
}

func TestEnemyRemovalCountdown(t *testing.T) {
	e := NewEnemyFromDef(testGrunt(), "", 0, Timers{Flash: 10, Removal: 60})

	dealt, killed := e.TakeDamage(80)
	require.True(t, killed)
	assert.Equal(t, 50, dealt, "damage is capped at remaining HP")
	assert.Equal(t, 0, e.HP)
	assert.True(t, e.Dying())
	assert.False(t, e.IsAlive())
	assert.Equal(t, 60, e.RemovalLeft())

	// Further hits on a dying enemy do nothing.
	dealt, killed = e.TakeDamage(5)
	assert.Equal(t, 0, dealt)
	assert.False(t, killed)

	for i := 1; i < 60; i++ {
		require.False(t, e.Tick(), "tick %d should not evict", i)
	}
	assert.Equal(t, 1, e.RemovalLeft())
	assert.True(t, e.Tick(), "tick 60 evicts")
}

func TestEnemyHPFraction(t *testing.T) {
	e := NewEnemyFromDef(testGrunt(), "", 0, DefaultTimers())
	assert.Equal(t, 1.0, e.HPFraction())

	e.TakeDamage(25)
	assert.Equal(t, 0.5, e.HPFraction())

	e.TakeDamage(100)
	assert.Equal(t, 0.0, e.HPFraction())
}

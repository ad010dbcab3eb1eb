package combat

import (
	"fmt"

	"github.com/samdwyer/campusquest/internal/config"
	"github.com/samdwyer/campusquest/internal/entity"
	"github.com/samdwyer/campusquest/internal/gamedata"
)

// Generator decides when a random encounter starts and builds its roster.
type Generator struct {
	rng        Rand
	chance     int
	minEnemies int
	maxEnemies int
	grunt      gamedata.EnemyDef
	boss       gamedata.EnemyDef
	timers     entity.Timers
}

// NewGenerator creates a generator from encounter settings and the enemy
// registry. Configured overrides are applied to the grunt and boss.
func NewGenerator(rng Rand, cfg config.Encounters, registry *gamedata.EnemyRegistry, timers entity.Timers) (*Generator, error) {
	grunt, err := resolveDef(registry, cfg.Grunt, cfg.Overrides)
	if err != nil {
		return nil, fmt.Errorf("grunt: %w", err)
	}
	boss, err := resolveDef(registry, cfg.Boss, cfg.Overrides)
	if err != nil {
		return nil, fmt.Errorf("boss: %w", err)
	}
	boss.Boss = true

	return &Generator{
		rng:        rng,
		chance:     cfg.Chance,
		minEnemies: cfg.MinEnemies,
		maxEnemies: cfg.MaxEnemies,
		grunt:      grunt,
		boss:       boss,
		timers:     timers,
	}, nil
}

func resolveDef(registry *gamedata.EnemyRegistry, id string, overrides map[string]config.EnemyOverride) (gamedata.EnemyDef, error) {
	o := overrides[id]
	return registry.WithOverride(id, o.HP, o.Attack, o.XP)
}

// Roll is called once per successful step on the field. It draws from
// [0,100) and reports whether an ordinary encounter starts. While a battle is
// active it always returns false without drawing.
func (g *Generator) Roll(inBattle bool) bool {
	if inBattle {
		return false
	}
	return percent(g.rng, g.chance)
}

// Ordinary builds a roster of minEnemies..maxEnemies grunts (uniform),
// numbered in roster order.
func (g *Generator) Ordinary() []*entity.Enemy {
	n := between(g.rng, g.minEnemies, g.maxEnemies)
	enemies := make([]*entity.Enemy, n)
	for i := range enemies {
		name := fmt.Sprintf("%s %d", g.grunt.Name, i+1)
		enemies[i] = entity.NewEnemyFromDef(g.grunt, name, i, g.timers)
	}
	return enemies
}

// Boss builds the single-combatant boss roster.
func (g *Generator) Boss() []*entity.Enemy {
	return []*entity.Enemy{entity.NewEnemyFromDef(g.boss, g.boss.Name, 0, g.timers)}
}

package gamedata

import (
	"errors"
	"fmt"
)

// EnemyRegistry holds loaded enemy definitions keyed by ID.
type EnemyRegistry struct {
	enemies []EnemyDef
	byID    map[string]int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
// Duplicate IDs and non-positive HP are rejected.
func NewEnemyRegistry(enemies []EnemyDef) (*EnemyRegistry, error) {
	registry := &EnemyRegistry{
		enemies: enemies,
		byID:    make(map[string]int, len(enemies)),
	}
	for i, e := range enemies {
		if e.ID == "" {
			return nil, fmt.Errorf("enemy %d has no id", i)
		}
		if _, dup := registry.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", e.ID)
		}
		if e.HP <= 0 {
			return nil, fmt.Errorf("enemy %q: hp must be positive, got %d", e.ID, e.HP)
		}
		registry.byID[e.ID] = i
	}
	return registry, nil
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies)
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.enemies[i]
}

// WithOverride returns a copy of the definition with non-zero fields replaced.
func (r *EnemyRegistry) WithOverride(id string, hp, attack, xp int) (EnemyDef, error) {
	def := r.GetByID(id)
	if def == nil {
		return EnemyDef{}, fmt.Errorf("unknown enemy %q", id)
	}
	out := *def
	if hp > 0 {
		out.HP = hp
	}
	if attack > 0 {
		out.Attack = attack
	}
	if xp > 0 {
		out.XP = xp
	}
	return out, nil
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

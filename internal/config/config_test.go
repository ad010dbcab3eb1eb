package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte(`
seed: 42
message_cap: 4
combat:
  magic:
    mp_cost: 25
encounters:
  chance: 5
  overrides:
    assignment:
      hp: 60
world:
  move_cooldown: 0
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 4, cfg.MessageCap)
	assert.Equal(t, 25, cfg.Combat.Magic.MPCost)
	// Untouched siblings keep their defaults.
	assert.Equal(t, Range{Min: 50, Max: 80}, cfg.Combat.Magic.Damage)
	assert.Equal(t, 10, cfg.Combat.Heal.MPCost)
	assert.Equal(t, 5, cfg.Encounters.Chance)
	assert.Equal(t, 60, cfg.Encounters.Overrides["assignment"].HP)
	assert.Equal(t, 0, cfg.World.MoveCooldown)
	assert.Equal(t, 60, cfg.TickRate)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative chance", "encounters:\n  chance: -1\n"},
		{"inverted range", "combat:\n  attack:\n    damage: {min: 30, max: 20}\n"},
		{"empty roster", "encounters:\n  min_enemies: 0\n"},
		{"boss outside campus", "world:\n  boss_threshold: 40\n"},
		{"zero tick rate", "tick_rate: 0\n"},
		{"start outside village", "world:\n  start_x: 40\n"},
		{"negative start", "world:\n  start_y: -1\n"},
		{"oversized roster", "encounters:\n  min_enemies: 9\n  max_enemies: 9\n"},
		{"roster above three", "encounters:\n  max_enemies: 4\n"},
		{"negative crit multiplier", "combat:\n  attack:\n    crit_multiplier: -2\n"},
		{"negative buff multiplier", "combat:\n  items:\n    guard_seed: {multiplier: -0.5, turns: 3}\n"},
		{"zero buff turns", "combat:\n  items:\n    power_seed: {multiplier: 1.5, turns: 0}\n"},
		{"negative herb", "combat:\n  items:\n    herb_heal: -50\n"},
		{"negative start count", "combat:\n  items:\n    start_count: [3, -1, 1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"start at village corner", func(c *Config) { c.World.StartX, c.World.StartY = c.World.Village.Width-1, c.World.Village.Height-1 }, false},
		{"start one past village", func(c *Config) { c.World.StartX = c.World.Village.Width }, true},
		{"full roster", func(c *Config) { c.Encounters.MinEnemies, c.Encounters.MaxEnemies = MaxRoster, MaxRoster }, false},
		{"roster past limit", func(c *Config) { c.Encounters.MaxEnemies = MaxRoster + 1 }, true},
		{"zero herb", func(c *Config) { c.Combat.Items.HerbHeal = 0 }, false},
		{"crit below one", func(c *Config) { c.Combat.Magic.CritMultiplier = 0.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Package config loads game balance and runtime settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Strike configures an offensive player action.
type Strike struct {
	Damage         Range   `yaml:"damage"`
	LevelBonusMul  int     `yaml:"level_bonus_mul"` // multiples of the 2*(level-1) bonus
	CritChance     int     `yaml:"crit_chance"`     // percent
	CritMultiplier float64 `yaml:"crit_multiplier"`
	MPCost         int     `yaml:"mp_cost"`
}

// Mend configures the healing spell.
type Mend struct {
	Amount Range `yaml:"amount"`
	MPCost int   `yaml:"mp_cost"`
}

// Buff configures a timed multiplier.
type Buff struct {
	Multiplier float64 `yaml:"multiplier"`
	Turns      int     `yaml:"turns"`
}

// Items configures the three consumables.
type Items struct {
	HerbHeal   int    `yaml:"herb_heal"`
	PowerSeed  Buff   `yaml:"power_seed"`
	GuardSeed  Buff   `yaml:"guard_seed"`
	StartCount [3]int `yaml:"start_count"`
}

// Combat holds battle resolution tuning.
type Combat struct {
	Attack       Strike `yaml:"attack"`
	Magic        Strike `yaml:"magic"`
	Heal         Mend   `yaml:"heal"`
	Items        Items  `yaml:"items"`
	MissChance   int    `yaml:"miss_chance"`   // percent, per enemy
	AttackSpread int    `yaml:"attack_spread"` // enemy damage = attack +/- spread
	RemovalTicks int    `yaml:"removal_ticks"`
	FlashTicks   int    `yaml:"flash_ticks"`
}

// Progression holds the player's starting stats and growth formula.
type Progression struct {
	StartHP       int     `yaml:"start_hp"`
	StartMP       int     `yaml:"start_mp"`
	StartNextExp  int     `yaml:"start_next_exp"`
	NextExpGrowth float64 `yaml:"next_exp_growth"`
	HPPerLevel    int     `yaml:"hp_per_level"`
	MPPerLevel    int     `yaml:"mp_per_level"`
}

// EnemyOverride replaces selected stats of an embedded enemy definition.
// Zero fields keep the embedded value.
type EnemyOverride struct {
	HP     int `yaml:"hp"`
	Attack int `yaml:"attack"`
	XP     int `yaml:"xp"`
}

// MaxRoster is the largest ordinary encounter.
const MaxRoster = 3

// Encounters configures random encounters on the field.
type Encounters struct {
	Chance     int                      `yaml:"chance"` // percent per step
	MinEnemies int                      `yaml:"min_enemies"`
	MaxEnemies int                      `yaml:"max_enemies"`
	Grunt      string                   `yaml:"grunt"`
	Boss       string                   `yaml:"boss"`
	Overrides  map[string]EnemyOverride `yaml:"overrides"`
}

// SceneSize is the extent of an open scene.
type SceneSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// World configures scene extents and exploration pacing.
type World struct {
	Village       SceneSize `yaml:"village"`
	Campus        SceneSize `yaml:"campus"`
	StartX        int       `yaml:"start_x"`
	StartY        int       `yaml:"start_y"`
	BossThreshold int       `yaml:"boss_threshold"` // campus x beyond which the boss appears
	MoveCooldown  int       `yaml:"move_cooldown"`  // ticks between steps
}

// Config holds all configuration for the game.
type Config struct {
	Seed        int64       `yaml:"seed"` // 0 picks a time-based seed
	TickRate    int         `yaml:"tick_rate"`
	LogLevel    string      `yaml:"log_level"`
	LogFile     string      `yaml:"log_file"`
	MessageCap  int         `yaml:"message_cap"`
	Combat      Combat      `yaml:"combat"`
	Progression Progression `yaml:"progression"`
	Encounters  Encounters  `yaml:"encounters"`
	World       World       `yaml:"world"`
}

// Default returns Config with the reference balance.
func Default() Config {
	return Config{
		TickRate:   60,
		LogLevel:   "info",
		LogFile:    "campusquest.log",
		MessageCap: 5,
		Combat: Combat{
			Attack: Strike{
				Damage:         Range{Min: 20, Max: 30},
				LevelBonusMul:  1,
				CritChance:     15,
				CritMultiplier: 2.0,
			},
			Magic: Strike{
				Damage:         Range{Min: 50, Max: 80},
				LevelBonusMul:  2,
				CritChance:     10,
				CritMultiplier: 1.5,
				MPCost:         30,
			},
			Heal: Mend{
				Amount: Range{Min: 30, Max: 50},
				MPCost: 10,
			},
			Items: Items{
				HerbHeal:   50,
				PowerSeed:  Buff{Multiplier: 1.5, Turns: 3},
				GuardSeed:  Buff{Multiplier: 0.5, Turns: 3},
				StartCount: [3]int{3, 1, 1},
			},
			MissChance:   20,
			AttackSpread: 3,
			RemovalTicks: 60,
			FlashTicks:   10,
		},
		Progression: Progression{
			StartHP:       100,
			StartMP:       100,
			StartNextExp:  100,
			NextExpGrowth: 1.5,
			HPPerLevel:    20,
			MPPerLevel:    10,
		},
		Encounters: Encounters{
			Chance:     1,
			MinEnemies: 1,
			MaxEnemies: 3,
			Grunt:      "assignment",
			Boss:       "evil_organization",
		},
		World: World{
			Village:       SceneSize{Width: 16, Height: 19},
			Campus:        SceneSize{Width: 16, Height: 19},
			StartX:        1,
			StartY:        6,
			BossThreshold: 13,
			MoveCooldown:  8,
		},
	}
}

// Load loads config from a YAML file on top of Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)
	check(c.MessageCap > 0, "message_cap must be positive, got %d", c.MessageCap)

	for name, r := range map[string]Range{
		"combat.attack.damage": c.Combat.Attack.Damage,
		"combat.magic.damage":  c.Combat.Magic.Damage,
		"combat.heal.amount":   c.Combat.Heal.Amount,
	} {
		check(r.Min >= 0 && r.Min <= r.Max, "%s: invalid range [%d,%d]", name, r.Min, r.Max)
	}

	check(c.Combat.MissChance >= 0 && c.Combat.MissChance <= 100, "combat.miss_chance out of range: %d", c.Combat.MissChance)
	check(c.Combat.AttackSpread >= 0, "combat.attack_spread must not be negative")
	check(c.Combat.RemovalTicks > 0, "combat.removal_ticks must be positive")
	check(c.Combat.FlashTicks >= 0, "combat.flash_ticks must not be negative")
	check(c.Combat.Magic.MPCost >= 0 && c.Combat.Heal.MPCost >= 0, "mp costs must not be negative")
	check(c.Combat.Attack.CritMultiplier >= 1 && c.Combat.Magic.CritMultiplier >= 1, "crit_multiplier must be at least 1")

	items := c.Combat.Items
	check(items.HerbHeal >= 0, "combat.items.herb_heal must not be negative")
	for name, b := range map[string]Buff{
		"combat.items.power_seed": items.PowerSeed,
		"combat.items.guard_seed": items.GuardSeed,
	} {
		check(b.Multiplier >= 0 && b.Turns > 0, "%s: multiplier %g, turns %d", name, b.Multiplier, b.Turns)
	}
	for i, n := range items.StartCount {
		check(n >= 0, "combat.items.start_count[%d] must not be negative", i)
	}

	check(c.Progression.StartHP > 0 && c.Progression.StartMP >= 0, "progression: starting pools must be positive")
	check(c.Progression.StartNextExp > 0, "progression.start_next_exp must be positive")
	check(c.Progression.NextExpGrowth >= 1, "progression.next_exp_growth must be at least 1")

	check(c.Encounters.Chance >= 0 && c.Encounters.Chance <= 100, "encounters.chance out of range: %d", c.Encounters.Chance)
	check(c.Encounters.MinEnemies >= 1 && c.Encounters.MinEnemies <= c.Encounters.MaxEnemies &&
		c.Encounters.MaxEnemies <= MaxRoster,
		"encounters: roster size [%d,%d] must lie within [1,%d]", c.Encounters.MinEnemies, c.Encounters.MaxEnemies, MaxRoster)

	check(c.World.Village.Width > 0 && c.World.Village.Height > 0, "world.village: extent must be positive")
	check(c.World.Campus.Width > 0 && c.World.Campus.Height > 0, "world.campus: extent must be positive")
	check(c.World.StartX >= 0 && c.World.StartX < c.World.Village.Width &&
		c.World.StartY >= 0 && c.World.StartY < c.World.Village.Height,
		"world: start (%d,%d) must lie inside the village", c.World.StartX, c.World.StartY)
	check(c.World.BossThreshold >= 0 && c.World.BossThreshold < c.World.Campus.Width-1,
		"world.boss_threshold %d must lie inside the campus", c.World.BossThreshold)
	check(c.World.MoveCooldown >= 0, "world.move_cooldown must not be negative")

	return errors.Join(errs...)
}

package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/looplab/fsm"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/campusquest/internal/combat"
	"github.com/samdwyer/campusquest/internal/config"
	"github.com/samdwyer/campusquest/internal/entity"
	"github.com/samdwyer/campusquest/internal/gamedata"
	"github.com/samdwyer/campusquest/internal/msglog"
	"github.com/samdwyer/campusquest/internal/telemetry"
	"github.com/samdwyer/campusquest/internal/world"
)

// ErrIntentIgnored is returned for intents that mean nothing in the current mode.
var ErrIntentIgnored = errors.New("intent ignored in current mode")

// IsRejected reports whether err is an expected refusal of player input
// rather than a failure of the game itself.
func IsRejected(err error) bool {
	return errors.Is(err, ErrIntentIgnored) ||
		errors.Is(err, combat.ErrInsufficientMP) ||
		errors.Is(err, combat.ErrNoItem) ||
		errors.Is(err, combat.ErrNoTarget) ||
		errors.Is(err, combat.ErrBattleOver) ||
		errors.Is(err, combat.ErrUnknownAction)
}

// Data is the static content the game is built from.
type Data struct {
	Enemies *gamedata.EnemyRegistry
	Atlas   *world.Atlas
}

// LoadData loads enemy definitions and the field terrain from embedded data
// and lays out the scenes using the configured extents.
func LoadData(cfg config.World) (Data, error) {
	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return Data{}, fmt.Errorf("loading enemies: %w", err)
	}

	field, err := gamedata.LoadFieldGrid()
	if err != nil {
		return Data{}, fmt.Errorf("loading field: %w", err)
	}

	atlas := world.NewAtlas(
		world.Layout{Scene: world.SceneVillage, Width: cfg.Village.Width, Height: cfg.Village.Height},
		world.Layout{Scene: world.SceneField, Width: field.Width, Height: field.Height, Grid: field},
		world.Layout{Scene: world.SceneCampus, Width: cfg.Campus.Width, Height: cfg.Campus.Height},
	)
	return Data{Enemies: registry, Atlas: atlas}, nil
}

// Game owns the player, the current scene, the global mode and the active
// battle. It is driven by one goroutine.
type Game struct {
	cfg    config.Config
	logger *slog.Logger
	rng    combat.Rand

	atlas      *world.Atlas
	nav        *Navigator
	encounters *combat.Generator

	player *entity.Player
	scene  world.Scene
	mode   *fsm.FSM
	battle *combat.Battle
	log    *msglog.Log

	cooldown int // ticks until the next step is allowed
	quit     bool
}

// New creates a game from embedded data.
func New(ctx context.Context, cfg config.Config, rng combat.Rand, logger *slog.Logger) (*Game, error) {
	data, err := LoadData(cfg.World)
	if err != nil {
		return nil, err
	}
	return NewWithData(ctx, cfg, rng, logger, data)
}

// NewWithData creates a game from already loaded data.
func NewWithData(ctx context.Context, cfg config.Config, rng combat.Rand, logger *slog.Logger, data Data) (*Game, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timers := entity.Timers{Flash: cfg.Combat.FlashTicks, Removal: cfg.Combat.RemovalTicks}
	encounters, err := combat.NewGenerator(rng, cfg.Encounters, data.Enemies, timers)
	if err != nil {
		return nil, fmt.Errorf("building encounters: %w", err)
	}

	growth := entity.Growth{
		StartHP:       cfg.Progression.StartHP,
		StartMP:       cfg.Progression.StartMP,
		StartNextExp:  cfg.Progression.StartNextExp,
		NextExpGrowth: cfg.Progression.NextExpGrowth,
		HPPerLevel:    cfg.Progression.HPPerLevel,
		MPPerLevel:    cfg.Progression.MPPerLevel,
		StartItems:    cfg.Combat.Items.StartCount,
	}

	g := &Game{
		cfg:        cfg,
		logger:     logger,
		rng:        rng,
		atlas:      data.Atlas,
		nav:        NewNavigator(data.Atlas, cfg.World.BossThreshold),
		encounters: encounters,
		player:     entity.NewPlayer(growth, cfg.World.StartX, cfg.World.StartY),
		scene:      world.FirstScene,
		mode:       newModeMachine(logger),
		log:        msglog.New(cfg.MessageCap),
	}

	span.SetAttributes(
		attribute.String("scene", g.scene.String()),
		attribute.Int("player.start_x", cfg.World.StartX),
		attribute.Int("player.start_y", cfg.World.StartY),
		attribute.Int("enemy_types", data.Enemies.Count()),
	)
	logger.Info("game initialized", "scene", g.scene, "x", cfg.World.StartX, "y", cfg.World.StartY)
	return g, nil
}

// Mode returns the current global mode.
func (g *Game) Mode() Mode {
	return parseMode(g.mode.Current())
}

// Scene returns the current scene.
func (g *Game) Scene() world.Scene { return g.scene }

// Player returns the player record. Callers must not keep it across ticks.
func (g *Game) Player() *entity.Player { return g.player }

// Battle returns the active battle, or nil outside battle.
func (g *Game) Battle() *combat.Battle { return g.battle }

// Done returns true once a quit intent has been handled.
func (g *Game) Done() bool { return g.quit }

// HandleIntent applies one player intent. Movement is only meaningful while
// exploring, battle commands only in battle, and restart only after defeat;
// anything else returns ErrIntentIgnored. Rejected battle commands return the
// combat error after surfacing their message.
func (g *Game) HandleIntent(ctx context.Context, in Intent) error {
	if in == IntentQuit {
		g.logger.Info("quit requested", "mode", g.Mode())
		g.quit = true
		return nil
	}

	switch g.Mode() {
	case ModeExploring:
		if dx, dy, ok := in.delta(); ok {
			return g.move(ctx, dx, dy)
		}
	case ModeInBattle:
		if action, ok := battleAction(in); ok {
			return g.act(ctx, action)
		}
	case ModeGameOver:
		if in == IntentRestart {
			return g.Restart(ctx)
		}
	}
	return ErrIntentIgnored
}

func battleAction(in Intent) (combat.Action, bool) {
	switch in {
	case IntentAttack:
		return combat.Attack(), true
	case IntentMagic:
		return combat.Magic(), true
	case IntentHeal:
		return combat.Heal(), true
	case IntentItem1:
		return combat.UseItem(entity.ItemHerb), true
	case IntentItem2:
		return combat.UseItem(entity.ItemPowerSeed), true
	case IntentItem3:
		return combat.UseItem(entity.ItemGuardSeed), true
	default:
		return combat.Action{}, false
	}
}

// move performs one exploration step. Steps inside the movement cooldown are
// dropped silently.
func (g *Game) move(ctx context.Context, dx, dy int) error {
	if g.cooldown > 0 {
		return nil
	}

	from := g.scene
	step := g.nav.Step(g.scene, g.player.X, g.player.Y, dx, dy)
	if step.Moved {
		g.player.SetPosition(step.X, step.Y)
		g.cooldown = g.cfg.World.MoveCooldown
	}
	if step.Changed {
		g.transition(ctx, from, step.Scene)
	}

	switch {
	case step.Boss:
		return g.startBattle(ctx, g.encounters.Boss(), true)
	case step.Moved && g.scene == world.SceneField && g.encounters.Roll(g.battle != nil):
		return g.startBattle(ctx, g.encounters.Ordinary(), false)
	}
	return nil
}

// transition records a scene change.
func (g *Game) transition(ctx context.Context, from, to world.Scene) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "scene.transition")
	span.SetAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
		attribute.Int("x", g.player.X),
		attribute.Int("y", g.player.Y),
	)
	span.End()

	g.scene = to
	g.logger.Info("scene changed", "from", from, "to", to, "x", g.player.X, "y", g.player.Y)
}

func (g *Game) startBattle(ctx context.Context, enemies []*entity.Enemy, boss bool) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "battle.start")
	defer span.End()

	g.battle = combat.NewBattle(g.player, enemies, boss, g.cfg.Combat, g.rng, g.log)
	span.SetAttributes(
		attribute.String("battle.id", g.battle.ID),
		attribute.String("scene", g.scene.String()),
		attribute.Int("enemy_count", len(enemies)),
		attribute.Bool("boss", boss),
	)
	g.logger.Info("battle started", "battle", g.battle.ID, "scene", g.scene, "enemies", len(enemies), "boss", boss)

	return g.fire(ctx, eventEncounter)
}

func (g *Game) act(ctx context.Context, action combat.Action) error {
	res, err := g.battle.Act(ctx, action)
	if err != nil {
		g.logger.Debug("action rejected", "battle", g.battle.ID, "action", action, "err", err)
		return err
	}
	g.logger.Debug("turn resolved",
		"battle", g.battle.ID,
		"action", action,
		"damage", res.Damage,
		"critical", res.Critical,
		"healed", res.Healed,
		"enemy_damage", res.EnemyDamage,
		"hp", g.player.HP,
	)

	if g.battle.Over() {
		return g.endBattle(ctx)
	}
	return nil
}

// Tick advances one fixed-rate update: the movement cooldown and every
// battle timer. Victory is detected here because eviction happens on ticks.
func (g *Game) Tick(ctx context.Context) error {
	if g.cooldown > 0 {
		g.cooldown--
	}

	if g.battle == nil {
		return nil
	}

	for _, e := range g.battle.Tick() {
		g.logger.Debug("enemy evicted", "battle", g.battle.ID, "enemy", e.Name, "xp", e.XP)
	}
	if g.battle.Over() {
		return g.endBattle(ctx)
	}
	return nil
}

// endBattle routes a resolved battle to the next mode.
func (g *Game) endBattle(ctx context.Context) error {
	b := g.battle
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "battle.end")
	defer span.End()

	span.SetAttributes(
		attribute.String("battle.id", b.ID),
		attribute.String("outcome", b.Phase.String()),
		attribute.Int("turns_taken", b.Turns),
		attribute.Int("player_hp", g.player.HP),
		attribute.Int("player_level", g.player.Level),
	)
	g.logger.Info("battle ended", "battle", b.ID, "outcome", b.Phase, "turns", b.Turns, "level", g.player.Level)

	g.battle = nil
	switch {
	case b.Phase == combat.PhaseDefeat:
		g.log.Add("Game Over. Press R to try again.")
		return g.fire(ctx, eventDefeat)
	case b.Boss:
		g.log.Add("The campus is at peace. Thanks for playing!")
		return g.fire(ctx, eventBossVictory)
	default:
		return g.fire(ctx, eventVictory)
	}
}

// Restart re-initializes the player and scene after a defeat.
func (g *Game) Restart(ctx context.Context) error {
	if g.Mode() != ModeGameOver {
		return ErrIntentIgnored
	}

	g.player.Reset(g.cfg.World.StartX, g.cfg.World.StartY)
	g.scene = world.FirstScene
	g.battle = nil
	g.cooldown = 0
	g.log.Clear()
	g.logger.Info("game restarted")

	return g.fire(ctx, eventRestart)
}

func (g *Game) fire(ctx context.Context, event string) error {
	if err := g.mode.Event(ctx, event); err != nil {
		return fmt.Errorf("mode event %s from %s: %w", event, g.mode.Current(), err)
	}
	return nil
}

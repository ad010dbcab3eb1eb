package combat

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/campusquest/internal/config"
	"github.com/samdwyer/campusquest/internal/entity"
	"github.com/samdwyer/campusquest/internal/msglog"
	"github.com/samdwyer/campusquest/internal/telemetry"
)

// Phase is the resolution state of a battle.
type Phase int

const (
	// PhaseAwaitingAction - waiting for the player's next command
	PhaseAwaitingAction Phase = iota
	// PhaseVictory - every enemy has been evicted
	PhaseVictory
	// PhaseDefeat - the player's HP reached 0
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAction:
		return "awaiting_action"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// TurnResult describes one resolved turn.
type TurnResult struct {
	Action      Action
	Target      string // name of the enemy hit, if any
	Damage      int    // damage dealt by the player
	Critical    bool
	Killed      bool
	Healed      int // HP actually restored
	EnemyMisses int
	EnemyDamage int // combined retaliation after the defense multiplier
	Phase       Phase
}

// Battle owns one encounter: its roster, the player for its duration, and
// the rules used to resolve turns.
type Battle struct {
	ID      string
	Boss    bool
	Enemies []*entity.Enemy // stable roster order; evicted by filtering
	Phase   Phase
	Turns   int

	player *entity.Player
	rules  config.Combat
	rng    Rand
	log    *msglog.Log
}

// NewBattle starts a battle against the given roster.
func NewBattle(player *entity.Player, enemies []*entity.Enemy, boss bool, rules config.Combat, rng Rand, log *msglog.Log) *Battle {
	b := &Battle{
		ID:      uuid.NewString(),
		Boss:    boss,
		Enemies: enemies,
		Phase:   PhaseAwaitingAction,
		player:  player,
		rules:   rules,
		rng:     rng,
		log:     log,
	}
	if boss {
		log.Addf("The %s blocks the way!", enemies[0].Name)
	} else {
		log.Add("Enemies appeared!")
	}
	return b
}

// LivingEnemyCount returns the number of enemies with HP remaining.
func (b *Battle) LivingEnemyCount() int {
	count := 0
	for _, e := range b.Enemies {
		if e.IsAlive() {
			count++
		}
	}
	return count
}

// FirstLivingEnemy returns the first enemy in roster order with HP > 0, or nil.
func (b *Battle) FirstLivingEnemy() *entity.Enemy {
	for _, e := range b.Enemies {
		if e.IsAlive() {
			return e
		}
	}
	return nil
}

// Over returns true once the battle is resolved either way.
func (b *Battle) Over() bool {
	return b.Phase != PhaseAwaitingAction
}

// Act resolves one player command followed by the enemy turn. Rejected
// commands return an error and leave every stat untouched; the enemies do
// not act.
func (b *Battle) Act(ctx context.Context, a Action) (TurnResult, error) {
	if b.Over() {
		return TurnResult{Action: a, Phase: b.Phase}, ErrBattleOver
	}
	if err := b.validate(a); err != nil {
		return TurnResult{Action: a, Phase: b.Phase}, err
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "battle.turn")
	defer span.End()

	res := TurnResult{Action: a}

	// Multipliers are fixed for the whole turn at its start. A buff granted by
	// this turn's item is not ticked until the next turn.
	attack := b.player.AttackBuff.Factor()
	defense := b.player.DefenseBuff.Factor()
	b.player.TickBuffs()

	switch a.Kind {
	case ActionAttack:
		b.strike(&res, b.rules.Attack, "Attack", attack)
	case ActionMagic:
		b.strike(&res, b.rules.Magic, "Magic", attack)
	case ActionHeal:
		b.heal(&res)
	case ActionItem:
		b.useItem(&res, a.Item)
	}

	b.enemyTurn(&res, defense)
	b.Turns++

	if b.player.HP <= 0 {
		b.player.HP = 0
		b.Phase = PhaseDefeat
		b.log.Add("You have been defeated...")
	} else {
		b.checkVictory()
	}
	res.Phase = b.Phase

	span.SetAttributes(
		attribute.String("battle.id", b.ID),
		attribute.String("action", a.String()),
		attribute.Int("turn", b.Turns),
		attribute.Int("damage", res.Damage),
		attribute.Bool("critical", res.Critical),
		attribute.Int("healed", res.Healed),
		attribute.Int("enemy_damage", res.EnemyDamage),
		attribute.String("phase", b.Phase.String()),
	)
	return res, nil
}

// validate checks every precondition before anything changes.
func (b *Battle) validate(a Action) error {
	switch a.Kind {
	case ActionAttack, ActionMagic, ActionHeal:
	case ActionItem:
		if !a.Item.Valid() {
			return ErrUnknownAction
		}
	default:
		return ErrUnknownAction
	}

	if b.FirstLivingEnemy() == nil {
		return ErrNoTarget
	}

	switch a.Kind {
	case ActionMagic:
		if b.player.MP < b.rules.Magic.MPCost {
			b.log.Add("Not enough MP! Choose another command.")
			return ErrInsufficientMP
		}
	case ActionHeal:
		if b.player.MP < b.rules.Heal.MPCost {
			b.log.Add("Not enough MP! Choose another command.")
			return ErrInsufficientMP
		}
	case ActionItem:
		if b.player.ItemCount(a.Item) <= 0 {
			b.log.Addf("No %s left!", a.Item)
			return ErrNoItem
		}
	}
	return nil
}

// strike resolves Attack or Magic against the first living enemy.
func (b *Battle) strike(res *TurnResult, s config.Strike, label string, factor float64) {
	target := b.FirstLivingEnemy()
	b.player.SpendMP(s.MPCost)

	damage := between(b.rng, s.Damage.Min, s.Damage.Max) + s.LevelBonusMul*b.player.LevelBonus()
	if percent(b.rng, s.CritChance) {
		damage = int(float64(damage) * s.CritMultiplier)
		res.Critical = true
		b.log.Add("Critical hit!!")
	}
	damage = int(float64(damage) * factor)

	_, killed := target.TakeDamage(damage)
	res.Target = target.Name
	res.Damage = damage
	res.Killed = killed

	b.log.Addf("%s! %s takes %d damage!", label, target.Name, damage)
	if killed {
		b.log.Addf("%s was defeated!", target.Name)
	}
}

// heal resolves the healing spell.
func (b *Battle) heal(res *TurnResult) {
	b.player.SpendMP(b.rules.Heal.MPCost)
	amount := between(b.rng, b.rules.Heal.Amount.Min, b.rules.Heal.Amount.Max) + b.player.LevelBonus()
	res.Healed = b.player.Heal(amount)
	b.log.Addf("Heal! Recovered %d HP!", res.Healed)
}

// useItem consumes one item and applies its effect.
func (b *Battle) useItem(res *TurnResult, item entity.Item) {
	b.player.UseItem(item)
	items := b.rules.Items

	switch item {
	case entity.ItemHerb:
		res.Healed = b.player.Heal(items.HerbHeal)
		b.log.Addf("Used a %s! Recovered %d HP!", item, res.Healed)
	case entity.ItemPowerSeed:
		b.player.AttackBuff = entity.Buff{Multiplier: items.PowerSeed.Multiplier, Turns: items.PowerSeed.Turns}
		b.log.Addf("Used a %s! Attack rises for %d turns!", item, items.PowerSeed.Turns)
	case entity.ItemGuardSeed:
		b.player.DefenseBuff = entity.Buff{Multiplier: items.GuardSeed.Multiplier, Turns: items.GuardSeed.Turns}
		b.log.Addf("Used a %s! Defense rises for %d turns!", item, items.GuardSeed.Turns)
	}
}

// enemyTurn lets every enemy alive at this instant roll against the player.
// Hits are summed and applied once, scaled by the defense factor taken at the
// start of the turn.
func (b *Battle) enemyTurn(res *TurnResult, defense float64) {
	living := make([]*entity.Enemy, 0, len(b.Enemies))
	for _, e := range b.Enemies {
		if e.IsAlive() {
			living = append(living, e)
		}
	}

	total := 0
	spread := b.rules.AttackSpread
	for _, e := range living {
		if percent(b.rng, b.rules.MissChance) {
			res.EnemyMisses++
			b.log.Addf("%s's attack missed!", e.Name)
			continue
		}
		total += between(b.rng, max(0, e.Attack-spread), e.Attack+spread)
	}

	if total <= 0 {
		return
	}

	damage := int(float64(total) * defense)
	b.player.TakeDamage(damage)
	res.EnemyDamage = damage
	b.log.Addf("Enemies attack! %d damage in total!", damage)
}

// Tick advances every enemy's timers by one tick, evicts enemies whose
// removal countdown finished (awarding their experience once), and detects
// victory. It does nothing once the battle is resolved.
func (b *Battle) Tick() []*entity.Enemy {
	if b.Over() {
		return nil
	}

	var evicted []*entity.Enemy
	remaining := b.Enemies[:0:0]
	for _, e := range b.Enemies {
		if e.Tick() {
			evicted = append(evicted, e)
			continue
		}
		remaining = append(remaining, e)
	}
	if len(evicted) == 0 {
		return nil
	}
	b.Enemies = remaining

	for _, e := range evicted {
		b.award(e.XP)
	}
	b.checkVictory()
	return evicted
}

// award grants experience and reports every level gained.
func (b *Battle) award(xp int) {
	before := b.player.Level
	gained := b.player.GainExperience(xp)
	b.log.Addf("Gained %d Exp!", xp)
	for lvl := before + 1; lvl <= before+gained; lvl++ {
		b.log.Addf("Level up! Now Lv %d!", lvl)
	}
	if gained > 0 {
		b.log.Add("Max HP and MP increased, fully restored!")
	}
}

func (b *Battle) checkVictory() {
	if b.Phase == PhaseAwaitingAction && len(b.Enemies) == 0 {
		b.Phase = PhaseVictory
		b.log.Add("Victory!")
	}
}

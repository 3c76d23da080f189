package battle

import "github.com/emeraldfactory/battlecore/data"

// specialHandler runs a move whose resolution doesn't fit the generic
// linear op list: multi-hit counts, OHKO's level-based accuracy, the
// two-turn charge/release state machine, Counter/Mirror Coat's
// stored-damage retaliation, Bide's accumulate-then-release cycle,
// Future Sight's delayed scheduling, Baton Pass, and the move-picking
// meta-moves. RunScript calls opAttackCanceler/opAccuracyCheck/
// opPPReduce itself before invoking the handler, so a handler only
// needs to resolve what happens once the move is confirmed to fire.
type specialHandler func(b *Battle, ctx *ExecCtx)

// specialEffectHandlers is filled in init: the meta-move handlers re-enter
// runMove, which reads this table, so a package-level initializer would
// be an initialization cycle.
var specialEffectHandlers map[data.MoveEffect]specialHandler

func init() {
	specialEffectHandlers = map[data.MoveEffect]specialHandler{
	data.EffectOHKO:          specialOHKO,
	data.EffectMultiHit:      specialMultiHit,
	data.EffectDoubleHit:     specialDoubleHit,
	data.EffectTripleKick:    specialTripleKick,
	data.EffectTwoTurnFly:    specialTwoTurnFly,
	data.EffectTwoTurnDig:    specialTwoTurnDig,
	data.EffectTwoTurnDive:   specialTwoTurnDive,
	data.EffectTwoTurnCharge: specialTwoTurnCharge,
	data.EffectSolarBeam:     specialSolarBeam,
	data.EffectCounter:       specialCounter,
	data.EffectMirrorCoat:    specialMirrorCoat,
	data.EffectBide:          specialBide,
	data.EffectFutureSight:   specialFutureSight,
	data.EffectBatonPass:     specialBatonPass,
	data.EffectMetronome:     specialMetronome,
	data.EffectAssist:        specialAssist,
	}
}

// resolveSingleHit runs the CritCalc/DamageCalc/AdjustNormalDamage/
// DataHpUpdate/TryFaintMon sequence once against ctx's current
// attacker/target/move, used by every special handler that deals
// ordinary calculated damage (multi-hit, two-turn release, etc).
func (b *Battle) resolveSingleHit(ctx *ExecCtx) {
	ctx.Crit = b.opCritCalc(ctx)
	ctx.damage = b.CalcDamage(ctx.Attacker, ctx.Target, ctx.Move, ctx.Crit, ctx.Spread)
	ctx.adjDmg = 0
	if ctx.damage.Damage > 0 {
		ctx.adjDmg = b.AdjustNormalDamage(ctx.Attacker, ctx.Move, ctx.damage.Damage, ctx.Crit)
	}
	b.opDataHpUpdate(ctx)
	b.opTryFaintMon(ctx)
}

// multiHitCount rolls the Gen-3 2-5 hit distribution: 3/8 for 2 hits,
// 3/8 for 3, 1/8 for 4, 1/8 for 5.
func multiHitCount(b *Battle) int {
	roll := b.RNG.Choice(8)
	switch {
	case roll < 3:
		return 2
	case roll < 6:
		return 3
	case roll == 6:
		return 4
	default:
		return 5
	}
}

func specialMultiHit(b *Battle, ctx *ExecCtx) {
	hits := multiHitCount(b)
	landed := 0
	for i := 0; i < hits; i++ {
		def := b.Combatant(ctx.Target)
		if def == nil || def.Fainted() {
			break
		}
		b.resolveSingleHit(ctx)
		landed++
	}
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventNoOp, Battler: ctx.Attacker, Amount: landed, Reason: "multi_hit_count"})
}

func specialDoubleHit(b *Battle, ctx *ExecCtx) {
	for i := 0; i < 2; i++ {
		def := b.Combatant(ctx.Target)
		if def == nil || def.Fainted() {
			break
		}
		b.resolveSingleHit(ctx)
	}
}

// specialTripleKick runs three hits; the source game scales power
// 1x/2x/3x per hit, approximated here as three equal-power hits since
// this engine's move table stores one static power per move.
func specialTripleKick(b *Battle, ctx *ExecCtx) {
	for i := 0; i < 3; i++ {
		def := b.Combatant(ctx.Target)
		if def == nil || def.Fainted() {
			break
		}
		b.resolveSingleHit(ctx)
	}
}

// twoTurnMove drives the shared charge/release state machine for Fly,
// Dig, Dive, Razor Wind, and Sky Attack. The first use sets the
// semi-invulnerable flag (SemiNone for the non-hiding family) and
// returns without dealing damage; the next call (executeMove repeats the
// move next turn while Turn.Charging is set) resolves the hit and clears
// the state.
func twoTurnMove(b *Battle, ctx *ExecCtx, semi SemiInvulnState) {
	vol := &b.Volatiles[ctx.Attacker]
	if !vol.Turn.Charging {
		vol.Turn.Charging = true
		vol.Status3.Semi = semi
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventNoOp, Battler: ctx.Attacker, Move: ctx.Move, Reason: "charging"})
		return
	}
	vol.Turn.Charging = false
	vol.Status3.Semi = SemiNone
	b.resolveSingleHit(ctx)
}

func specialTwoTurnFly(b *Battle, ctx *ExecCtx)    { twoTurnMove(b, ctx, SemiAir) }
func specialTwoTurnDig(b *Battle, ctx *ExecCtx)    { twoTurnMove(b, ctx, SemiUnderground) }
func specialTwoTurnDive(b *Battle, ctx *ExecCtx)   { twoTurnMove(b, ctx, SemiUnderwater) }
func specialTwoTurnCharge(b *Battle, ctx *ExecCtx) { twoTurnMove(b, ctx, SemiNone) }

// specialSolarBeam fires immediately in harsh sunlight, otherwise runs
// the normal charge/release cycle.
func specialSolarBeam(b *Battle, ctx *ExecCtx) {
	if b.Field.Weather == WeatherSun {
		b.resolveSingleHit(ctx)
		return
	}
	twoTurnMove(b, ctx, SemiNone)
}

// specialOHKO implements the level-based one-hit-KO accuracy formula
// (attacker level - defender level + 30, clamped 0-100) in place of the
// generic stage-adjusted roll; MoveTable gives these moves Accuracy 0
// so opAccuracyCheck always lets the attempt through to this handler.
func specialOHKO(b *Battle, ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	def := b.Combatant(ctx.Target)
	if def.Level > atk.Level {
		ctx.failed = true
		return
	}
	chance := clamp(atk.Level-def.Level+30, 0, 100)
	if !b.RNG.Percent(chance) {
		ctx.missed = true
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventMoveMissed, Battler: ctx.Attacker, Move: ctx.Move})
		return
	}
	applied := def.ApplyDamage(def.HP)
	b.Scratch.ResultFlags |= ResultOHKO
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: ctx.Target, Source: ctx.Attacker, Move: ctx.Move, Amount: applied})
	b.handleFaintIfNeeded(ctx.Target)
}

func specialCounter(b *Battle, ctx *ExecCtx) {
	vol := &b.Volatiles[ctx.Attacker]
	if vol.Turn.LastPhysicalDamage <= 0 {
		ctx.failed = true
		return
	}
	src := vol.Turn.LastPhysicalSource
	def := b.Combatant(src)
	if def == nil {
		ctx.failed = true
		return
	}
	dmg := vol.Turn.LastPhysicalDamage * 2
	applied := def.ApplyDamage(dmg)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: src, Source: ctx.Attacker, Move: ctx.Move, Amount: applied})
	b.handleFaintIfNeeded(src)
}

func specialMirrorCoat(b *Battle, ctx *ExecCtx) {
	vol := &b.Volatiles[ctx.Attacker]
	if vol.Turn.LastSpecialDamage <= 0 {
		ctx.failed = true
		return
	}
	src := vol.Turn.LastSpecialSource
	def := b.Combatant(src)
	if def == nil {
		ctx.failed = true
		return
	}
	dmg := vol.Turn.LastSpecialDamage * 2
	applied := def.ApplyDamage(dmg)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: src, Source: ctx.Attacker, Move: ctx.Move, Amount: applied})
	b.handleFaintIfNeeded(src)
}

// specialBide accumulates incoming damage (credited by opDataHpUpdate
// whenever Disable.BideTurns > 0) over two turns, then releases double
// the stored total against the last battler that hit the user.
func specialBide(b *Battle, ctx *ExecCtx) {
	vol := &b.Volatiles[ctx.Attacker]
	if vol.Disable.BideTurns <= 0 {
		vol.Disable.BideTurns = 2
		vol.Disable.BideDamage = 0
		vol.Disable.BideTarget = -1
		return
	}
	vol.Disable.BideTurns--
	if vol.Disable.BideTurns > 0 {
		return
	}
	target := vol.Disable.BideTarget
	if target < 0 {
		ctx.failed = true
		return
	}
	def := b.Combatant(target)
	if def == nil {
		ctx.failed = true
		return
	}
	dmg := vol.Disable.BideDamage * 2
	applied := def.ApplyDamage(dmg)
	vol.Disable.BideDamage = 0
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: target, Source: ctx.Attacker, Move: ctx.Move, Amount: applied})
	b.handleFaintIfNeeded(target)
}

func specialFutureSight(b *Battle, ctx *ExecCtx) {
	d := &b.Delayed[ctx.Target]
	if d.FutureSightTurns > 0 {
		ctx.failed = true
		return
	}
	d.FutureSightTurns = 3
	d.FutureSightAttacker = ctx.Attacker
	d.FutureSightMove = ctx.Move
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDelayedSchedule, Battler: ctx.Target, Source: ctx.Attacker, Move: ctx.Move, Reason: "future_sight"})
}

// specialBatonPass flags the user for a stat/volatile-preserving switch;
// no replacement is prompted: the user's next Switch action consumes the
// flag (executeSwitch) and calls Battle.switchIn with batonPass=true.
func specialBatonPass(b *Battle, ctx *ExecCtx) {
	b.Volatiles[ctx.Attacker].Special.PendingBatonPass = true
}

var metronomeCandidates = []data.MoveID{
	data.MoveTackle, data.MovePound, data.MoveEmber, data.MoveIceBeam,
	data.MoveThunderbolt, data.MoveSurf, data.MoveEarthquake,
	data.MoveShadowBall, data.MoveThunder, data.MoveQuickAttack,
}

func specialMetronome(b *Battle, ctx *ExecCtx) {
	pick := metronomeCandidates[b.RNG.Choice(len(metronomeCandidates))]
	b.runCalledMove(ctx.Attacker, opponentOf(b, ctx.Attacker), pick, ctx.Spread)
}

func specialAssist(b *Battle, ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	var candidates []data.MoveID
	for _, m := range atk.Moves {
		switch m.Move {
		case data.MoveNone, data.MoveAssist, data.MoveMetronome, data.MoveSleepTalk:
			continue
		}
		if m.Move != data.MoveNone {
			candidates = append(candidates, m.Move)
		}
	}
	if len(candidates) == 0 {
		ctx.failed = true
		return
	}
	pick := candidates[b.RNG.Choice(len(candidates))]
	b.runCalledMove(ctx.Attacker, opponentOf(b, ctx.Attacker), pick, ctx.Spread)
}

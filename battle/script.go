package battle

import "github.com/emeraldfactory/battlecore/data"

// OpKind names one opcode in the script virtual machine (§4.F). Each
// MoveEffect maps to a fixed Op sequence built by scriptFor; the VM
// walks that sequence linearly, consulting the shared ExecCtx.
type OpKind uint8

const (
	OpAttackCanceler OpKind = iota
	OpAccuracyCheck
	OpPPReduce
	OpCritCalc
	OpDamageCalc // folds in TypeCalc: CalcDamage already applies the type chart sequentially
	OpAdjustNormalDamage
	OpDataHpUpdate
	OpTryFaintMon
	OpSetEffectPrimary
	OpSetEffectSecondary
	OpSetEffectWithChance
	OpNoOp // animation/text placeholder; present so op sequences stay positionally aligned with the source game's scripts
)

// Op is one instruction. Chance is only meaningful for
// OpSetEffectWithChance (scriptFor fills it from the move's
// SecondaryChance; 0 means the secondary applies without a chance roll).
type Op struct {
	Kind   OpKind
	Chance int
}

// ExecCtx carries everything one script execution needs: the attacker,
// the (possibly already-resolved) target, the move, and the running
// result used by opcodes downstream of DamageCalc.
type ExecCtx struct {
	Attacker int
	Target   int
	Move     data.MoveID
	Crit     bool
	Spread   int // number of targets this move is hitting this turn

	damage  DamageResult
	adjDmg  int
	missed  bool
	failed  bool
	didHit  bool
}

// scriptFor returns the canonical opcode sequence for a move, selected
// by its effect family. Pure-status and setup moves skip the damage
// pipeline entirely; damaging moves with a secondary effect route
// through SetEffectWithChance after DataHpUpdate.
func scriptFor(move data.MoveID) []Op {
	d := data.MoveTable(move)
	if d.Power == 0 {
		// Status/utility move: no damage pipeline, just the primary effect.
		return []Op{
			{Kind: OpAttackCanceler},
			{Kind: OpAccuracyCheck},
			{Kind: OpPPReduce},
			{Kind: OpSetEffectPrimary},
		}
	}
	ops := []Op{
		{Kind: OpAttackCanceler},
		{Kind: OpAccuracyCheck},
		{Kind: OpPPReduce},
		{Kind: OpCritCalc},
		{Kind: OpDamageCalc},
		{Kind: OpAdjustNormalDamage},
		{Kind: OpDataHpUpdate},
		{Kind: OpTryFaintMon},
	}
	if d.SecondaryChance > 0 || hasUnconditionalSecondary(d.Effect) {
		ops = append(ops, Op{Kind: OpSetEffectWithChance, Chance: d.SecondaryChance})
	}
	return ops
}

// hasUnconditionalSecondary reports whether move's effect always applies
// its secondary with no percent gate: the damage+primary combos
// EffectRecoil, EffectDrain, EffectWrap and EffectUproar.
func hasUnconditionalSecondary(eff data.MoveEffect) bool {
	switch eff {
	case data.EffectRecoil, data.EffectDrain, data.EffectWrap, data.EffectUproar:
		return true
	default:
		return false
	}
}

// RunScript executes a move's full script against the current
// TurnScratch state: attacker, target, move id. It returns the final
// MoveResultFlags recorded for logging/opcode consumers like Counter.
func (b *Battle) RunScript(attacker, target int, move data.MoveID, spread int) MoveResultFlags {
	return b.runMove(attacker, target, move, spread, false, false)
}

// runCalledMove executes move as one "called" by another move (Metronome,
// Assist, Nature Power, Sleep Talk): no PP is spent on the called move
// and the attacker's own AttackCanceler state (sleep, paralysis, flinch,
// ...) was already resolved by the move that called it, so it is not
// re-checked here.
func (b *Battle) runCalledMove(attacker, target int, move data.MoveID, spread int) MoveResultFlags {
	return b.runMove(attacker, target, move, spread, true, true)
}

func (b *Battle) runMove(attacker, target int, move data.MoveID, spread int, skipCanceler, skipPPReduce bool) MoveResultFlags {
	ctx := &ExecCtx{Attacker: attacker, Target: target, Move: move, Spread: spread}

	if handler, ok := specialEffectHandlers[data.MoveEffectOf(move)]; ok {
		if !skipCanceler {
			b.opAttackCanceler(ctx)
		}
		if !ctx.failed {
			b.opAccuracyCheck(ctx)
			if !ctx.missed {
				if !skipPPReduce {
					b.opPPReduce(ctx)
				}
				handler(b, ctx)
			}
		}
		flags := b.Scratch.ResultFlags
		if ctx.missed {
			flags |= ResultMissed
		}
		if ctx.failed {
			flags |= ResultFailed
		}
		b.Scratch.ResultFlags = flags
		return flags
	}

	ops := scriptFor(move)

	for _, op := range ops {
		if ctx.missed || ctx.failed {
			break
		}
		switch op.Kind {
		case OpAttackCanceler:
			if !skipCanceler {
				b.opAttackCanceler(ctx)
			}
		case OpAccuracyCheck:
			b.opAccuracyCheck(ctx)
		case OpPPReduce:
			if !skipPPReduce {
				b.opPPReduce(ctx)
			}
		case OpCritCalc:
			ctx.Crit = b.opCritCalc(ctx)
		case OpDamageCalc:
			ctx.damage = b.CalcDamage(ctx.Attacker, ctx.Target, ctx.Move, ctx.Crit, ctx.Spread)
		case OpAdjustNormalDamage:
			if ctx.damage.Damage > 0 {
				ctx.adjDmg = b.AdjustNormalDamage(ctx.Attacker, ctx.Move, ctx.damage.Damage, ctx.Crit)
			}
		case OpDataHpUpdate:
			b.opDataHpUpdate(ctx)
		case OpTryFaintMon:
			b.opTryFaintMon(ctx)
		case OpSetEffectPrimary:
			b.dispatchPrimary(ctx)
		case OpSetEffectWithChance:
			b.dispatchSecondary(ctx, op.Chance)
		case OpNoOp:
			// animation/text placeholder
		}
	}

	if !ctx.failed && data.MoveEffectOf(move) == data.EffectExplosion {
		if atk := b.Combatant(attacker); atk != nil {
			atk.ApplyDamage(atk.HP)
			b.handleFaintIfNeeded(attacker)
		}
	}

	flags := b.Scratch.ResultFlags
	if ctx.missed {
		flags |= ResultMissed
	}
	if ctx.failed {
		flags |= ResultFailed
	}
	b.Scratch.ResultFlags = flags
	return flags
}

// opAttackCanceler checks the pre-move cancellation conditions: sleep,
// freeze, flinch, recharge, paralysis (25%), infatuation (50%),
// confusion (50% self-hit), Truant, Taunt/Disable on the chosen move, and
// Imprison. Torment and Encore are enforced before the script runs, by
// the orchestrator's moveUsable and resolveChosenMove.
func (b *Battle) opAttackCanceler(ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	vol := &b.Volatiles[ctx.Attacker]

	if atk.Status1.IsAsleep() && ctx.Move != data.MoveSleepTalk {
		atk.Status1 = atk.Status1.DecrementSleep()
		if atk.Status1.IsAsleep() {
			ctx.failed = true
			b.Log.append(LogEvent{Turn: b.Turn, Kind: EventMoveFailed, Battler: ctx.Attacker, Move: ctx.Move, Reason: "asleep"})
			return
		}
	}
	if atk.Status1.IsFrozen() {
		if !b.RNG.Percent(20) {
			ctx.failed = true
			b.Log.append(LogEvent{Turn: b.Turn, Kind: EventMoveFailed, Battler: ctx.Attacker, Move: ctx.Move, Reason: "frozen"})
			return
		}
		atk.Status1 = atk.Status1.Cleared()
	}
	if atk.Status2.Has(status2Flinched) {
		ctx.failed = true
		return
	}
	if vol.Disable.ChargeTurns < 0 { // recharge sentinel: -1 means "must recharge this turn"
		vol.Disable.ChargeTurns = 0
		ctx.failed = true
		return
	}
	if atk.Status1.IsParalyzed() && b.RNG.Percent(25) {
		ctx.failed = true
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventMoveFailed, Battler: ctx.Attacker, Move: ctx.Move, Reason: "paralysis"})
		return
	}
	if atk.Status2.IsInfatuated() && b.RNG.Percent(50) {
		ctx.failed = true
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventMoveFailed, Battler: ctx.Attacker, Move: ctx.Move, Reason: "infatuation"})
		return
	}
	if atk.Status2.IsConfused() {
		atk.Status2 = atk.Status2.DecrementConfusion()
		if b.RNG.Percent(50) {
			self := b.CalcDamage(ctx.Attacker, ctx.Attacker, data.MoveTackle, false, 1)
			atk.ApplyDamage(self.Damage)
			b.handleFaintIfNeeded(ctx.Attacker)
			ctx.failed = true
			return
		}
	}
	if atk.Ability == data.AbilityTruant && vol.Disable.Truant {
		vol.Disable.Truant = false
		ctx.failed = true
		return
	}
	if atk.Ability == data.AbilityTruant {
		vol.Disable.Truant = true
	}
	if vol.Disable.TauntTurns > 0 && data.MoveTable(ctx.Move).Power == 0 {
		ctx.failed = true
		return
	}
	if vol.Disable.DisabledMove == ctx.Move && vol.Disable.DisableTurns > 0 {
		ctx.failed = true
		return
	}
	if b.Scratch.Battlers[ctx.Attacker].ImprisonSealed[ctx.Move] {
		ctx.failed = true
		return
	}
}

// opAccuracyCheck resolves the move's hit roll, including the
// semi-invulnerable exceptions, Lock-On sure-hit, Hustle's physical
// accuracy penalty, and the stage-ratio-adjusted percent roll.
func (b *Battle) opAccuracyCheck(ctx *ExecCtx) {
	d := data.MoveTable(ctx.Move)
	atk := b.Combatant(ctx.Attacker)
	def := b.Combatant(ctx.Target)
	defVol := &b.Volatiles[ctx.Target]
	atkVol := &b.Volatiles[ctx.Attacker]

	if d.Accuracy == 0 {
		ctx.didHit = true
		return
	}
	if atkVol.Disable.LockOnTarget == ctx.Target && atkVol.Disable.LockOnTurns > 0 {
		ctx.didHit = true
		return
	}
	if defVol.Status3.Semi != SemiNone && !semiInvulnBypassed(ctx.Move, defVol.Status3.Semi) {
		ctx.missed = true
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventMoveMissed, Battler: ctx.Attacker, Move: ctx.Move})
		return
	}

	acc := d.Accuracy
	if ctx.Move == data.MoveThunder && b.Field.Weather == WeatherRain {
		acc = 100
	}
	if atk.Ability == data.AbilityHustle && d.Type.IsPhysical() {
		acc = acc * 80 / 100
	}
	accStage := atk.Stage(StatAccuracy) - def.Stage(StatEvasion)
	num, den := stageMultiplier(clamp(accStage, -6, 6))
	acc = acc * num / den

	if !b.RNG.Percent(clamp(acc, 1, 100)) {
		ctx.missed = true
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventMoveMissed, Battler: ctx.Attacker, Move: ctx.Move})
		return
	}
	ctx.didHit = true
}

func semiInvulnBypassed(move data.MoveID, state SemiInvulnState) bool {
	switch state {
	case SemiAir:
		return move == data.MoveThunder
	default:
		return false
	}
}

func (b *Battle) opPPReduce(ctx *ExecCtx) {
	if b.Scratch.HitMarker&HitNoPPDeduct != 0 {
		return
	}
	atk := b.Combatant(ctx.Attacker)
	for i := range atk.Moves {
		if atk.Moves[i].Move == ctx.Move && atk.Moves[i].PP > 0 {
			cost := 1
			for battler := 0; battler < 4; battler++ {
				if sideOf(battler) == sideOf(ctx.Attacker) || !b.Active[battler].Present {
					continue
				}
				if c := b.Combatant(battler); c != nil && c.Ability == data.AbilityPressure {
					cost++
				}
			}
			atk.Moves[i].PP -= cost
			if atk.Moves[i].PP < 0 {
				atk.Moves[i].PP = 0
			}
			break
		}
	}
	b.Scratch.Battlers[ctx.Attacker].LastUsedMove = ctx.Move
}

// opCritCalc resolves the critical-hit stage table: base stage 0, +2 for
// Focus Energy, +1 for a high-crit move, +1 for Scope Lens, +2 for
// Lucky Punch (Chansey) / Stick (Farfetch'd), clamped into the 5-entry
// chance table. Battle Armor/Shell Armor force no crit.
func (b *Battle) opCritCalc(ctx *ExecCtx) bool {
	atk := b.Combatant(ctx.Attacker)
	def := b.Combatant(ctx.Target)
	if def.Ability == data.AbilityBattleArmor || def.Ability == data.AbilityShellArmor {
		return false
	}
	stage := 0
	if atk.Status2.Has(status2FocusEnergy) {
		stage += 2
	}
	if data.MoveTable(ctx.Move).Flags.Has(data.FlagHighCrit) {
		stage++
	}
	if data.ItemTable(atk.Item).Effect == data.HoldScopeLens {
		stage++
	}
	if data.ItemTable(atk.Item).Effect == data.HoldLuckyPunch && atk.Species == data.SpeciesRattata {
		stage += 2
	}
	table := [...]int{16, 8, 4, 3, 2}
	if stage >= len(table) {
		stage = len(table) - 1
	}
	if stage < 0 {
		stage = 0
	}
	return b.RNG.Percent(100 / table[stage])
}

func (b *Battle) opDataHpUpdate(ctx *ExecCtx) {
	if !ctx.didHit || ctx.adjDmg <= 0 {
		return
	}
	def := b.Combatant(ctx.Target)
	defVol := &b.Volatiles[ctx.Target]
	dmg := ctx.adjDmg

	if defVol.Disable.SubstituteHP > 0 {
		absorbed := dmg
		if absorbed > defVol.Disable.SubstituteHP {
			absorbed = defVol.Disable.SubstituteHP
		}
		defVol.Disable.SubstituteHP -= absorbed
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: ctx.Target, Source: ctx.Attacker, Move: ctx.Move, Amount: absorbed, Crit: ctx.Crit, Effectiveness: ctx.damage.Effectiveness, Reason: "substitute"})
		return
	}

	willFaint := dmg >= def.HP
	if willFaint && defVol.Turn.Enduring {
		dmg = def.HP - 1
		b.Scratch.ResultFlags |= ResultEndured
	}
	if willFaint && def.HP == def.MaxHP && data.ItemTable(def.Item).Effect == data.HoldFocusBand {
		if b.RNG.Percent(data.ItemTable(def.Item).Param) {
			dmg = def.HP - 1
		}
	}

	applied := def.ApplyDamage(dmg)
	atkVol := &b.Volatiles[ctx.Attacker]
	physical := data.MoveTable(ctx.Move).Type.IsPhysical()
	if physical {
		atkVol.Turn.LastPhysicalDamage = applied
		atkVol.Turn.LastPhysicalSource = ctx.Attacker
		defVol.Turn.LastPhysicalDamage = applied
		defVol.Turn.LastPhysicalSource = ctx.Attacker
	} else {
		atkVol.Turn.LastSpecialDamage = applied
		atkVol.Turn.LastSpecialSource = ctx.Attacker
		defVol.Turn.LastSpecialDamage = applied
		defVol.Turn.LastSpecialSource = ctx.Attacker
	}
	if defVol.Disable.BideTurns > 0 {
		defVol.Disable.BideDamage += applied
		defVol.Disable.BideTarget = ctx.Attacker
	}
	defVol.Turn.NotFirstStrike = true
	b.Scratch.Battlers[ctx.Target].HitThisTurn = true
	b.Scratch.DamageDealt = applied

	if atkItem := data.ItemTable(b.Combatant(ctx.Attacker).Item); atkItem.Effect == data.HoldShellBell {
		b.Combatant(ctx.Attacker).Heal(applied / 8)
	}

	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: ctx.Target, Source: ctx.Attacker, Move: ctx.Move, Amount: applied, Crit: ctx.Crit, Effectiveness: ctx.damage.Effectiveness})

	if ctx.damage.Effectiveness > 1 {
		b.Scratch.ResultFlags |= ResultSuperEffective
	} else if ctx.damage.Effectiveness > 0 && ctx.damage.Effectiveness < 1 {
		b.Scratch.ResultFlags |= ResultNotVeryEffective
	}
}

func (b *Battle) opTryFaintMon(ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	if def == nil || def.HP > 0 {
		return
	}
	defVol := &b.Volatiles[ctx.Target]
	if defVol.Special.PendingBatonPass {
		// Baton Pass queued fainted mon cannot pass; cleared on replacement.
		defVol.Special.PendingBatonPass = false
	}
	if def.Status2.Has(status2DestinyBond) {
		atk := b.Combatant(ctx.Attacker)
		if atk != nil {
			atk.ApplyDamage(atk.HP)
		}
	}
	if b.Scratch.Battlers[ctx.Target].GrudgeActive {
		atk := b.Combatant(ctx.Attacker)
		if atk != nil {
			for i := range atk.Moves {
				if atk.Moves[i].Move == ctx.Move {
					atk.Moves[i].PP = 0
				}
			}
		}
	}
	b.handleFaintIfNeeded(ctx.Target)
	b.applySwitchInHazards(ctx.Target)
}

package battle

import "github.com/emeraldfactory/battlecore/data"

// stageNum/stageDen hold the thirteen (numerator, denominator) pairs
// mapping stat stages -6..+6 to a multiplier, indexed by stage+6.
var stageNum = [13]int{10, 10, 10, 10, 10, 10, 10, 15, 20, 25, 30, 35, 40}
var stageDen = [13]int{40, 35, 30, 25, 20, 15, 10, 10, 10, 10, 10, 10, 10}

func stageMultiplier(stage int) (num, den int) {
	if stage < -6 {
		stage = -6
	}
	if stage > 6 {
		stage = 6
	}
	return stageNum[stage+6], stageDen[stage+6]
}

// applyStatStage multiplies v by the stage-adjusted ratio for stage,
// clamping stage to -6..+6 first.
func applyStatStage(v, stage int) int {
	num, den := stageMultiplier(stage)
	return (v * num) / den
}

// DamageResult is what CalcDamage reports back to the script VM.
type DamageResult struct {
	Damage        int
	Effectiveness float64
	Immune        bool
	AbsorbedBy    data.AbilityID // Volt Absorb / Water Absorb, set when the hit is nullified and healed
	FlashFireSet  bool
}

// effectivePowerAndType resolves dynamic-power / dynamic-type overrides
// (§4.D step 1-2): Weather Ball, Hidden Power, Return/Frustration,
// Flail/Reversal, Eruption/Water Spout, Revenge, Facade, Rollout/Ice
// Ball, Fury Cutter, Spit Up, and the Minimize bonus flag (whether the
// move doubles against a Minimized target; CalcDamage checks the target
// and applies the flat ×2 post-formula). Low Kick and Smelling Salt need
// the defender and are resolved in CalcDamage.
func (b *Battle) effectivePowerAndType(attackerID int, move data.MoveID, base data.MoveData) (power int, typ data.Type, minimizeBonus bool) {
	atk := b.Combatant(attackerID)
	vol := &b.Volatiles[attackerID]
	scratch := &b.Scratch.Battlers[attackerID]
	power = base.Power
	typ = base.Type

	switch move {
	case data.MoveWeatherBall:
		switch b.Field.Weather {
		case WeatherSun:
			power = 100
			typ = data.Fire
		case WeatherRain:
			power = 100
			typ = data.Water
		case WeatherSandstorm:
			power = 100
			typ = data.Rock
		case WeatherHail:
			power = 100
			typ = data.Ice
		}
	case data.MoveHiddenPower:
		typ, power = hiddenPower(atk.IVs)
	case data.MoveReturn:
		power = int(float64(atk.Friendship) / 2.5)
		if power < 1 {
			power = 1
		}
	case data.MoveFrustration:
		power = int(float64(255-atk.Friendship) / 2.5)
		if power < 1 {
			power = 1
		}
	case data.MoveFlail, data.MoveReversal:
		power = flailPower(atk.HPPercent())
	case data.MoveEruption, data.MoveWaterSpout:
		power = (150 * atk.HP) / atk.MaxHP
		if power < 1 {
			power = 1
		}
	case data.MoveRevenge:
		if scratch.HitThisTurn {
			power *= 2
		}
	case data.MoveFacade:
		if !atk.Status1.None() {
			power *= 2
		}
	case data.MoveSmellingSalt:
		// doubled if target paralyzed; resolved by caller with defender context.
	case data.MoveRollout, data.MoveIceBall:
		mult := 1 << uint(vol.Disable.RolloutCount)
		if vol.Disable.DefenseCurlUsed {
			mult *= 2
		}
		power *= mult
	case data.MoveFuryCutter:
		mult := 1 << uint(vol.Disable.FuryCutterCount)
		power *= mult
		if power > 160 {
			power = 160
		}
	case data.MoveSpitUp:
		power = 100 * vol.Disable.Stockpile
	}
	return power, typ, minimizeBonusMove(move)
}

func minimizeBonusMove(move data.MoveID) bool {
	switch move {
	case data.MoveStomp:
		return true
	default:
		return false
	}
}

// hiddenPower derives type and power from the low bit of each IV, Gen-3
// style: type from bits HP,Atk,Def,Spe,SpA,SpD weighted 1,2,4,8,16,32,
// scaled by 15/63 into an index over a fixed 16-type cycle (Fighting..Dark,
// skipping Normal); power from the second-lowest bit of the same stats
// weighted the same way, scaled into 30..70.
func hiddenPower(ivs [6]int) (data.Type, int) {
	hpTypes := []data.Type{
		data.Fighting, data.Flying, data.Poison, data.Ground, data.Rock, data.Bug,
		data.Ghost, data.Steel, data.Fire, data.Water, data.Grass, data.Electric,
		data.Psychic, data.Ice, data.Dragon, data.Dark,
	}
	bit := func(v int) int { return v & 1 }
	bit2 := func(v int) int { return (v >> 1) & 1 }
	typeSum := bit(ivs[0]) + 2*bit(ivs[1]) + 4*bit(ivs[2]) + 8*bit(ivs[3]) + 16*bit(ivs[4]) + 32*bit(ivs[5])
	typeIdx := (typeSum * 15) / 63
	if typeIdx >= len(hpTypes) {
		typeIdx = len(hpTypes) - 1
	}
	powerSum := bit2(ivs[0]) + 2*bit2(ivs[1]) + 4*bit2(ivs[2]) + 8*bit2(ivs[3]) + 16*bit2(ivs[4]) + 32*bit2(ivs[5])
	power := 30 + (powerSum*40)/63
	return hpTypes[typeIdx], power
}

func flailPower(hpPct float64) int {
	switch {
	case hpPct <= 1.0/48:
		return 200
	case hpPct <= 1.0/8:
		return 150
	case hpPct <= 1.0/4:
		return 100
	case hpPct <= 1.0/3:
		return 80
	case hpPct <= 1.0/2:
		return 40
	default:
		return 20
	}
}

// lowKickPowerForWeight resolves Low Kick's power from target weight in
// hectograms per the Gen-3 weight table.
func lowKickPowerForWeight(hg int) int {
	switch {
	case hg < 100:
		return 20
	case hg < 250:
		return 40
	case hg < 500:
		return 60
	case hg < 1000:
		return 80
	case hg < 2000:
		return 100
	default:
		return 120
	}
}

// CalcDamage computes one integer damage value for attackerID hitting
// defenderID with move, per §4.D. crit indicates a confirmed critical
// hit (computed by the caller's CritCalc step). spreadTargets is the
// number of targets this move is hitting this turn (>1 applies the
// doubles spread penalty).
func (b *Battle) CalcDamage(attackerID, defenderID int, move data.MoveID, crit bool, spreadTargets int) DamageResult {
	atk := b.Combatant(attackerID)
	def := b.Combatant(defenderID)
	base := data.MoveTable(move)
	atkVol := &b.Volatiles[attackerID]
	defVol := &b.Volatiles[defenderID]

	power, typ, minimizeBonus := b.effectivePowerAndType(attackerID, move, base)
	if move == data.MoveLowKick {
		power = lowKickPowerForWeight(data.SpeciesTable(def.Species).WeightHectograms)
	}
	if move == data.MoveSmellingSalt && def.Status1.IsParalyzed() {
		power *= 2
	}

	if power <= 0 {
		return DamageResult{Damage: 0}
	}

	// Immunities / redirection that short-circuit the rest of the formula.
	if typ == data.Electric && def.Ability == data.AbilityVoltAbsorb {
		def.Heal(def.MaxHP / 4)
		return DamageResult{Damage: 0, AbsorbedBy: data.AbilityVoltAbsorb}
	}
	if typ == data.Water && def.Ability == data.AbilityWaterAbsorb {
		def.Heal(def.MaxHP / 4)
		return DamageResult{Damage: 0, AbsorbedBy: data.AbilityWaterAbsorb}
	}
	if typ == data.Fire && def.Ability == data.AbilityFlashFire {
		defVol.Special.FlashFireBoosted = true
		return DamageResult{Damage: 0, FlashFireSet: true}
	}

	physical := typ.IsPhysical()

	var atkStat, defStat int
	if physical {
		atkStat = atk.BaseStat[1]
		defStat = def.BaseStat[2]
	} else {
		atkStat = atk.BaseStat[4]
		defStat = def.BaseStat[5]
	}

	// Huge Power / Pure Power.
	if physical && (atk.Ability == data.AbilityHugePower || atk.Ability == data.AbilityPurePower) {
		atkStat *= 2
	}

	// Item effects on attack stats.
	item := data.ItemTable(atk.Item)
	switch item.Effect {
	case data.HoldChoiceBand:
		if physical {
			atkStat = atkStat * 3 / 2
		}
	case data.HoldThickClub:
		if physical && (atk.Species == data.SpeciesCubone || atk.Species == data.SpeciesMarowak) {
			atkStat *= 2
		}
	case data.HoldLightBall:
		if !physical && atk.Species == data.SpeciesPikachu {
			atkStat *= 2
		}
	case data.HoldDeepSeaTooth:
		if !physical && atk.Species == data.SpeciesClamperl {
			atkStat *= 2
		}
	}
	defItem := data.ItemTable(def.Item)
	if defItem.Effect == data.HoldDeepSeaScale && !physical && def.Species == data.SpeciesClamperl {
		defStat *= 2
	}
	if defItem.Effect == data.HoldMetalPowder && physical && def.Species == data.SpeciesDitto {
		defStat *= 2
	}
	if def.Ability == data.AbilityMarvelScale && physical && !def.Status1.None() {
		defStat = defStat * 3 / 2
	}

	// Type-bonus held items (+10% power when the type matches).
	if boostType, ok := data.TypeBoostType[atk.Item]; ok && boostType == typ {
		power = power * 110 / 100
	}

	// Abilities affecting attack stats / power.
	switch atk.Ability {
	case data.AbilityHustle:
		if physical {
			atkStat = atkStat * 3 / 2
		}
	case data.AbilityGuts:
		if physical && atk.Status1 != 0 {
			atkStat = atkStat * 3 / 2
		}
	case data.AbilityOvergrow:
		if typ == data.Grass && atk.HPPercent() <= 1.0/3 {
			power = power * 3 / 2
		}
	case data.AbilityBlaze:
		if typ == data.Fire && atk.HPPercent() <= 1.0/3 {
			power = power * 3 / 2
		}
	case data.AbilityTorrent:
		if typ == data.Water && atk.HPPercent() <= 1.0/3 {
			power = power * 3 / 2
		}
	case data.AbilitySwarm:
		if typ == data.Bug && atk.HPPercent() <= 1.0/3 {
			power = power * 3 / 2
		}
	}
	if def.Ability == data.AbilityThickFat && (typ == data.Fire || typ == data.Ice) && !physical {
		atkStat /= 2
	}

	// Explosion/Self-Destruct halve defender's Defense.
	if data.MoveEffectOf(move) == data.EffectExplosion {
		defStat /= 2
	}

	// Apply stat stages; crits ignore negative attacker stages and
	// positive defender stages.
	atkStageIdx := StatAtk
	defStageIdx := StatDef
	if !physical {
		atkStageIdx = StatSpA
		defStageIdx = StatSpD
	}
	atkStage := atk.Stage(atkStageIdx)
	defStage := def.Stage(defStageIdx)
	if crit {
		if atkStage < 0 {
			atkStage = 0
		}
		if defStage > 0 {
			defStage = 0
		}
	}
	atkStat = applyStatStage(atkStat, atkStage)
	defStat = applyStatStage(defStat, defStage)
	if atkStat < 1 {
		atkStat = 1
	}
	if defStat < 1 {
		defStat = 1
	}

	level := atk.Level
	dmg := (((2*level)/5 + 2) * power * atkStat / defStat) / 50

	if physical && atk.Status1.IsBurned() && move != data.MoveFacade {
		dmg /= 2
	}

	// Screens.
	side := b.Sides[sideOf(defenderID)]
	if !crit {
		spread := spreadTargets > 1
		if physical && side.Has(SideReflect) {
			if spread {
				dmg = dmg * 2 / 3
			} else {
				dmg /= 2
			}
		}
		if !physical && side.Has(SideLightScreen) {
			if spread {
				dmg = dmg * 2 / 3
			} else {
				dmg /= 2
			}
		}
	}
	if spreadTargets > 1 {
		dmg = dmg / 2
	}

	// Weather.
	actives := [4]*Combatant{b.Combatant(0), b.Combatant(1), b.Combatant(2), b.Combatant(3)}
	if !b.Field.NeutralizesWeather(actives) {
		switch b.Field.Weather {
		case WeatherRain:
			if typ == data.Water {
				dmg = dmg * 3 / 2
			} else if typ == data.Fire {
				dmg /= 2
			}
		case WeatherSun:
			if typ == data.Fire {
				dmg = dmg * 3 / 2
			} else if typ == data.Water {
				dmg /= 2
			}
		}
	}

	if typ == data.Electric && b.anyActiveHasSport(mudSport) {
		dmg /= 2
	}
	if typ == data.Fire && b.anyActiveHasSport(waterSport) {
		dmg /= 2
	}

	eff1 := data.TypeEffectiveness(typ, def.Type1, false)
	effMul := eff1.Multiplier()
	if def.Type2 != def.Type1 {
		eff2 := data.TypeEffectiveness(typ, def.Type2, false)
		effMul *= eff2.Multiplier()
	}
	if effMul == 0 {
		return DamageResult{Damage: 0, Effectiveness: 0, Immune: true}
	}
	dmg = int(float64(dmg) * effMul)

	if typ == data.Fire && atkVol.Special.FlashFireBoosted {
		dmg = dmg * 3 / 2
	}

	dmg += 2

	if minimizeBonus && defVol.Status3.Minimized {
		dmg *= 2
	}

	if dmg < 1 {
		dmg = 1
	}

	return DamageResult{Damage: dmg, Effectiveness: effMul}
}

type sportKind uint8

const (
	mudSport sportKind = iota
	waterSport
)

// anyActiveHasSport reports whether any currently active battler has
// used Mud Sport or Water Sport this battle (the flag persists until
// switch-out, matching §4.D step 7's "while any battler has the flag").
func (b *Battle) anyActiveHasSport(kind sportKind) bool {
	for i := 0; i < 4; i++ {
		if !b.Active[i].Present {
			continue
		}
		s3 := b.Volatiles[i].Status3
		if kind == mudSport && s3.MudSport {
			return true
		}
		if kind == waterSport && s3.WaterSport {
			return true
		}
	}
	return false
}

// AdjustNormalDamage applies the post-TypeCalc modifiers the script's
// adjust step owns: STAB, the 85-100 random roll, the critical
// multiplier, Helping Hand, and Charge (§4.F AdjustNormalDamage).
func (b *Battle) AdjustNormalDamage(attackerID int, move data.MoveID, dmg int, crit bool) int {
	atk := b.Combatant(attackerID)
	typ := data.MoveTable(move).Type
	if atk.HasType(typ) {
		dmg = dmg * 3 / 2
	}
	roll := 85 + b.RNG.Choice(16)
	dmg = dmg * roll / 100
	if dmg < 1 {
		dmg = 1
	}
	if crit {
		dmg *= 2
	}
	vol := &b.Volatiles[attackerID]
	if vol.Turn.HelpingHand {
		dmg = dmg * 3 / 2
		vol.Turn.HelpingHand = false
	}
	if typ == data.Electric && vol.Disable.ChargeTurns > 0 {
		dmg *= 2
		vol.Disable.ChargeTurns = 0
	}
	return dmg
}

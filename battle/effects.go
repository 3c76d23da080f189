package battle

import "github.com/emeraldfactory/battlecore/data"

// primaryHandler runs a pure-status or setup move's effect (SetEffectPrimary).
type primaryHandler func(b *Battle, ctx *ExecCtx)

// secondaryHandler runs a damaging move's chance-gated secondary effect
// (SetEffectWithChance), invoked only once the chance gate has passed.
type secondaryHandler func(b *Battle, ctx *ExecCtx)

// primaryEffects is filled in init: some handlers (Nature Power) re-enter
// runMove, which reads this table, so a package-level initializer would
// be an initialization cycle.
var primaryEffects map[data.MoveEffect]primaryHandler

func init() {
	primaryEffects = map[data.MoveEffect]primaryHandler{
	data.EffectSleep:       effectSleep,
	data.EffectPoison:      effectPoison,
	data.EffectToxic:       effectToxic,
	data.EffectWillOWisp:   effectBurn,
	data.EffectParalyze:    effectParalyze,
	data.EffectConfuse:     effectConfuse,
	data.EffectAttract:     effectAttract,
	data.EffectTaunt:       effectTaunt,
	data.EffectTorment:     effectTorment,
	data.EffectDisable:     effectDisable,
	data.EffectEncore:      effectEncore,
	data.EffectStatUp:      effectStatUpOne,
	data.EffectStatUp2:     effectStatUpTwo,
	data.EffectStatDown:    effectStatDownOne,
	data.EffectDragonRage:  effectDragonRage,
	data.EffectSonicBoom:   effectSonicBoom,
	data.EffectLevelDamage: effectLevelDamage,
	data.EffectSuperFang:   effectSuperFang,
	data.EffectEndeavor:    effectEndeavor,
	data.EffectHealHalf:    effectHealHalf,
	data.EffectRest:        effectRest,
	data.EffectWeatherHeal: effectWeatherHeal,
	data.EffectReflect:     effectReflect,
	data.EffectLightScreen: effectLightScreen,
	data.EffectSafeguard:   effectSafeguard,
	data.EffectMist:        effectMist,
	data.EffectSpikes:      effectSpikes,
	data.EffectProtect:     effectProtect,
	data.EffectEndure:      effectEndure,
	data.EffectSubstitute:  effectSubstitute,
	data.EffectPhaze:       effectPhaze,
	data.EffectDestinyBond: effectDestinyBond,
	data.EffectGrudge:      effectGrudge,
	data.EffectPerishSong:  effectPerishSong,
	data.EffectImprison:    effectImprison,
	data.EffectIngrain:     effectIngrain,
	data.EffectWeatherSun:  effectWeatherSun,
	data.EffectWeatherRain: effectWeatherRain,
	data.EffectWeatherSand: effectWeatherSand,
	data.EffectWeatherHail: effectWeatherHail,
	data.EffectStockpile:   effectStockpile,
	data.EffectSwallow:     effectSwallow,
	data.EffectWish:        effectWish,
	data.EffectCamouflage:  effectCamouflage,
	data.EffectNaturePower: effectNaturePower,
	data.EffectMimic:       effectMimic,
	data.EffectSketch:      effectSketch,
	data.EffectRolePlay:    effectRolePlay,
	data.EffectSleepTalk:   effectSleepTalk,
	data.EffectLeechSeed:   effectLeechSeed,
	data.EffectNightmare:   effectNightmare,
	data.EffectCurse:       effectCurse,
	data.EffectYawn:        effectYawn,
	data.EffectDefenseCurl: effectDefenseCurl,
	data.EffectMinimize:    effectMinimize,
	data.EffectFocusEnergy: effectFocusEnergy,
	data.EffectFollowMe:    effectFollowMe,
	}
}

var secondaryEffects = map[data.MoveEffect]secondaryHandler{
	data.EffectPoisonHit:    secondaryPoison,
	data.EffectBurnHit:      secondaryBurn,
	data.EffectParalyzeHit:  secondaryParalyze,
	data.EffectFreezeHit:    secondaryFreeze,
	data.EffectConfuseHit:   secondaryConfuse,
	data.EffectFlinchHit:    secondaryFlinch,
	data.EffectStatDownHit:  secondaryStatDown,
	data.EffectStatUpHit:    secondaryStatUp,
	data.EffectRecoil:       secondaryRecoil,
	data.EffectDrain:        secondaryDrain,
	data.EffectSecretPower:  secondarySecretPower,
	data.EffectWrap:         effectWrap,
	data.EffectUproar:       effectUproar,
}

func (b *Battle) dispatchPrimary(ctx *ExecCtx) {
	eff := data.MoveEffectOf(ctx.Move)
	if h, ok := primaryEffects[eff]; ok {
		h(b, ctx)
	}
}

// dispatchSecondary applies Serene Grace doubling and Shield Dust
// suppression, rolls the chance gate, then runs the handler.
func (b *Battle) dispatchSecondary(ctx *ExecCtx, chance int) {
	if !ctx.didHit || ctx.adjDmg <= 0 && data.MoveTable(ctx.Move).Power > 0 {
		return
	}
	def := b.Combatant(ctx.Target)
	if def == nil {
		return
	}
	if def.Ability == data.AbilityShieldDust {
		return
	}
	atk := b.Combatant(ctx.Attacker)
	if chance <= 0 {
		chance = 100
	} else if atk.Ability == data.AbilitySereneGrace {
		chance *= 2
		if chance > 100 {
			chance = 100
		}
	}
	if !b.RNG.Percent(chance) {
		return
	}
	eff := data.MoveEffectOf(ctx.Move)
	if h, ok := secondaryEffects[eff]; ok {
		h(b, ctx)
	}
}

// canApplyMajorStatus enforces the shared immunity gate for every major
// status: already-statused, Substitute, and side-wide Safeguard.
func canApplyMajorStatus(b *Battle, target int) bool {
	def := b.Combatant(target)
	if def == nil || !def.Status1.None() {
		return false
	}
	if b.Volatiles[target].Disable.SubstituteHP > 0 {
		return false
	}
	if b.Sides[sideOf(target)].SafeguardTurns > 0 {
		return false
	}
	return true
}

func effectSleep(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	if !canApplyMajorStatus(b, ctx.Target) {
		return
	}
	if def.Ability == data.AbilityInsomnia || def.Ability == data.AbilityVitalSpirit {
		return
	}
	if def.Status2.IsUproaring() {
		return
	}
	def.Status1 = def.Status1.WithSleep(1 + b.RNG.Choice(4))
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: ctx.Target, Source: ctx.Attacker, Reason: "sleep"})
}

func effectPoison(b *Battle, ctx *ExecCtx) { applyPoison(b, ctx.Attacker, ctx.Target) }

func applyPoison(b *Battle, attacker, target int) {
	def := b.Combatant(target)
	if !canApplyMajorStatus(b, target) {
		return
	}
	if def.HasType(data.Poison) || def.HasType(data.Steel) {
		return
	}
	def.Status1 = def.Status1.WithPoison()
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: target, Source: attacker, Reason: "poison"})
}

func effectToxic(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	if !canApplyMajorStatus(b, ctx.Target) {
		return
	}
	if def.HasType(data.Poison) || def.HasType(data.Steel) {
		return
	}
	def.Status1 = def.Status1.WithToxic()
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: ctx.Target, Source: ctx.Attacker, Reason: "toxic"})
}

func effectBurn(b *Battle, ctx *ExecCtx) { applyBurn(b, ctx.Attacker, ctx.Target) }

func applyBurn(b *Battle, attacker, target int) {
	def := b.Combatant(target)
	if !canApplyMajorStatus(b, target) {
		return
	}
	if def.HasType(data.Fire) {
		return
	}
	def.Status1 = def.Status1.WithBurn()
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: target, Source: attacker, Reason: "burn"})
}

func effectParalyze(b *Battle, ctx *ExecCtx) { applyParalyze(b, ctx.Attacker, ctx.Target) }

func applyParalyze(b *Battle, attacker, target int) {
	def := b.Combatant(target)
	if !canApplyMajorStatus(b, target) {
		return
	}
	if def.HasType(data.Electric) {
		return
	}
	def.Status1 = def.Status1.WithParalysis()
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: target, Source: attacker, Reason: "paralysis"})
}

func applyFreeze(b *Battle, attacker, target int) {
	def := b.Combatant(target)
	if !canApplyMajorStatus(b, target) {
		return
	}
	if def.HasType(data.Ice) || def.Ability == data.AbilityMagmaArmor {
		return
	}
	def.Status1 = def.Status1.WithFreeze()
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: target, Source: attacker, Reason: "freeze"})
}

func effectConfuse(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	if def.Ability == data.AbilityOwnTempo || def.Status2.IsConfused() {
		return
	}
	if b.Volatiles[ctx.Target].Disable.SubstituteHP > 0 {
		return
	}
	def.Status2 = def.Status2.WithConfusion(2 + b.RNG.Choice(4))
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: ctx.Target, Source: ctx.Attacker, Reason: "confusion"})
}

func effectAttract(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	if def.Ability == data.AbilityOblivious || def.Status2.IsInfatuated() {
		return
	}
	def.Status2 = def.Status2.WithInfatuation(ctx.Attacker)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: ctx.Target, Source: ctx.Attacker, Reason: "infatuation"})
}

func effectTaunt(b *Battle, ctx *ExecCtx) {
	b.Volatiles[ctx.Target].Disable.TauntTurns = 2 + b.RNG.Choice(4)
}

func effectTorment(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	def.Status2 |= status2Torment
}

func effectDisable(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	target := b.Scratch.Battlers[ctx.Target].LastUsedMove
	if target == data.MoveNone {
		return
	}
	found := false
	for _, m := range def.Moves {
		if m.Move == target && m.PP > 0 {
			found = true
			break
		}
	}
	if !found {
		return
	}
	b.Volatiles[ctx.Target].Disable.DisabledMove = target
	b.Volatiles[ctx.Target].Disable.DisableTurns = 2 + b.RNG.Choice(4)
}

func effectEncore(b *Battle, ctx *ExecCtx) {
	last := b.Scratch.Battlers[ctx.Target].LastUsedMove
	if last == data.MoveNone {
		return
	}
	def := b.Combatant(ctx.Target)
	slot := -1
	for i, m := range def.Moves {
		if m.Move == last {
			slot = i
			break
		}
	}
	if slot < 0 {
		return
	}
	vol := &b.Volatiles[ctx.Target]
	vol.Disable.EncoreMove = last
	vol.Disable.EncoreSlot = slot
	vol.Disable.EncoreTurns = 3 + b.RNG.Choice(5)
}

func canLowerStat(b *Battle, target int, idx StatIndex) bool {
	def := b.Combatant(target)
	side := b.Sides[sideOf(target)]
	if side.MistTurns > 0 {
		return false
	}
	if def.Ability == data.AbilityClearBody || def.Ability == data.AbilityWhiteSmoke {
		return false
	}
	if idx == StatAtk && def.Ability == data.AbilityHyperCutter {
		return false
	}
	if idx == StatAccuracy && def.Ability == data.AbilityKeenEye {
		return false
	}
	return true
}

func changeStage(b *Battle, actor, target int, idx StatIndex, delta int, isLowering bool) {
	if isLowering && !canLowerStat(b, target, idx) {
		return
	}
	c := b.Combatant(target)
	applied := c.ModifyStage(idx, delta)
	if applied == 0 {
		return
	}
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStageChanged, Battler: target, Source: actor, Stat: idx, Delta: applied})
}

func effectStatUpOne(b *Battle, ctx *ExecCtx) {
	changeStage(b, ctx.Attacker, ctx.Attacker, moveStatIndex(ctx.Move), 1, false)
}
func effectStatUpTwo(b *Battle, ctx *ExecCtx) {
	changeStage(b, ctx.Attacker, ctx.Attacker, moveStatIndex(ctx.Move), 2, false)
}
func effectStatDownOne(b *Battle, ctx *ExecCtx) {
	changeStage(b, ctx.Attacker, ctx.Target, moveStatIndex(ctx.Move), -1, true)
}
func secondaryStatDown(b *Battle, ctx *ExecCtx) {
	changeStage(b, ctx.Attacker, ctx.Target, moveStatIndex(ctx.Move), -1, true)
}
func secondaryStatUp(b *Battle, ctx *ExecCtx) {
	changeStage(b, ctx.Attacker, ctx.Attacker, moveStatIndex(ctx.Move), 1, false)
}

// moveStatIndex maps the handful of stat-affecting moves wired into the
// table to the stat they target; unrecognized moves default to Attack.
func moveStatIndex(move data.MoveID) StatIndex {
	switch move {
	case data.MoveSwordsDance:
		return StatAtk
	case data.MoveGrowl:
		return StatAtk
	case data.MoveTailWhip, data.MoveHarden:
		return StatDef
	case data.MoveStringShot:
		return StatSpe
	case data.MoveScaryFace:
		return StatSpe
	case data.MoveSandAttack:
		return StatAccuracy
	case data.MoveShadowBall:
		return StatSpD
	default:
		return StatAtk
	}
}

func effectDragonRage(b *Battle, ctx *ExecCtx) { fixedDamage(b, ctx, 40) }
func effectSonicBoom(b *Battle, ctx *ExecCtx)  { fixedDamage(b, ctx, 20) }
func effectLevelDamage(b *Battle, ctx *ExecCtx) {
	fixedDamage(b, ctx, b.Combatant(ctx.Attacker).Level)
}

func fixedDamage(b *Battle, ctx *ExecCtx, amount int) {
	def := b.Combatant(ctx.Target)
	applied := def.ApplyDamage(amount)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: ctx.Target, Source: ctx.Attacker, Move: ctx.Move, Amount: applied})
	b.handleFaintIfNeeded(ctx.Target)
}

func effectSuperFang(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	amount := def.HP / 2
	if amount < 1 {
		amount = 1
	}
	fixedDamage(b, ctx, amount)
}

func effectEndeavor(b *Battle, ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	def := b.Combatant(ctx.Target)
	if atk.HP >= def.HP {
		ctx.failed = true
		return
	}
	fixedDamage(b, ctx, def.HP-atk.HP)
}

func effectHealHalf(b *Battle, ctx *ExecCtx) {
	c := b.Combatant(ctx.Attacker)
	healed := c.Heal(c.MaxHP / 2)
	if healed > 0 {
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: ctx.Attacker, Amount: healed})
	}
}

func effectRest(b *Battle, ctx *ExecCtx) {
	c := b.Combatant(ctx.Attacker)
	if c.Ability == data.AbilityInsomnia || c.Ability == data.AbilityVitalSpirit {
		ctx.failed = true
		return
	}
	c.Status1 = c.Status1.WithSleep(2)
	healed := c.Heal(c.MaxHP)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: ctx.Attacker, Amount: healed, Reason: "rest"})
}

func effectWeatherHeal(b *Battle, ctx *ExecCtx) {
	c := b.Combatant(ctx.Attacker)
	frac := 2
	switch b.Field.Weather {
	case WeatherSun:
		frac = 3
	case WeatherRain, WeatherSandstorm, WeatherHail:
		frac = 4
	}
	var amount int
	if frac == 3 {
		amount = (c.MaxHP * 2) / 3
	} else {
		amount = c.MaxHP / frac
	}
	healed := c.Heal(amount)
	if healed > 0 {
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: ctx.Attacker, Amount: healed})
	}
}

func effectReflect(b *Battle, ctx *ExecCtx) {
	side := b.Sides[sideOf(ctx.Attacker)]
	side.Statuses |= SideReflect
	side.ReflectTurns = 5
}
func effectLightScreen(b *Battle, ctx *ExecCtx) {
	side := b.Sides[sideOf(ctx.Attacker)]
	side.Statuses |= SideLightScreen
	side.LightScreenTurns = 5
}
func effectSafeguard(b *Battle, ctx *ExecCtx) {
	side := b.Sides[sideOf(ctx.Attacker)]
	side.Statuses |= SideSafeguard
	side.SafeguardTurns = 5
}
func effectMist(b *Battle, ctx *ExecCtx) {
	side := b.Sides[sideOf(ctx.Attacker)]
	side.Statuses |= SideMist
	side.MistTurns = 5
}

func effectSpikes(b *Battle, ctx *ExecCtx) {
	side := b.Sides[sideOf(ctx.Target)]
	if side.SpikesLayers >= 3 {
		ctx.failed = true
		return
	}
	side.SpikesLayers++
	side.Statuses |= SideSpikesPresent
}

func effectProtect(b *Battle, ctx *ExecCtx) {
	vol := &b.Volatiles[ctx.Attacker]
	chance := protectChance(vol.Disable.ProtectChain)
	if !b.RNG.Percent(chance) {
		vol.Disable.ProtectChain = 0
		ctx.failed = true
		return
	}
	vol.Turn.Protecting = true
	vol.Disable.ProtectChain++
}

func effectEndure(b *Battle, ctx *ExecCtx) {
	vol := &b.Volatiles[ctx.Attacker]
	chance := protectChance(vol.Disable.ProtectChain)
	if !b.RNG.Percent(chance) {
		vol.Disable.ProtectChain = 0
		ctx.failed = true
		return
	}
	vol.Turn.Enduring = true
	vol.Disable.ProtectChain++
}

func protectChance(consecutiveUses int) int {
	chance := 100
	for i := 0; i < consecutiveUses; i++ {
		chance /= 2
	}
	if chance < 1 {
		chance = 1
	}
	return chance
}

func effectSubstitute(b *Battle, ctx *ExecCtx) {
	c := b.Combatant(ctx.Attacker)
	cost := c.MaxHP / 4
	if cost < 1 {
		cost = 1
	}
	if c.HP <= cost {
		ctx.failed = true
		return
	}
	c.ApplyDamage(cost)
	b.Volatiles[ctx.Attacker].Disable.SubstituteHP = cost
	b.Combatant(ctx.Attacker).Status2 |= status2Substitute
}

func effectPhaze(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	defVol := &b.Volatiles[ctx.Target]
	if def.Ability == data.AbilitySuctionCups || b.Combatant(ctx.Attacker).Ability == data.AbilitySuctionCups {
		ctx.failed = true
		return
	}
	if ctx.Move == data.MoveRoar && def.Ability == data.AbilitySoundproof {
		ctx.failed = true
		return
	}
	if defVol.Status3.Rooted || def.Status2.Has(status2EscapePrevent) {
		ctx.failed = true
		return
	}
	party := b.Parties[sideOf(ctx.Target)]
	idx := party.FirstAlive(b.Active[ctx.Target].PartyIndex)
	if idx < 0 {
		ctx.failed = true
		return
	}
	b.switchIn(ctx.Target, idx, false)
}

func effectDestinyBond(b *Battle, ctx *ExecCtx) {
	c := b.Combatant(ctx.Attacker)
	c.Status2 |= status2DestinyBond
}

func effectGrudge(b *Battle, ctx *ExecCtx) {
	b.Scratch.Battlers[ctx.Attacker].GrudgeActive = true
}

func effectPerishSong(b *Battle, ctx *ExecCtx) {
	for battler := 0; battler < 4; battler++ {
		if !b.Active[battler].Present {
			continue
		}
		c := b.Combatant(battler)
		if c == nil || c.Ability == data.AbilitySoundproof {
			continue
		}
		if b.Volatiles[battler].Disable.PerishSongTurns == 0 {
			b.Volatiles[battler].Disable.PerishSongTurns = 3
		}
	}
}

func effectImprison(b *Battle, ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	side := sideOf(ctx.Attacker)
	for battler := 0; battler < 4; battler++ {
		if sideOf(battler) == side || !b.Active[battler].Present {
			continue
		}
		def := b.Combatant(battler)
		if def == nil {
			continue
		}
		sealed := b.Scratch.Battlers[battler].ImprisonSealed
		for _, m := range atk.Moves {
			if m.Move == data.MoveNone {
				continue
			}
			for _, dm := range def.Moves {
				if dm.Move == m.Move {
					sealed[m.Move] = true
				}
			}
		}
	}
}

func effectIngrain(b *Battle, ctx *ExecCtx) {
	b.Volatiles[ctx.Attacker].Status3.Rooted = true
}

func effectWeatherSun(b *Battle, ctx *ExecCtx) {
	b.Field.Weather = WeatherSun
	b.Field.WeatherTurns = 5
}
func effectWeatherRain(b *Battle, ctx *ExecCtx) {
	b.Field.Weather = WeatherRain
	b.Field.WeatherTurns = 5
}
func effectWeatherSand(b *Battle, ctx *ExecCtx) {
	b.Field.Weather = WeatherSandstorm
	b.Field.WeatherTurns = 5
}
func effectWeatherHail(b *Battle, ctx *ExecCtx) {
	b.Field.Weather = WeatherHail
	b.Field.WeatherTurns = 5
}

func effectStockpile(b *Battle, ctx *ExecCtx) {
	vol := &b.Volatiles[ctx.Attacker]
	if vol.Disable.Stockpile >= 3 {
		ctx.failed = true
		return
	}
	vol.Disable.Stockpile++
}

func effectSwallow(b *Battle, ctx *ExecCtx) {
	vol := &b.Volatiles[ctx.Attacker]
	if vol.Disable.Stockpile == 0 {
		ctx.failed = true
		return
	}
	c := b.Combatant(ctx.Attacker)
	frac := [...]int{0, 4, 2, 1}[vol.Disable.Stockpile]
	var healed int
	if frac == 1 {
		healed = c.Heal(c.MaxHP)
	} else {
		healed = c.Heal(c.MaxHP / frac)
	}
	vol.Disable.Stockpile = 0
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: ctx.Attacker, Amount: healed})
}

func secondaryPoison(b *Battle, ctx *ExecCtx)    { applyPoison(b, ctx.Attacker, ctx.Target) }
func secondaryBurn(b *Battle, ctx *ExecCtx)      { applyBurn(b, ctx.Attacker, ctx.Target) }
func secondaryParalyze(b *Battle, ctx *ExecCtx)  { applyParalyze(b, ctx.Attacker, ctx.Target) }
func secondaryFreeze(b *Battle, ctx *ExecCtx)    { applyFreeze(b, ctx.Attacker, ctx.Target) }
func secondaryConfuse(b *Battle, ctx *ExecCtx)   { effectConfuse(b, ctx) }
func secondaryFlinch(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	def.Status2 |= status2Flinched
}
func secondaryRecoil(b *Battle, ctx *ExecCtx) {
	c := b.Combatant(ctx.Attacker)
	recoil := ctx.adjDmg / 4
	if recoil < 1 {
		recoil = 1
	}
	applied := c.ApplyDamage(recoil)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: ctx.Attacker, Amount: applied, Reason: "recoil"})
	b.handleFaintIfNeeded(ctx.Attacker)
}
func secondaryDrain(b *Battle, ctx *ExecCtx) {
	c := b.Combatant(ctx.Attacker)
	heal := ctx.adjDmg / 2
	if heal < 1 {
		heal = 1
	}
	healed := c.Heal(heal)
	if healed > 0 {
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: ctx.Attacker, Amount: healed, Reason: "drain"})
	}
}

func effectWish(b *Battle, ctx *ExecCtx) {
	d := &b.Delayed[ctx.Attacker]
	if d.WishTurns > 0 {
		ctx.failed = true
		return
	}
	d.WishTurns = 2
	d.WishOrigin = b.Active[ctx.Attacker].PartyIndex
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDelayedSchedule, Battler: ctx.Attacker, Reason: "wish"})
}

// environmentType maps a field Environment to the type Camouflage/Nature
// Power resolve against; limited to the types this engine's subset can
// exercise meaningfully.
func environmentType(env Environment) data.Type {
	switch env {
	case EnvGrass, EnvLongGrass:
		return data.Grass
	case EnvWater, EnvPond, EnvUnderwater:
		return data.Water
	case EnvSand:
		return data.Ground
	case EnvCave, EnvMountain:
		return data.Rock
	default:
		return data.Normal
	}
}

func effectCamouflage(b *Battle, ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	t := environmentType(b.Field.Environment)
	atk.Type1 = t
	atk.Type2 = t
}

// natureMoveByEnvironment maps a field Environment to the representative
// move Nature Power resolves into, limited to moves already wired in the
// table.
func natureMoveByEnvironment(env Environment) data.MoveID {
	switch env {
	case EnvGrass, EnvLongGrass:
		return data.MoveStunSpore
	case EnvWater, EnvPond, EnvUnderwater:
		return data.MoveSurf
	case EnvSand, EnvMountain:
		return data.MoveEarthquake
	case EnvCave:
		return data.MoveShadowBall
	default:
		return data.MoveTackle
	}
}

// opponentOf returns the battler on the opposing side directly across
// from battler (singles-style 1-to-1 mapping; doubles target selection
// is the caller's job for spread-capable moves).
func opponentOf(b *Battle, battler int) int {
	return battler ^ 1
}

func effectNaturePower(b *Battle, ctx *ExecCtx) {
	pick := natureMoveByEnvironment(b.Field.Environment)
	b.runCalledMove(ctx.Attacker, opponentOf(b, ctx.Attacker), pick, ctx.Spread)
}

func effectMimic(b *Battle, ctx *ExecCtx) {
	last := b.Scratch.Battlers[ctx.Target].LastUsedMove
	if last == data.MoveNone {
		ctx.failed = true
		return
	}
	atk := b.Combatant(ctx.Attacker)
	for i := range atk.Moves {
		if atk.Moves[i].Move == ctx.Move {
			atk.Moves[i].Move = last
			atk.Moves[i].MaxPP = 5
			atk.Moves[i].PP = 5
			return
		}
	}
	ctx.failed = true
}

func effectSketch(b *Battle, ctx *ExecCtx) {
	last := b.Scratch.Battlers[ctx.Target].LastUsedMove
	if last == data.MoveNone {
		ctx.failed = true
		return
	}
	atk := b.Combatant(ctx.Attacker)
	pp := data.MoveTable(last).PP
	for i := range atk.Moves {
		if atk.Moves[i].Move == ctx.Move {
			atk.Moves[i].Move = last
			atk.Moves[i].MaxPP = pp
			atk.Moves[i].PP = pp
			return
		}
	}
	ctx.failed = true
}

func effectRolePlay(b *Battle, ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	def := b.Combatant(ctx.Target)
	if def.Ability == data.AbilityNone {
		ctx.failed = true
		return
	}
	atk.Ability = def.Ability
}

// effectSleepTalk calls a random other move from the user's own set while
// asleep; opAttackCanceler carries an explicit exception letting this one
// move execute through a sleep status.
func effectSleepTalk(b *Battle, ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	var candidates []data.MoveID
	for _, m := range atk.Moves {
		if m.Move != data.MoveNone && m.Move != data.MoveSleepTalk {
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

func secondarySecretPower(b *Battle, ctx *ExecCtx) {
	switch b.Field.Environment {
	case EnvGrass, EnvLongGrass:
		applyParalyze(b, ctx.Attacker, ctx.Target)
	case EnvWater, EnvPond, EnvUnderwater:
		changeStage(b, ctx.Attacker, ctx.Target, StatSpe, -1, true)
	case EnvSand, EnvMountain, EnvCave:
		changeStage(b, ctx.Attacker, ctx.Target, StatAccuracy, -1, true)
	default:
		applyParalyze(b, ctx.Attacker, ctx.Target)
	}
}

func effectLeechSeed(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	if def.HasType(data.Grass) {
		return
	}
	vol := &b.Volatiles[ctx.Target]
	if vol.Special.SeededBy >= 0 {
		return
	}
	vol.Special.SeededBy = ctx.Attacker
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: ctx.Target, Source: ctx.Attacker, Reason: "leech_seed"})
}

func effectUproar(b *Battle, ctx *ExecCtx) {
	c := b.Combatant(ctx.Attacker)
	c.Status2 = c.Status2.WithUproar(3 + b.RNG.Choice(2))
	for battler := 0; battler < 4; battler++ {
		if other := b.Combatant(battler); other != nil && other.Status1.IsAsleep() {
			other.Status1 = other.Status1.Cleared()
		}
	}
}

func effectNightmare(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	if !def.Status1.IsAsleep() || def.Status2.Has(status2Nightmare) {
		ctx.failed = true
		return
	}
	def.Status2 |= status2Nightmare
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: ctx.Target, Source: ctx.Attacker, Reason: "nightmare"})
}

// effectCurse resolves the Ghost/non-Ghost split: a Ghost-type user
// curses the target at the cost of half its own max HP, a non-Ghost
// user instead raises Attack/Defense and lowers Speed on itself.
func effectCurse(b *Battle, ctx *ExecCtx) {
	atk := b.Combatant(ctx.Attacker)
	if atk.HasType(data.Ghost) {
		def := b.Combatant(ctx.Target)
		if def.Status2.Has(status2Cursed) {
			ctx.failed = true
			return
		}
		atk.ApplyDamage(atk.MaxHP / 2)
		b.handleFaintIfNeeded(ctx.Attacker)
		def.Status2 |= status2Cursed
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: ctx.Target, Source: ctx.Attacker, Reason: "curse"})
		return
	}
	changeStage(b, ctx.Attacker, ctx.Attacker, StatAtk, 1, false)
	changeStage(b, ctx.Attacker, ctx.Attacker, StatDef, 1, false)
	changeStage(b, ctx.Attacker, ctx.Attacker, StatSpe, -1, false)
}

func effectWrap(b *Battle, ctx *ExecCtx) {
	defVol := &b.Volatiles[ctx.Target]
	def := b.Combatant(ctx.Target)
	if defVol.Disable.SubstituteHP > 0 || def.Status2.Has(status2EscapePrevent) {
		return
	}
	def.Status2 = def.Status2.WithWrap(2 + b.RNG.Choice(4))
	def.Status2 |= status2EscapePrevent
}

func effectYawn(b *Battle, ctx *ExecCtx) {
	def := b.Combatant(ctx.Target)
	if !def.Status1.None() || b.Volatiles[ctx.Target].Disable.YawnTurns > 0 {
		return
	}
	b.Volatiles[ctx.Target].Disable.YawnTurns = 2
}

func effectDefenseCurl(b *Battle, ctx *ExecCtx) {
	b.Volatiles[ctx.Attacker].Disable.DefenseCurlUsed = true
	changeStage(b, ctx.Attacker, ctx.Attacker, StatDef, 1, false)
}

func effectMinimize(b *Battle, ctx *ExecCtx) {
	b.Volatiles[ctx.Attacker].Status3.Minimized = true
	changeStage(b, ctx.Attacker, ctx.Attacker, StatEvasion, 1, false)
}

func effectFocusEnergy(b *Battle, ctx *ExecCtx) {
	b.Combatant(ctx.Attacker).Status2 |= status2FocusEnergy
}

func effectFollowMe(b *Battle, ctx *ExecCtx) {
	side := b.Sides[sideOf(ctx.Attacker)]
	side.FollowMeTurns = 1
	side.FollowMeTarget = ctx.Attacker
}

package battle

import "github.com/emeraldfactory/battlecore/data"

// RunEndTurn runs the full end-of-turn residual pipeline (§4.G): the
// field sub-pipeline once, then the per-battler sub-pipeline for every
// alive slot in order, then Future Sight triggers, then
// auto-replacement. The orchestrator calls this after every action in
// a turn has executed, before incrementing the turn counter.
func (b *Battle) RunEndTurn() {
	b.runFieldResiduals()
	for battler := 0; battler < 4; battler++ {
		b.runBattlerResiduals(battler)
	}
	b.runFutureSightTriggers()
	for battler := 0; battler < 4; battler++ {
		b.tryAutoReplace(battler)
	}
	b.checkTermination()
}

// runFieldResiduals ticks the two sides' screen/hazard timers, then
// weather, then Follow-Me, in the exact order the design calls out:
// Reflect, Light Screen, Mist, Safeguard, Wish, Rain, Sandstorm, Sun,
// Hail, Follow-Me.
func (b *Battle) runFieldResiduals() {
	for s := 0; s < 2; s++ {
		side := b.Sides[s]
		decrementTimer(&side.ReflectTurns, func() { side.Statuses &^= SideReflect })
		decrementTimer(&side.LightScreenTurns, func() { side.Statuses &^= SideLightScreen })
		decrementTimer(&side.MistTurns, func() { side.Statuses &^= SideMist })
		decrementTimer(&side.SafeguardTurns, func() { side.Statuses &^= SideSafeguard })
	}
	for battler := 0; battler < 4; battler++ {
		b.tickWish(battler)
	}

	switch b.Field.Weather {
	case WeatherRain:
		if b.Field.WeatherTurns > 0 {
			b.Field.WeatherTurns--
			if b.Field.WeatherTurns == 0 {
				b.Field.Weather = WeatherNone
			}
		}
	case WeatherSandstorm:
		b.tickWeatherDamage(func() { b.Field.WeatherTurns--; if b.Field.WeatherTurns <= 0 { b.Field.Weather = WeatherNone } },
			func(c *Combatant) bool { return c.HasType(data.Rock) || c.HasType(data.Steel) || c.HasType(data.Ground) },
			"sandstorm")
	case WeatherSun:
		if b.Field.WeatherTurns > 0 {
			b.Field.WeatherTurns--
			if b.Field.WeatherTurns == 0 {
				b.Field.Weather = WeatherNone
			}
		}
	case WeatherHail:
		b.tickWeatherDamage(func() { b.Field.WeatherTurns--; if b.Field.WeatherTurns <= 0 { b.Field.Weather = WeatherNone } },
			func(c *Combatant) bool { return c.HasType(data.Ice) },
			"hail")
	}

	for s := 0; s < 2; s++ {
		decrementTimer(&b.Sides[s].FollowMeTurns, func() { b.Sides[s].FollowMeTarget = -1 })
	}
}

func decrementTimer(turns *int, onExpire func()) {
	if *turns <= 0 {
		return
	}
	*turns--
	if *turns == 0 {
		onExpire()
	}
}

// tickWeatherDamage ticks the weather's own turn counter via decrement,
// then (if the weather is still active after ticking) deals 1/16 max HP
// to every alive, non-immune active battler.
func (b *Battle) tickWeatherDamage(decrement func(), immune func(c *Combatant) bool, reason string) {
	decrement()
	actives := [4]*Combatant{b.Combatant(0), b.Combatant(1), b.Combatant(2), b.Combatant(3)}
	if b.Field.NeutralizesWeather(actives) {
		return
	}
	for battler, c := range actives {
		if c == nil || c.Fainted() || immune(c) {
			continue
		}
		dmg := c.MaxHP / 16
		if dmg < 1 {
			dmg = 1
		}
		c.ApplyDamage(dmg)
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: battler, Amount: dmg, Reason: reason})
		b.handleFaintIfNeeded(battler)
	}
}

// tickWish decrements the slot's Wish counter and, on reaching zero,
// heals it for half the max HP recorded at cast time.
func (b *Battle) tickWish(battler int) {
	d := &b.Delayed[battler]
	if d.WishTurns <= 0 {
		return
	}
	d.WishTurns--
	if d.WishTurns > 0 {
		return
	}
	c := b.Combatant(battler)
	if c == nil || c.Fainted() {
		return
	}
	party := b.Parties[sideOf(battler)]
	if d.WishOrigin < 0 || d.WishOrigin >= len(party.Members) || party.Members[d.WishOrigin] == nil {
		return
	}
	healed := c.Heal(party.Members[d.WishOrigin].MaxHP / 2)
	if healed > 0 {
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: battler, Amount: healed, Reason: "wish"})
	}
}

// runBattlerResiduals runs one alive slot through the exact enumerated
// per-battler order (§4.G), each step fully applying its damage/fainting
// before the next runs.
func (b *Battle) runBattlerResiduals(battler int) {
	c := b.Combatant(battler)
	if c == nil || c.Fainted() {
		return
	}
	vol := &b.Volatiles[battler]

	b.residualIngrainHeal(battler)
	if c.Fainted() {
		return
	}
	b.residualEndTurnAbility(battler)
	if c.Fainted() {
		return
	}
	b.residualItemPhase1(battler)
	if c.Fainted() {
		return
	}
	b.residualLeechSeed(battler)
	if c.Fainted() {
		return
	}
	b.residualMajorStatus(battler)
	if c.Fainted() {
		return
	}
	b.residualNightmare(battler)
	if c.Fainted() {
		return
	}
	b.residualCurse(battler)
	if c.Fainted() {
		return
	}
	b.residualWrap(battler)
	if c.Fainted() {
		return
	}
	b.residualUproar(battler)
	b.residualThrash(battler)

	decrementTimer(&vol.Disable.DisableTurns, func() { vol.Disable.DisabledMove = data.MoveNone })
	b.residualPerishSong(battler)
	if c.Fainted() {
		return
	}
	decrementTimer(&vol.Disable.EncoreTurns, func() { vol.Disable.EncoreMove = data.MoveNone })
	decrementTimer(&vol.Disable.LockOnTurns, func() { vol.Disable.LockOnTarget = -1 })
	decrementTimer(&vol.Disable.ChargeTurns, func() {})
	decrementTimer(&vol.Disable.TauntTurns, func() {})
	b.residualYawn(battler)
	if c.Fainted() {
		return
	}
	b.residualItemPhase2(battler)
}

// residualIngrainHeal heals 1/16 max HP for a rooted battler.
func (b *Battle) residualIngrainHeal(battler int) {
	if !b.Volatiles[battler].Status3.Rooted {
		return
	}
	c := b.Combatant(battler)
	healed := c.Heal(c.MaxHP / 16)
	if healed > 0 {
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: battler, Amount: healed, Reason: "ingrain"})
	}
}

// residualEndTurnAbility resolves Speed Boost, the one representative
// end-of-turn ability in this engine's subset.
func (b *Battle) residualEndTurnAbility(battler int) {
	c := b.Combatant(battler)
	if c.Ability == data.AbilitySpeedBoost {
		c.ModifyStage(StatSpe, 1)
	}
}

// residualItemPhase1 is a placeholder slot for pre-damage end-turn item
// effects (none in this engine's representative item subset use it; kept
// so the pipeline stays positionally aligned with the design's two-phase
// item split).
func (b *Battle) residualItemPhase1(battler int) {}

func (b *Battle) residualLeechSeed(battler int) {
	vol := &b.Volatiles[battler]
	if vol.Special.SeededBy < 0 {
		return
	}
	source := b.Combatant(vol.Special.SeededBy)
	if source == nil || source.Fainted() {
		return
	}
	c := b.Combatant(battler)
	drain := c.MaxHP / 8
	if drain < 1 {
		drain = 1
	}
	applied := c.ApplyDamage(drain)
	healed := source.Heal(applied)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: battler, Source: vol.Special.SeededBy, Amount: applied, Reason: "leech_seed"})
	if healed > 0 {
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: vol.Special.SeededBy, Amount: healed, Reason: "leech_seed"})
	}
	b.handleFaintIfNeeded(battler)
}

// residualMajorStatus applies Poison, Toxic (with counter increment), and
// Burn residual damage, in that order.
func (b *Battle) residualMajorStatus(battler int) {
	c := b.Combatant(battler)
	switch {
	case c.Status1.IsToxic():
		n := c.Status1.ToxicCounter()
		c.Status1 = c.Status1.IncrementToxicCounter()
		dmg := (c.MaxHP * n) / 16
		if dmg < 1 {
			dmg = 1
		}
		applied := c.ApplyDamage(dmg)
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: battler, Amount: applied, Reason: "toxic"})
		b.handleFaintIfNeeded(battler)
	case c.Status1.IsPoisoned():
		dmg := c.MaxHP / 8
		if dmg < 1 {
			dmg = 1
		}
		applied := c.ApplyDamage(dmg)
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: battler, Amount: applied, Reason: "poison"})
		b.handleFaintIfNeeded(battler)
	}
	if c.Fainted() {
		return
	}
	if c.Status1.IsBurned() {
		dmg := c.MaxHP / 8
		if dmg < 1 {
			dmg = 1
		}
		applied := c.ApplyDamage(dmg)
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: battler, Amount: applied, Reason: "burn"})
		b.handleFaintIfNeeded(battler)
	}
}

// residualNightmare applies 1/4 max HP while the battler sleeps with the
// Nightmare volatile set; the nightmare clears once the battler wakes.
func (b *Battle) residualNightmare(battler int) {
	c := b.Combatant(battler)
	if !c.Status2.Has(status2Nightmare) {
		return
	}
	if !c.Status1.IsAsleep() {
		c.Status2 &^= status2Nightmare
		return
	}
	dmg := c.MaxHP / 4
	if dmg < 1 {
		dmg = 1
	}
	applied := c.ApplyDamage(dmg)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: battler, Amount: applied, Reason: "nightmare"})
	b.handleFaintIfNeeded(battler)
}

func (b *Battle) residualCurse(battler int) {
	c := b.Combatant(battler)
	if !c.Status2.Has(status2Cursed) {
		return
	}
	dmg := c.MaxHP / 4
	if dmg < 1 {
		dmg = 1
	}
	applied := c.ApplyDamage(dmg)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: battler, Amount: applied, Reason: "curse"})
	b.handleFaintIfNeeded(battler)
}

// residualWrap deals 1/16 max HP and decrements the trap counter,
// clearing escape-prevention when it reaches zero.
func (b *Battle) residualWrap(battler int) {
	c := b.Combatant(battler)
	if c.Status2.WrapTurns() <= 0 {
		return
	}
	dmg := c.MaxHP / 16
	if dmg < 1 {
		dmg = 1
	}
	applied := c.ApplyDamage(dmg)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDamage, Battler: battler, Amount: applied, Reason: "wrap"})
	c.Status2 = c.Status2.DecrementWrap()
	if c.Status2.WrapTurns() == 0 {
		c.Status2 &^= status2EscapePrevent
	}
	b.handleFaintIfNeeded(battler)
}

// residualUproar decrements the uproar counter; while any active battler
// is uproaring, every sleeping battler wakes (checked once per tick here
// since Gen-3 rechecks this continuously).
func (b *Battle) residualUproar(battler int) {
	c := b.Combatant(battler)
	if !c.Status2.IsUproaring() {
		return
	}
	c.Status2 = c.Status2.DecrementUproar()
	for i := 0; i < 4; i++ {
		if other := b.Combatant(i); other != nil && other.Status1.IsAsleep() {
			other.Status1 = other.Status1.Cleared()
		}
	}
}

// residualThrash decrements the Thrash/Petal Dance/Rollout lock counter;
// on expiry of a rampage move's lock, the user becomes confused.
func (b *Battle) residualThrash(battler int) {
	c := b.Combatant(battler)
	if c.Status2.LockTurns() <= 0 {
		return
	}
	c.Status2 = c.Status2.DecrementLock()
	if c.Status2.LockTurns() == 0 {
		c.Status2 = c.Status2.WithConfusion(2 + b.RNG.Choice(4))
	}
}

// residualPerishSong decrements the Perish Song timer; the battler faints
// outright when it reaches zero.
func (b *Battle) residualPerishSong(battler int) {
	vol := &b.Volatiles[battler]
	if vol.Disable.PerishSongTurns <= 0 {
		return
	}
	vol.Disable.PerishSongTurns--
	if vol.Disable.PerishSongTurns > 0 {
		return
	}
	c := b.Combatant(battler)
	c.ApplyDamage(c.HP)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventFainted, Battler: battler, Reason: "perish_song"})
	b.handleFaintIfNeeded(battler)
}

// residualYawn decrements the Yawn counter; on expiry it applies Sleep
// through the same immunity gate any other sleep-inducing effect uses.
func (b *Battle) residualYawn(battler int) {
	vol := &b.Volatiles[battler]
	if vol.Disable.YawnTurns <= 0 {
		return
	}
	vol.Disable.YawnTurns--
	if vol.Disable.YawnTurns > 0 {
		return
	}
	if !canApplyMajorStatus(b, battler) {
		return
	}
	c := b.Combatant(battler)
	if c.Ability == data.AbilityInsomnia || c.Ability == data.AbilityVitalSpirit {
		return
	}
	c.Status1 = c.Status1.WithSleep(1 + b.RNG.Choice(4))
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventStatusApplied, Battler: battler, Reason: "yawn"})
}

// residualItemPhase2 heals Leftovers holders for 1/16 max HP.
func (b *Battle) residualItemPhase2(battler int) {
	c := b.Combatant(battler)
	if data.ItemTable(c.Item).Effect != data.HoldLeftovers {
		return
	}
	healed := c.Heal(c.MaxHP / 16)
	if healed > 0 {
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHeal, Battler: battler, Amount: healed, Reason: "leftovers"})
	}
}

// runFutureSightTriggers ticks every slot's Future Sight counter; on
// reaching zero it computes damage with the stored attacker/move,
// ignoring type immunity and clamped to at least 1.
func (b *Battle) runFutureSightTriggers() {
	for battler := 0; battler < 4; battler++ {
		d := &b.Delayed[battler]
		if d.FutureSightTurns <= 0 {
			continue
		}
		d.FutureSightTurns--
		if d.FutureSightTurns > 0 {
			continue
		}
		target := b.Combatant(battler)
		if target == nil || target.Fainted() {
			continue
		}
		result := b.CalcDamage(d.FutureSightAttacker, battler, d.FutureSightMove, false, 1)
		dmg := result.Damage
		if dmg < 1 {
			dmg = 1
		}
		applied := target.ApplyDamage(dmg)
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventDelayedTrigger, Battler: battler, Source: d.FutureSightAttacker, Move: d.FutureSightMove, Amount: applied})
		b.handleFaintIfNeeded(battler)
	}
}

// tryAutoReplace swaps in the first eligible reserve for a fainted slot
// with alive party members remaining, resetting volatiles and applying
// entry hazards through the same path switchIn always uses.
func (b *Battle) tryAutoReplace(battler int) {
	if !b.Active[battler].Present {
		return
	}
	c := b.Combatant(battler)
	if c == nil || !c.Fainted() {
		return
	}
	party := b.Parties[sideOf(battler)]
	idx := party.FirstAlive(-1)
	for i, m := range party.Members {
		if i == b.Active[battler].PartyIndex {
			continue
		}
		if m != nil && !m.Fainted() {
			idx = i
			break
		}
	}
	if idx < 0 || idx == b.Active[battler].PartyIndex {
		return
	}
	b.switchIn(battler, idx, false)
}

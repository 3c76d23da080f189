package battle

import (
	"errors"

	"github.com/emeraldfactory/battlecore/data"
	"github.com/emeraldfactory/battlecore/rng"
)

// ActiveSlot binds one of the four battler ids to a party index. Present
// is false for slots 2/3 in a singles battle (per §6, "missing partner
// slots indicate singles").
type ActiveSlot struct {
	Present    bool
	PartyIndex int
}

// Battle is the engine's single mutable aggregate: two parties, four
// active slots and their volatiles, two sides, one field, the RNG, the
// turn counter, and the event log. All mutation happens through exactly
// one owner calling ProcessTurn (see §5's single-owner cooperative
// model).
type Battle struct {
	Parties   [2]*Party
	Active    [4]ActiveSlot
	Volatiles [4]Volatile
	Delayed   [4]DelayedEffects
	Sides     [2]*SideState
	Field     FieldState
	RNG       *rng.Source
	Turn      int
	Scratch   TurnScratch
	Log       *Log

	over    bool
	winner  int // 0 or 1, -1 for a draw; meaningless unless over
	doubles bool
}

// sideOf returns the side (0 or 1) owning battler id b.
func sideOf(b int) int { return b % 2 }

// partnerOf returns the other battler on the same side in doubles (b^2),
// or -1 if this battle is singles.
func (b *Battle) partnerOf(battler int) int {
	if !b.doubles {
		return -1
	}
	return battler ^ 2
}

// NewBattle constructs a Battle from two parties (each up to six
// Combatants), an optional seed, and a battle environment tag. Singles
// or doubles is chosen by the doubles flag alone: with doubles=true,
// slots 2 and 3 hold party member 1 of each side that has more than one
// member, and stay empty otherwise.
func NewBattle(partyA, partyB []*Combatant, seed uint32, env Environment, doubles bool) (*Battle, error) {
	if len(partyA) == 0 || len(partyA) > 6 || len(partyB) == 0 || len(partyB) > 6 {
		return nil, errors.New("battle: each party must have 1-6 combatants")
	}
	for _, side := range [][]*Combatant{partyA, partyB} {
		for _, c := range side {
			if c == nil {
				continue
			}
			if c.Level < 1 || c.Level > 100 {
				return nil, errors.New("battle: level must be 1-100")
			}
		}
	}

	b := &Battle{
		Parties: [2]*Party{{Members: partyA}, {Members: partyB}},
		Sides:   [2]*SideState{{FollowMeTarget: -1}, {FollowMeTarget: -1}},
		Field:   FieldState{Environment: env},
		RNG:     rng.New(seed),
		Log:     NewLog(),
		doubles: doubles,
	}
	b.Scratch = newTurnScratch()

	b.Active[0] = ActiveSlot{Present: true, PartyIndex: 0}
	b.Active[1] = ActiveSlot{Present: true, PartyIndex: 0}
	if doubles {
		b.Active[2] = ActiveSlot{Present: len(partyA) > 1, PartyIndex: 1}
		b.Active[3] = ActiveSlot{Present: len(partyB) > 1, PartyIndex: 1}
	}
	for i := range b.Volatiles {
		b.Volatiles[i] = NewVolatile()
	}
	for i := 0; i < 4; i++ {
		b.Delayed[i] = DelayedEffects{}
	}

	for i, c := range partyA {
		if c != nil && c.MaxHP == 0 {
			c.MaxHP = c.HP
		}
		_ = i
	}
	for i, c := range partyB {
		if c != nil && c.MaxHP == 0 {
			c.MaxHP = c.HP
		}
		_ = i
	}

	b.applyStartOfBattleHazards()
	return b, nil
}

// Combatant returns the active combatant in battler slot id, or nil if
// the slot is empty/unoccupied (e.g. the unused doubles slot in a
// singles battle, or a fainted slot pending replacement).
func (b *Battle) Combatant(battler int) *Combatant {
	slot := b.Active[battler]
	if !slot.Present {
		return nil
	}
	party := b.Parties[sideOf(battler)]
	if slot.PartyIndex < 0 || slot.PartyIndex >= len(party.Members) {
		return nil
	}
	return party.Members[slot.PartyIndex]
}

// IsOver reports whether one side has no combatant able to fight.
func (b *Battle) IsOver() bool { return b.over }

// Winner returns the winning side (0 or 1), or -1 while the battle is
// ongoing or when both sides ran out of combatants at once. Side 0
// contains battlers 0 and 2; side 1 contains 1 and 3.
func (b *Battle) Winner() int {
	if !b.over {
		return -1
	}
	return b.winner
}

// checkTermination marks the battle over if either side has no alive
// party member, and records the winner.
func (b *Battle) checkTermination() {
	if b.over {
		return
	}
	aliveA := b.Parties[0].AliveCount()
	aliveB := b.Parties[1].AliveCount()
	if aliveA == 0 || aliveB == 0 {
		b.over = true
		switch {
		case aliveA == 0 && aliveB == 0:
			b.winner = -1
		case aliveA == 0:
			b.winner = 1
		default:
			b.winner = 0
		}
	}
}

// applyStartOfBattleHazards runs hazard damage for the initial active
// slots, matching the same path a switch-in uses.
func (b *Battle) applyStartOfBattleHazards() {
	for battler := 0; battler < 4; battler++ {
		if !b.Active[battler].Present {
			continue
		}
		b.applySwitchInHazards(battler)
	}
}

// applySwitchInHazards applies Spikes damage to a grounded entrant and
// logs a "switch-in hazard" event (§8 hazard arithmetic, scenario 2).
func (b *Battle) applySwitchInHazards(battler int) {
	c := b.Combatant(battler)
	if c == nil || c.Fainted() {
		return
	}
	side := b.Sides[sideOf(battler)]
	if side.SpikesLayers <= 0 {
		return
	}
	if c.HasType(data.Flying) {
		return
	}
	var denom int
	switch side.SpikesLayers {
	case 1:
		denom = 8
	case 2:
		denom = 6
	default:
		denom = 4
	}
	dmg := c.MaxHP / denom
	if dmg < 1 {
		dmg = 1
	}
	c.ApplyDamage(dmg)
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventHazard, Battler: battler, Amount: dmg, Reason: "spikes"})
	b.handleFaintIfNeeded(battler)
}

// switchIn brings party member partyIndex into battler, resetting its
// volatile state (preserving the Baton-Pass allow-list when batonPass is
// set, together with the outgoing combatant's stat stages and its
// confusion/Focus Energy/Substitute/escape-prevention/Curse Status2 bits)
// and running switch-in hazards. Used by both phazing and
// auto-replacement.
func (b *Battle) switchIn(battler, partyIndex int, batonPass bool) {
	outgoing := b.Combatant(battler)
	b.Volatiles[battler].ResetOnSwitch(batonPass)
	b.Active[battler].PartyIndex = partyIndex
	if c := b.Combatant(battler); c != nil {
		if batonPass && outgoing != nil {
			passed := status2ConfusionMask | status2FocusEnergy | status2Substitute | status2EscapePrevent | status2Cursed
			c.Stages = outgoing.Stages
			c.Status2 = c.Status2&^passed | outgoing.Status2&passed
		} else {
			c.ResetStages()
		}
	}
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventSwitch, Battler: battler})
	b.applySwitchInHazards(battler)
}

// handleFaintIfNeeded logs a faint event when HP has reached 0, resets
// the slot's volatiles and re-checks termination; it never performs
// replacement (auto-replacement is an end-turn concern, see endturn.go).
func (b *Battle) handleFaintIfNeeded(battler int) bool {
	c := b.Combatant(battler)
	if c == nil || c.HP > 0 {
		return false
	}
	b.Log.append(LogEvent{Turn: b.Turn, Kind: EventFainted, Battler: battler})
	b.Volatiles[battler] = NewVolatile()
	b.checkTermination()
	return true
}

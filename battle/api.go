package battle

import "github.com/emeraldfactory/battlecore/data"

// NewMoveSlot builds a MoveSlot at full PP for move, the form callers
// assemble a Combatant's four slots from.
func NewMoveSlot(move data.MoveID) MoveSlot {
	pp := data.MoveTable(move).PP
	return MoveSlot{Move: move, PP: pp, MaxPP: pp}
}

// NewCombatant builds a Combatant at full HP from base stats already
// resolved for its level (see §3's "resolved base stats" note — this
// engine takes Pokemon stats as an input, it does not derive them from
// a growth curve).
func NewCombatant(species data.SpeciesID, level int, stats [6]int, ivs [6]int, ability data.AbilityID, item data.ItemID, t1, t2 data.Type, moves [4]data.MoveID) *Combatant {
	c := &Combatant{
		Species:  species,
		Level:    level,
		MaxHP:    stats[0],
		HP:       stats[0],
		IVs:      ivs,
		BaseStat: stats,
		Ability:  ability,
		Item:     item,
		Type1:    t1,
		Type2:    t2,
		Friendship: 255,
	}
	c.ResetStages()
	for i, m := range moves {
		if m != data.MoveNone {
			c.Moves[i] = NewMoveSlot(m)
		}
	}
	return c
}

// ActiveCombatant is a read-only view of one battler slot, convenient
// for a caller building a UI or an AI over the engine.
type ActiveCombatant struct {
	Battler   int
	Present   bool
	Combatant *Combatant
	Volatile  Volatile
}

// ActiveView returns a snapshot of every battler slot's occupancy and
// combatant pointer, for callers that want to render the field without
// reaching into Battle's internals directly.
func (b *Battle) ActiveView() [4]ActiveCombatant {
	var out [4]ActiveCombatant
	for i := 0; i < 4; i++ {
		out[i] = ActiveCombatant{
			Battler:   i,
			Present:   b.Active[i].Present,
			Combatant: b.Combatant(i),
			Volatile:  b.Volatiles[i],
		}
	}
	return out
}

// TurnNumber returns the current 1-based turn count (0 before the first
// ProcessTurn call completes).
func (b *Battle) TurnNumber() int { return b.Turn }

// EventsThisTurn returns every log event recorded during the
// most-recently-completed turn, for a caller that wants to render just
// the latest turn's narration.
func (b *Battle) EventsThisTurn() []LogEvent {
	return b.Log.Since(b.Turn - 1)
}

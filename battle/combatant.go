package battle

import "github.com/emeraldfactory/battlecore/data"

// StatIndex names one of the six base stats plus the two battle-only
// stages (Accuracy/Evasion), matching the order used by StatStages.
type StatIndex int

const (
	StatHP StatIndex = iota
	StatAtk
	StatDef
	StatSpe
	StatSpA
	StatSpD
	StatAccuracy
	StatEvasion
	statCount
)

// neutralStage is the stage value representing "no boost, no drop" (the
// center of the 0..12 storage range, i.e. stage 6 == +0).
const neutralStage = 6

// MoveSlot is one of a Combatant's up to four moves.
type MoveSlot struct {
	Move    data.MoveID
	PP      int
	MaxPP   int
	Disabled bool // convenience cache; authoritative state is DisableBlock
}

// Combatant is one Pokemon's full battle-relevant record: level, stats,
// IVs, ability, item, move slots, stat stages, and status. See spec §3.
type Combatant struct {
	Species  data.SpeciesID
	Level    int
	MaxHP    int
	HP       int
	IVs      [6]int // HP, Atk, Def, Spe, SpA, SpD
	BaseStat [6]int // resolved base stats (HP, Atk, Def, Spe, SpA, SpD) at this level, excluding stage mods
	Ability  data.AbilityID
	Item     data.ItemID
	Type1    data.Type
	Type2    data.Type
	Moves    [4]MoveSlot

	// Stages are stored 0..12 around neutralStage; Stage() converts to
	// the logical -6..+6 range used by the spec.
	Stages [statCount]int

	Status1    Status1
	Status2    Status2
	Friendship int
}

// Fainted reports whether this combatant is at 0 HP and therefore
// ineligible for any action or residual except auto-replacement.
func (c *Combatant) Fainted() bool { return c.HP <= 0 }

// Stage returns the logical stat stage (-6..+6) for idx.
func (c *Combatant) Stage(idx StatIndex) int {
	return c.Stages[idx] - neutralStage
}

// ModifyStage adjusts a stat stage by delta, clamped to -6..+6, and
// returns the actual applied delta (useful for "already maxed" logging).
func (c *Combatant) ModifyStage(idx StatIndex, delta int) int {
	before := c.Stages[idx]
	after := clamp(before+delta, 0, 12)
	c.Stages[idx] = after
	return after - before
}

// ResetStages clears every stat stage back to neutral (used on switch).
func (c *Combatant) ResetStages() {
	for i := range c.Stages {
		c.Stages[i] = neutralStage
	}
}

// HasType reports whether t is one of this combatant's types.
func (c *Combatant) HasType(t data.Type) bool {
	return c.Type1 == t || c.Type2 == t
}

// ApplyDamage lowers HP by amount, floored at 0, and returns the amount
// actually applied (which may be less than requested near 0 HP).
func (c *Combatant) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > c.HP {
		amount = c.HP
	}
	c.HP -= amount
	return amount
}

// Heal raises HP by amount, capped at MaxHP, and returns the amount
// actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	room := c.MaxHP - c.HP
	if amount > room {
		amount = room
	}
	c.HP += amount
	return amount
}

// HPPercent returns current HP as a fraction of MaxHP in [0,1].
func (c *Combatant) HPPercent() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.HP) / float64(c.MaxHP)
}

// Party is an ordered list of up to six Combatants.
type Party struct {
	Members []*Combatant
}

// FirstAlive returns the index of the first non-fainted member other
// than exclude (-1 if none), used by auto-replacement and phazing.
func (p *Party) FirstAlive(exclude int) int {
	for i, m := range p.Members {
		if i == exclude {
			continue
		}
		if m != nil && !m.Fainted() {
			return i
		}
	}
	return -1
}

// AliveCount counts non-fainted members.
func (p *Party) AliveCount() int {
	n := 0
	for _, m := range p.Members {
		if m != nil && !m.Fainted() {
			n++
		}
	}
	return n
}

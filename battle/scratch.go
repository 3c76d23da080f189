package battle

import "github.com/emeraldfactory/battlecore/data"

// MoveResultFlags records the outcome of a single move execution for
// logging and for the script's caller (e.g. ResultOHKO set by the OHKO
// handler).
type MoveResultFlags uint16

const (
	ResultMissed MoveResultFlags = 1 << iota
	ResultSuperEffective
	ResultNotVeryEffective
	ResultNoEffect
	ResultOHKO
	ResultFailed
	ResultEndured
	ResultHungOn
)

// HitMarker is a bitmask of one-shot flags scoped to a single script
// execution.
type HitMarker uint8

const (
	HitNoPPDeduct HitMarker = 1 << iota
	HitNoAttackString
)

// PerBattlerScratch holds turn-scoped bookkeeping the spec keeps
// per-battler but outside the persistent Volatile struct: last move
// used, this-turn chosen slot, Grudge/Imprison flags, and the Pay Day
// counter.
type PerBattlerScratch struct {
	LastUsedMove   data.MoveID
	ChosenSlot     int
	GrudgeActive   bool
	ImprisonActive bool
	ImprisonSealed map[data.MoveID]bool
	PayDayCounter  int
	HitThisTurn    bool // Revenge's "user was hit this turn" check
}

// TurnScratch is reset between turns (see TurnScratch.resetPerTurn, which
// ProcessTurn calls once a turn is finished).
type TurnScratch struct {
	AttackerID    int
	TargetID      int
	CurrentMove   data.MoveID
	CurrentSlot   int
	HitMarker     HitMarker
	ResultFlags   MoveResultFlags
	DamageDealt   int
	Battlers      [4]PerBattlerScratch
	OrderedActions []ResolvedAction
}

func newTurnScratch() TurnScratch {
	var ts TurnScratch
	for i := range ts.Battlers {
		ts.Battlers[i].ImprisonSealed = map[data.MoveID]bool{}
	}
	return ts
}

// resetPerTurn clears the fields that must not survive into the next
// turn (current attacker/target/move/slot, hit markers, result flags,
// damage dealt, ordered actions, each battler's HitThisTurn) while
// leaving LastUsedMove/Grudge/Imprison intact across turns, matching
// §3's lifecycle note. ChosenSlot is overwritten when the next turn's
// actions are ordered; not-first-strike lives in Volatile.Turn, which
// ProcessTurn clears.
func (ts *TurnScratch) resetPerTurn() {
	ts.AttackerID = -1
	ts.TargetID = -1
	ts.CurrentMove = data.MoveNone
	ts.CurrentSlot = -1
	ts.HitMarker = 0
	ts.ResultFlags = 0
	ts.DamageDealt = 0
	ts.OrderedActions = nil
	for i := range ts.Battlers {
		ts.Battlers[i].HitThisTurn = false
	}
}

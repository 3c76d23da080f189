package battle

import "github.com/emeraldfactory/battlecore/data"

// ActionKind distinguishes the two shapes an Action submitted for a
// battler can take (§4.H step 1).
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionSwitch
)

// Action is one battler's chosen action for the current turn, supplied
// by the caller through ProcessTurn.
type Action struct {
	Battler    int
	Kind       ActionKind
	MoveSlot   int // index into the battler's MoveSlot array, for ActionMove
	PartySlot  int // party index to switch into, for ActionSwitch
}

// ResolvedAction is one Action after validation and ordering: it carries
// everything the execution step needs without re-deriving it, including
// the effective speed used to break ties so a caller inspecting the
// scratch state can audit why the order came out the way it did.
type ResolvedAction struct {
	Battler       int
	Kind          ActionKind
	MoveSlot      int
	Move          data.MoveID
	PartySlot     int
	Priority      int
	EffectiveSpeed int
	TieBit        int
}

// InvalidActionError reports why ProcessTurn rejected an action list
// outright; per §4.H's failure semantics, the turn is not advanced and
// state is unchanged when this is returned.
type InvalidActionError struct {
	Battler int
	Reason  string
}

func (e *InvalidActionError) Error() string { return "battle: invalid action: " + e.Reason }

// ProcessTurn validates, orders, and executes one set of actions (one
// per present, alive battler slot), runs the end-turn pipeline, and
// increments the turn counter. On a validation failure it returns an
// error and leaves the battle state untouched.
func (b *Battle) ProcessTurn(actions []Action) error {
	if b.over {
		return &InvalidActionError{Reason: "battle is already over"}
	}
	if err := b.validateActions(actions); err != nil {
		return err
	}

	resolved := b.orderActions(actions)
	b.Scratch.OrderedActions = resolved

	for i := range resolved {
		ra := &resolved[i]
		if !b.Active[ra.Battler].Present {
			continue
		}
		if b.Combatant(ra.Battler) == nil || b.Combatant(ra.Battler).Fainted() {
			continue
		}
		switch ra.Kind {
		case ActionSwitch:
			b.executeSwitch(ra)
		case ActionMove:
			b.executeMove(ra)
		}
		b.checkTermination()
		if b.over {
			break
		}
	}

	if !b.over {
		b.RunEndTurn()
	}
	b.Scratch.resetPerTurn()
	for i := range b.Volatiles {
		// Charging carries a two-turn move into its release turn.
		b.Volatiles[i].Turn = ThisTurnBlock{Charging: b.Volatiles[i].Turn.Charging}
	}
	b.Turn++
	return nil
}

// validateActions enforces §4.H step 1: each battler referenced must be
// known, present, and alive; move actions need a move-bearing slot in
// range with PP left (a slot with no PP is accepted only when no slot has
// PP, so that Struggle substitutes at execution time); switch actions
// need an in-range, alive, not already-active party member.
func (b *Battle) validateActions(actions []Action) error {
	for _, a := range actions {
		if a.Battler < 0 || a.Battler >= 4 {
			return &InvalidActionError{Battler: a.Battler, Reason: "unknown battler"}
		}
		if !b.Active[a.Battler].Present {
			return &InvalidActionError{Battler: a.Battler, Reason: "battler not present"}
		}
		c := b.Combatant(a.Battler)
		if c == nil || c.Fainted() {
			return &InvalidActionError{Battler: a.Battler, Reason: "battler fainted"}
		}
		switch a.Kind {
		case ActionMove:
			if a.MoveSlot < 0 || a.MoveSlot >= len(c.Moves) {
				return &InvalidActionError{Battler: a.Battler, Reason: "move slot out of range"}
			}
			slot := c.Moves[a.MoveSlot]
			if slot.Move == data.MoveNone {
				return &InvalidActionError{Battler: a.Battler, Reason: "empty move slot"}
			}
			if slot.PP <= 0 && anyUsableMove(c) {
				// With every slot out of PP, Struggle substitutes at execution
				// time instead, so only this case is a validation failure.
				return &InvalidActionError{Battler: a.Battler, Reason: "no PP left in move slot"}
			}
		case ActionSwitch:
			party := b.Parties[sideOf(a.Battler)]
			if a.PartySlot < 0 || a.PartySlot >= len(party.Members) {
				return &InvalidActionError{Battler: a.Battler, Reason: "party slot out of range"}
			}
			m := party.Members[a.PartySlot]
			if m == nil || m.Fainted() {
				return &InvalidActionError{Battler: a.Battler, Reason: "candidate not alive"}
			}
			if b.isActiveElsewhereOnSide(a.Battler, a.PartySlot) {
				return &InvalidActionError{Battler: a.Battler, Reason: "candidate already active"}
			}
		}
	}
	return nil
}

func (b *Battle) isActiveElsewhereOnSide(battler, partySlot int) bool {
	side := sideOf(battler)
	for i := 0; i < 4; i++ {
		if i == battler || sideOf(i) != side || !b.Active[i].Present {
			continue
		}
		if b.Active[i].PartyIndex == partySlot {
			return true
		}
	}
	return false
}

func anyUsableMove(c *Combatant) bool {
	for _, m := range c.Moves {
		if m.Move != data.MoveNone && m.PP > 0 {
			return true
		}
	}
	return false
}

// orderActions produces the turn's execution order: every switch first
// in input order, then every move ordered by the strikes-first
// comparator (§4.H step 2).
func (b *Battle) orderActions(actions []Action) []ResolvedAction {
	var switches, moves []ResolvedAction

	for _, a := range actions {
		switch a.Kind {
		case ActionSwitch:
			switches = append(switches, ResolvedAction{Battler: a.Battler, Kind: ActionSwitch, PartySlot: a.PartySlot})
		case ActionMove:
			move := b.resolveChosenMove(a.Battler, a.MoveSlot)
			b.Scratch.Battlers[a.Battler].ChosenSlot = a.MoveSlot
			ra := ResolvedAction{
				Battler:  a.Battler,
				Kind:     ActionMove,
				MoveSlot: a.MoveSlot,
				Move:     move,
				Priority: data.MoveTable(move).Priority,
			}
			ra.EffectiveSpeed = b.effectiveSpeed(a.Battler, move)
			ra.TieBit = b.RNG.Choice(2)
			moves = append(moves, ra)
		}
	}

	for i := 1; i < len(moves); i++ {
		j := i
		for j > 0 && movesFirst(moves[j], moves[j-1]) {
			moves[j], moves[j-1] = moves[j-1], moves[j]
			j--
		}
	}

	return append(switches, moves...)
}

// movesFirst reports whether a strikes before b: higher priority first,
// then higher effective speed, then the precomputed RNG tie bit.
func movesFirst(a, b ResolvedAction) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.EffectiveSpeed != b.EffectiveSpeed {
		return a.EffectiveSpeed > b.EffectiveSpeed
	}
	return a.TieBit > b.TieBit
}

// resolveChosenMove honors an active Encore override, then falls back to
// the requested slot, substituting Struggle if nothing else is usable.
func (b *Battle) resolveChosenMove(battler, slot int) data.MoveID {
	vol := &b.Volatiles[battler]
	c := b.Combatant(battler)
	if vol.Disable.EncoreTurns > 0 && vol.Disable.EncoreMove != data.MoveNone {
		for _, m := range c.Moves {
			if m.Move == vol.Disable.EncoreMove && m.PP > 0 {
				return vol.Disable.EncoreMove
			}
		}
	}
	chosen := c.Moves[slot].Move
	if b.moveUsable(battler, chosen) {
		return chosen
	}
	if !anyUsableMove(c) {
		return data.MoveStruggle
	}
	return chosen // unusable but alternatives exist; executeMove will fail the action
}

// moveUsable reports whether the battler may currently select move:
// enough PP, not Disabled, not sealed by Taunt/Torment/Imprison.
func (b *Battle) moveUsable(battler int, move data.MoveID) bool {
	if move == data.MoveNone {
		return false
	}
	c := b.Combatant(battler)
	vol := &b.Volatiles[battler]
	hasPP := false
	for _, m := range c.Moves {
		if m.Move == move && m.PP > 0 {
			hasPP = true
		}
	}
	if !hasPP {
		return false
	}
	if vol.Disable.DisabledMove == move && vol.Disable.DisableTurns > 0 {
		return false
	}
	if vol.Disable.TauntTurns > 0 && data.MoveTable(move).Power == 0 {
		return false
	}
	if c.Status2.Has(status2Torment) && b.Scratch.Battlers[battler].LastUsedMove == move {
		return false
	}
	if b.Scratch.Battlers[battler].ImprisonSealed[move] {
		return false
	}
	return true
}

// effectiveSpeed computes the speed used by the order comparator: base
// Speed through its stage ratio, then Swift Swim/Chlorophyll, then
// Paralysis, then Macho Brace, then a Quick Claw roll that overrides
// everything by forcing maximum speed.
func (b *Battle) effectiveSpeed(battler int, move data.MoveID) int {
	c := b.Combatant(battler)
	speed := applyStatStage(c.BaseStat[3], c.Stage(StatSpe))

	actives := [4]*Combatant{b.Combatant(0), b.Combatant(1), b.Combatant(2), b.Combatant(3)}
	weatherNullified := b.Field.NeutralizesWeather(actives)
	if !weatherNullified {
		if c.Ability == data.AbilitySwiftSwim && b.Field.Weather == WeatherRain {
			speed *= 2
		}
		if c.Ability == data.AbilityChlorophyll && b.Field.Weather == WeatherSun {
			speed *= 2
		}
	}
	if c.Status1.IsParalyzed() {
		speed /= 4
	}
	if data.ItemTable(c.Item).Effect == data.HoldMachoBrace {
		speed /= 2
	}
	if data.ItemTable(c.Item).Effect == data.HoldQuickClaw {
		param := data.ItemTable(c.Item).Param
		if b.RNG.Rand16() < uint16((0xFFFF*param)/100) {
			speed = 1 << 30
		}
	}
	return speed
}

// executeSwitch replaces the active combatant in a slot, handling a
// pending Baton Pass (preserving the volatile allow-list) the same way
// a manually chosen switch would.
func (b *Battle) executeSwitch(ra *ResolvedAction) {
	batonPass := b.Volatiles[ra.Battler].Special.PendingBatonPass
	b.Volatiles[ra.Battler].Special.PendingBatonPass = false
	b.switchIn(ra.Battler, ra.PartySlot, batonPass)
}

// executeMove resolves a single battler's move action: an unresolved
// two-turn move repeats the move that started charging (skipping the
// usability check), an unusable chosen move fails the action, and
// otherwise the move's effect script runs through RunScript.
func (b *Battle) executeMove(ra *ResolvedAction) {
	vol := &b.Volatiles[ra.Battler]
	move := ra.Move

	if vol.Turn.Charging {
		// twoTurnMove sees Charging still set and releases the hit.
		if last := b.Scratch.Battlers[ra.Battler].LastUsedMove; last != data.MoveNone {
			move = last
		}
	} else if move != data.MoveStruggle && !b.moveUsable(ra.Battler, move) {
		b.Log.append(LogEvent{Turn: b.Turn, Kind: EventMoveFailed, Battler: ra.Battler, Move: move, Reason: "unusable"})
		return
	}

	target := b.defaultTarget(ra.Battler)
	if target < 0 {
		return
	}

	b.Scratch.AttackerID = ra.Battler
	b.Scratch.TargetID = target
	b.Scratch.CurrentMove = move
	b.Scratch.CurrentSlot = ra.MoveSlot

	b.RunScript(ra.Battler, target, move, 1)
}

// defaultTarget resolves the opposing slot a single-target move aims
// at, honoring Follow-Me redirection on the defending side; returns -1
// if no living opponent remains to target.
func (b *Battle) defaultTarget(attacker int) int {
	opSide := 1 - sideOf(attacker)
	if ft := b.Sides[opSide].FollowMeTarget; b.Sides[opSide].FollowMeTurns > 0 && ft >= 0 {
		if c := b.Combatant(ft); c != nil && !c.Fainted() {
			return ft
		}
	}
	for i := 0; i < 4; i++ {
		if sideOf(i) != opSide || !b.Active[i].Present {
			continue
		}
		if c := b.Combatant(i); c != nil && !c.Fainted() {
			return i
		}
	}
	return -1
}

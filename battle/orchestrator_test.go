package battle

import (
	"testing"

	"github.com/emeraldfactory/battlecore/data"
	"github.com/emeraldfactory/battlecore/rng"
)

func newTestBattleWithRNG(a, d *Combatant, seed uint32) *Battle {
	b := newTestBattle(a, d)
	b.RNG = rng.New(seed)
	return b
}

func TestOrderActionsSwitchesBeforeMoves(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	reserve := newTestCombatant(data.SpeciesVulpix, 50, data.Fire, data.Fire)
	atk.Moves[0] = NewMoveSlot(data.MoveTackle)
	b := newTestBattleWithRNG(atk, def, 1)
	b.Parties[1].Members = append(b.Parties[1].Members, reserve)

	actions := []Action{
		{Battler: 0, Kind: ActionMove, MoveSlot: 0},
		{Battler: 1, Kind: ActionSwitch, PartySlot: 1},
	}
	resolved := b.orderActions(actions)
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved actions, got %d", len(resolved))
	}
	if resolved[0].Kind != ActionSwitch || resolved[0].Battler != 1 {
		t.Fatalf("expected the switch to be ordered first, got %+v", resolved[0])
	}
}

func TestOrderActionsHigherPriorityMovesFirst(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	atk.Moves[0] = NewMoveSlot(data.MoveTackle)
	def.Moves[0] = NewMoveSlot(data.MoveQuickAttack)
	b := newTestBattleWithRNG(atk, def, 7)

	actions := []Action{
		{Battler: 0, Kind: ActionMove, MoveSlot: 0},
		{Battler: 1, Kind: ActionMove, MoveSlot: 0},
	}
	resolved := b.orderActions(actions)
	if resolved[0].Battler != 1 {
		t.Fatalf("expected Quick Attack's +1 priority to strike first, got battler %d first", resolved[0].Battler)
	}
}

func TestOrderActionsFasterSpeedBreaksPriorityTie(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	atk.Moves[0] = NewMoveSlot(data.MoveTackle)
	def.Moves[0] = NewMoveSlot(data.MoveTackle)
	atk.BaseStat[3] = 100
	def.BaseStat[3] = 30
	b := newTestBattleWithRNG(atk, def, 3)

	actions := []Action{
		{Battler: 0, Kind: ActionMove, MoveSlot: 0},
		{Battler: 1, Kind: ActionMove, MoveSlot: 0},
	}
	resolved := b.orderActions(actions)
	if resolved[0].Battler != 0 {
		t.Fatalf("expected the faster battler (0) to strike first, got battler %d first", resolved[0].Battler)
	}
}

func TestValidateActionsRejectsUnknownBattler(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	b := newTestBattleWithRNG(atk, def, 1)

	err := b.validateActions([]Action{{Battler: 9, Kind: ActionMove}})
	if err == nil {
		t.Fatalf("expected an error for an out-of-range battler id")
	}
}

func TestValidateActionsRejectsEmptyMoveSlot(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	b := newTestBattleWithRNG(atk, def, 1)

	err := b.validateActions([]Action{{Battler: 0, Kind: ActionMove, MoveSlot: 0}})
	if err == nil {
		t.Fatalf("expected an error for an empty move slot")
	}
}

func TestProcessTurnAppliesDamageAndAdvancesTurn(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	atk.Moves[0] = NewMoveSlot(data.MoveStruggle)
	def.Moves[0] = NewMoveSlot(data.MoveStruggle)
	b := newTestBattleWithRNG(atk, def, 42)

	startHP := def.HP
	err := b.ProcessTurn([]Action{
		{Battler: 0, Kind: ActionMove, MoveSlot: 0},
		{Battler: 1, Kind: ActionMove, MoveSlot: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Turn != 1 {
		t.Fatalf("expected turn counter to advance to 1, got %d", b.Turn)
	}
	if def.HP >= startHP && atk.HP >= startHP {
		t.Fatalf("expected at least one combatant to take damage")
	}
}

func TestProcessTurnRejectsInvalidActionWithoutMutatingState(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	b := newTestBattleWithRNG(atk, def, 1)

	err := b.ProcessTurn([]Action{{Battler: 0, Kind: ActionMove, MoveSlot: 0}})
	if err == nil {
		t.Fatalf("expected an error for an empty move slot")
	}
	if b.Turn != 0 {
		t.Fatalf("expected the turn counter to stay at 0 after a rejected action, got %d", b.Turn)
	}
}

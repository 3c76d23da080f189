package battle

import (
	"testing"

	"github.com/emeraldfactory/battlecore/data"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	atk.Moves[0] = NewMoveSlot(data.MoveTackle)
	def.Moves[0] = NewMoveSlot(data.MoveTackle)
	b := newTestBattleWithRNG(atk, def, 42)
	b.Volatiles[0].Special.SeededBy = 1

	snap := b.Snapshot()
	restored := Restore(snap)

	if restored.RNG.Seed() != b.RNG.Seed() {
		t.Fatalf("expected restored RNG seed to match, got %d want %d", restored.RNG.Seed(), b.RNG.Seed())
	}
	if restored.Combatant(0).HP != b.Combatant(0).HP {
		t.Fatalf("expected restored HP to match original")
	}
	if restored.Volatiles[0].Special.SeededBy != 1 {
		t.Fatalf("expected seeded-by to survive the round trip, got %d", restored.Volatiles[0].Special.SeededBy)
	}
}

func TestSnapshotRestorePreservesDeterminism(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	atk.Moves[0] = NewMoveSlot(data.MoveStruggle)
	def.Moves[0] = NewMoveSlot(data.MoveStruggle)
	b := newTestBattleWithRNG(atk, def, 42)

	restored := Restore(b.Snapshot())
	actions := []Action{
		{Battler: 0, Kind: ActionMove, MoveSlot: 0},
		{Battler: 1, Kind: ActionMove, MoveSlot: 0},
	}

	if err := b.ProcessTurn(actions); err != nil {
		t.Fatalf("unexpected error on original: %v", err)
	}
	if err := restored.ProcessTurn(actions); err != nil {
		t.Fatalf("unexpected error on restored: %v", err)
	}

	if restored.Combatant(0).HP != b.Combatant(0).HP || restored.Combatant(1).HP != b.Combatant(1).HP {
		t.Fatalf("expected identical HP after an identical turn on original and restored battles")
	}
}

func TestMarshalUnmarshalSnapshotRoundTrip(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	b := newTestBattleWithRNG(atk, def, 7)
	b.Turn = 3

	encoded, err := b.MarshalSnapshot()
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	restored, err := UnmarshalSnapshot(encoded)
	if err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if restored.Turn != b.Turn {
		t.Fatalf("expected turn to survive bson round trip, got %d want %d", restored.Turn, b.Turn)
	}
	if restored.RNG.Seed() != b.RNG.Seed() {
		t.Fatalf("expected RNG seed to survive bson round trip")
	}
}

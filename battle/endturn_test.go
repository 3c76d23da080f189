package battle

import (
	"testing"

	"github.com/emeraldfactory/battlecore/data"
)

func TestEndTurnPoisonDamage(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	def.Status1 = def.Status1.WithPoison()
	b := newTestBattle(atk, def)

	b.runBattlerResiduals(1)

	want := def.MaxHP / 8
	if def.HP != def.MaxHP-want {
		t.Fatalf("expected poison to deal %d, battler at %d/%d", want, def.HP, def.MaxHP)
	}
}

func TestEndTurnToxicCounterEscalates(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	def.Status1 = def.Status1.WithToxic()
	b := newTestBattle(atk, def)

	b.runBattlerResiduals(1)
	first := def.MaxHP - def.HP
	hpAfterFirst := def.HP

	b.runBattlerResiduals(1)
	second := hpAfterFirst - def.HP

	if second <= first {
		t.Fatalf("expected toxic damage to grow turn over turn: first=%d second=%d", first, second)
	}
}

func TestEndTurnLeechSeedDrain(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	atk.HP = atk.MaxHP - 20
	b := newTestBattle(atk, def)
	b.Volatiles[1].Special.SeededBy = 0

	b.runBattlerResiduals(1)

	want := def.MaxHP / 8
	if def.HP != def.MaxHP-want {
		t.Fatalf("expected leech seed to drain %d from target, at %d/%d", want, def.HP, def.MaxHP)
	}
	if atk.HP <= atk.MaxHP-20 {
		t.Fatalf("expected leech seed to heal the seeder, at %d", atk.HP)
	}
}

func TestEndTurnLeechSeedBlockedByGrassType(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	b := newTestBattle(atk, def)
	effectLeechSeed(b, &ExecCtx{Attacker: 0, Target: 1, Move: data.MoveLeechSeed})

	b.runBattlerResiduals(1)

	if def.HP != def.MaxHP {
		t.Fatalf("leech seed should never be applied to a Grass type, got %d/%d", def.HP, def.MaxHP)
	}
}

func TestEndTurnLeftoversHeal(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	def.Item = data.ItemLeftovers
	def.HP = def.MaxHP - 50
	b := newTestBattle(atk, def)

	b.runBattlerResiduals(1)

	want := def.MaxHP - 50 + def.MaxHP/16
	if def.HP != want {
		t.Fatalf("expected leftovers to heal up to %d, got %d", want, def.HP)
	}
}

func TestEndTurnWrapDamageAndExpiry(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	def.Status2 = def.Status2.WithWrap(1)
	def.Status2 |= status2EscapePrevent
	b := newTestBattle(atk, def)

	b.residualWrap(1)

	if def.Status2.WrapTurns() != 0 {
		t.Fatalf("expected wrap counter to hit zero, got %d", def.Status2.WrapTurns())
	}
	if def.Status2.Has(status2EscapePrevent) {
		t.Fatalf("expected escape-prevention to clear once wrap expires")
	}
	want := def.MaxHP / 16
	if def.HP != def.MaxHP-want {
		t.Fatalf("expected wrap to deal %d, at %d/%d", want, def.HP, def.MaxHP)
	}
}

func TestEndTurnUproarWakesSleepers(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	atk.Status2 = atk.Status2.WithUproar(2)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	def.Status1 = def.Status1.WithSleep(3)
	b := newTestBattle(atk, def)

	b.residualUproar(0)

	if def.Status1.IsAsleep() {
		t.Fatalf("expected uproar to wake every sleeping battler")
	}
}

func TestAutoReplaceSwapsInFirstAliveReserve(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	reserve := newTestCombatant(data.SpeciesVulpix, 50, data.Fire, data.Fire)
	b := newTestBattle(atk, def)
	b.Parties[1].Members = append(b.Parties[1].Members, reserve)
	def.HP = 0

	b.tryAutoReplace(1)

	if b.Active[1].PartyIndex != 1 {
		t.Fatalf("expected slot 1 to be replaced by party index 1, got %d", b.Active[1].PartyIndex)
	}
	if b.Combatant(1) != reserve {
		t.Fatalf("expected reserve to become the active combatant")
	}
}

package battle

import (
	"testing"

	"github.com/emeraldfactory/battlecore/data"
)

func newTestCombatant(species data.SpeciesID, level int, t1, t2 data.Type) *Combatant {
	info := data.SpeciesTable(species)
	c := &Combatant{
		Species: species,
		Level:   level,
		Type1:   t1,
		Type2:   t2,
		Ability: info.Ability1,
	}
	for i := range c.Stages {
		c.Stages[i] = neutralStage
	}
	c.BaseStat[0] = info.Base.HP
	c.BaseStat[1] = info.Base.Atk
	c.BaseStat[2] = info.Base.Def
	c.BaseStat[3] = info.Base.Spe
	c.BaseStat[4] = info.Base.SpA
	c.BaseStat[5] = info.Base.SpD
	c.MaxHP = 100
	c.HP = 100
	return c
}

func newTestBattle(a, d *Combatant) *Battle {
	b := &Battle{
		Parties: [2]*Party{{Members: []*Combatant{a}}, {Members: []*Combatant{d}}},
		Sides:   [2]*SideState{{FollowMeTarget: -1}, {FollowMeTarget: -1}},
		Log:     NewLog(),
	}
	b.Active[0] = ActiveSlot{Present: true, PartyIndex: 0}
	b.Active[1] = ActiveSlot{Present: true, PartyIndex: 0}
	for i := range b.Volatiles {
		b.Volatiles[i] = NewVolatile()
	}
	return b
}

func TestCalcDamageNeutralHit(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	b := newTestBattle(atk, def)

	res := b.CalcDamage(0, 1, data.MoveTackle, false, 1)
	if res.Damage <= 0 {
		t.Fatalf("expected positive damage, got %d", res.Damage)
	}
}

func TestCalcDamageImmune(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	def := newTestCombatant(data.SpeciesRattata, 50, data.Ghost, data.Ghost)
	b := newTestBattle(atk, def)

	res := b.CalcDamage(0, 1, data.MoveTackle, false, 1)
	if !res.Immune || res.Damage != 0 {
		t.Fatalf("expected Normal-vs-Ghost immunity, got %+v", res)
	}
}

func TestCalcDamageFlashFireBoostsLaterFireMove(t *testing.T) {
	atk := newTestCombatant(data.SpeciesVulpix, 50, data.Fire, data.Fire)
	atk.Ability = data.AbilityFlashFire
	def := newTestCombatant(data.SpeciesBulbasaur, 50, data.Grass, data.Poison)
	b := newTestBattle(atk, def)

	first := b.CalcDamage(1, 0, data.MoveEmber, false, 1)
	if !first.FlashFireSet || first.Damage != 0 {
		t.Fatalf("expected Flash Fire to absorb the first Fire hit, got %+v", first)
	}
	if !b.Volatiles[0].Special.FlashFireBoosted {
		t.Fatalf("expected Flash Fire flag set on battler 0")
	}

	second := b.CalcDamage(0, 1, data.MoveEmber, false, 1)
	if second.Damage <= 0 {
		t.Fatalf("expected boosted Ember to deal damage, got %d", second.Damage)
	}
}

func TestCalcDamageCriticalIgnoresNegativeAttackStage(t *testing.T) {
	atk := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	atk.Stages[StatAtk] = neutralStage - 2
	def := newTestCombatant(data.SpeciesRattata, 50, data.Normal, data.Normal)
	b := newTestBattle(atk, def)

	normal := b.CalcDamage(0, 1, data.MoveTackle, false, 1)
	crit := b.CalcDamage(0, 1, data.MoveTackle, true, 1)
	if crit.Damage <= normal.Damage {
		t.Fatalf("expected crit (ignoring lowered attack) to deal more damage: normal=%d crit=%d", normal.Damage, crit.Damage)
	}
}

func TestStageMultiplierBounds(t *testing.T) {
	num, den := stageMultiplier(-6)
	if num != 10 || den != 40 {
		t.Fatalf("stage -6 = %d/%d, want 10/40", num, den)
	}
	num, den = stageMultiplier(6)
	if num != 40 || den != 10 {
		t.Fatalf("stage +6 = %d/%d, want 40/10", num, den)
	}
	num, den = stageMultiplier(0)
	if num != 10 || den != 10 {
		t.Fatalf("stage 0 = %d/%d, want 10/10", num, den)
	}
}

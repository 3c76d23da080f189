package data

import "testing"

func TestUnknownMoveResolvesToNeutral(t *testing.T) {
	d := MoveTable(MoveID(60000))
	if d.Power != 0 || d.Type != Normal || d.Accuracy != 100 {
		t.Fatalf("unknown move did not resolve to neutral default: %+v", d)
	}
}

func TestUnknownSpeciesResolvesToNeutral(t *testing.T) {
	s := SpeciesTable(SpeciesID(60000))
	if s.Type1 != Normal || s.Base.HP != 100 {
		t.Fatalf("unknown species did not resolve to neutral default: %+v", s)
	}
}

func TestUnknownItemResolvesToNeutral(t *testing.T) {
	r := ItemTable(ItemID(60000))
	if r.Effect != HoldNone {
		t.Fatalf("unknown item did not resolve to HoldNone: %+v", r)
	}
}

func TestTypeEffectivenessDoubleWeakness(t *testing.T) {
	// Ice vs Grass/Dragon (e.g. a hypothetical Dragon/Grass) should multiply.
	e1 := TypeEffectiveness(Ice, Grass, false)
	e2 := TypeEffectiveness(Ice, Dragon, false)
	if e1 != EffSuperEff || e2 != EffSuperEff {
		t.Fatalf("expected super effective both ways, got %v %v", e1, e2)
	}
	combined := e1.Multiplier() * e2.Multiplier()
	if combined != 4.0 {
		t.Fatalf("expected combined x4, got %v", combined)
	}
}

func TestGhostImmunityAndForesight(t *testing.T) {
	if TypeEffectiveness(Normal, Ghost, false) != EffImmune {
		t.Fatalf("Normal should be immune to Ghost by default")
	}
	if TypeEffectiveness(Normal, Ghost, true) != EffNormal {
		t.Fatalf("Foresight should remove Ghost's immunity to Normal")
	}
	if TypeEffectiveness(Fighting, Ghost, true) != EffNormal {
		t.Fatalf("Foresight should remove Ghost's immunity to Fighting")
	}
	if TypeEffectiveness(Psychic, Dark, true) != EffImmune {
		t.Fatalf("Foresight must not affect Dark's immunity to Psychic")
	}
}

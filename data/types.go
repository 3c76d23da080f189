// Package data holds the engine's read-only static lookups: species base
// stats, move data, item hold effects, and the type effectiveness chart.
// Every lookup here is immutable and safe to share across many Battle
// instances; callers must never mutate a returned record. An unknown id
// never panics — it resolves to a neutral default (see each Lookup
// function's doc comment).
package data

// Type is a Gen-3 elemental type. Secondary may equal Primary for
// mono-typed species.
type Type uint8

const (
	Normal Type = iota
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark
	TypeCount
)

// physicalTypes mirrors pokeemerald's pre-split physical/special category:
// a move's category follows its type, not a per-move flag.
var physicalTypes = map[Type]bool{
	Normal: true, Fighting: true, Poison: true, Ground: true,
	Flying: true, Bug: true, Rock: true, Ghost: true, Steel: true,
}

// IsPhysical reports whether a move of this type uses the Attack/Defense
// stat pair rather than SpAttack/SpDefense.
func (t Type) IsPhysical() bool {
	return physicalTypes[t]
}

// Effectiveness is a type-chart multiplier encoded as tenths: 0, 5, 10, 20
// mean x0, x0.5, x1, x2 respectively.
type Effectiveness int

const (
	EffImmune    Effectiveness = 0
	EffResisted  Effectiveness = 5
	EffNormal    Effectiveness = 10
	EffSuperEff  Effectiveness = 20
)

// Multiplier returns the float multiplier for an Effectiveness value.
func (e Effectiveness) Multiplier() float64 {
	return float64(e) / 10.0
}

type typePair struct {
	attack, defend Type
}

// typeChart encodes the Gen-3 type matchup triples. Pairs absent from the
// map default to EffNormal (x1). A Foresight/Scrappy-style sentinel is
// handled by the caller: TypeEffectiveness takes an ignoreGhostImmunity
// flag that suppresses the Ghost-vs-Normal/Fighting immunity rows.
var typeChart = map[typePair]Effectiveness{
	{Normal, Rock}: EffResisted, {Normal, Steel}: EffResisted, {Normal, Ghost}: EffImmune,

	{Fighting, Normal}: EffSuperEff, {Fighting, Flying}: EffResisted, {Fighting, Poison}: EffResisted,
	{Fighting, Rock}: EffSuperEff, {Fighting, Bug}: EffResisted, {Fighting, Ghost}: EffImmune,
	{Fighting, Steel}: EffSuperEff, {Fighting, Psychic}: EffResisted, {Fighting, Ice}: EffSuperEff,
	{Fighting, Dark}: EffSuperEff,

	{Flying, Fighting}: EffSuperEff, {Flying, Rock}: EffResisted, {Flying, Bug}: EffSuperEff,
	{Flying, Steel}: EffResisted, {Flying, Grass}: EffSuperEff, {Flying, Electric}: EffResisted,

	{Poison, Poison}: EffResisted, {Poison, Ground}: EffResisted, {Poison, Rock}: EffResisted,
	{Poison, Ghost}: EffResisted, {Poison, Steel}: EffImmune, {Poison, Grass}: EffSuperEff,

	{Ground, Flying}: EffImmune, {Ground, Poison}: EffSuperEff, {Ground, Rock}: EffSuperEff,
	{Ground, Bug}: EffResisted, {Ground, Steel}: EffSuperEff, {Ground, Fire}: EffSuperEff,
	{Ground, Grass}: EffResisted, {Ground, Electric}: EffSuperEff,

	{Rock, Fighting}: EffResisted, {Rock, Ground}: EffResisted, {Rock, Steel}: EffResisted,
	{Rock, Fire}: EffSuperEff, {Rock, Flying}: EffSuperEff, {Rock, Bug}: EffSuperEff, {Rock, Ice}: EffSuperEff,

	{Bug, Fighting}: EffResisted, {Bug, Flying}: EffResisted, {Bug, Poison}: EffResisted,
	{Bug, Ghost}: EffResisted, {Bug, Steel}: EffResisted, {Bug, Fire}: EffResisted,
	{Bug, Grass}: EffSuperEff, {Bug, Psychic}: EffSuperEff, {Bug, Dark}: EffSuperEff,

	{Ghost, Normal}: EffImmune, {Ghost, Ghost}: EffSuperEff, {Ghost, Dark}: EffResisted, {Ghost, Psychic}: EffSuperEff, {Ghost, Steel}: EffResisted,

	{Steel, Rock}: EffSuperEff, {Steel, Steel}: EffResisted, {Steel, Fire}: EffResisted,
	{Steel, Water}: EffResisted, {Steel, Electric}: EffResisted, {Steel, Ice}: EffSuperEff,

	{Fire, Rock}: EffResisted, {Fire, Bug}: EffSuperEff, {Fire, Steel}: EffSuperEff, {Fire, Fire}: EffResisted,
	{Fire, Water}: EffResisted, {Fire, Grass}: EffSuperEff, {Fire, Ice}: EffSuperEff, {Fire, Dragon}: EffResisted,

	{Water, Ground}: EffSuperEff, {Water, Rock}: EffSuperEff, {Water, Fire}: EffSuperEff,
	{Water, Water}: EffResisted, {Water, Grass}: EffResisted, {Water, Dragon}: EffResisted,

	{Grass, Flying}: EffResisted, {Grass, Poison}: EffResisted, {Grass, Ground}: EffSuperEff,
	{Grass, Rock}: EffSuperEff, {Grass, Bug}: EffResisted, {Grass, Fire}: EffResisted,
	{Grass, Water}: EffSuperEff, {Grass, Grass}: EffResisted, {Grass, Dragon}: EffResisted, {Grass, Steel}: EffResisted,

	{Electric, Ground}: EffImmune, {Electric, Flying}: EffSuperEff, {Electric, Water}: EffSuperEff,
	{Electric, Grass}: EffResisted, {Electric, Electric}: EffResisted, {Electric, Dragon}: EffResisted,

	{Psychic, Fighting}: EffSuperEff, {Psychic, Poison}: EffSuperEff, {Psychic, Psychic}: EffResisted,
	{Psychic, Steel}: EffResisted, {Psychic, Dark}: EffImmune,

	{Ice, Flying}: EffSuperEff, {Ice, Ground}: EffSuperEff, {Ice, Grass}: EffSuperEff, {Ice, Dragon}: EffSuperEff,
	{Ice, Water}: EffResisted, {Ice, Fire}: EffResisted, {Ice, Ice}: EffResisted, {Ice, Steel}: EffResisted,

	{Dragon, Dragon}: EffSuperEff, {Dragon, Steel}: EffResisted,

	{Dark, Ghost}: EffSuperEff, {Dark, Psychic}: EffSuperEff, {Dark, Dark}: EffResisted,
	{Dark, Fighting}: EffResisted, {Dark, Steel}: EffResisted,
}

// TypeEffectiveness returns the matchup multiplier for attackType vs
// defendType. ignoreGhostImmunity, when set (Foresight/Odor Sleuth/Scrappy
// on the attacker), removes Ghost's immunity to Normal and Fighting.
func TypeEffectiveness(attackType, defendType Type, ignoreGhostImmunity bool) Effectiveness {
	if ignoreGhostImmunity && defendType == Ghost && (attackType == Normal || attackType == Fighting) {
		return EffNormal
	}
	if e, ok := typeChart[typePair{attackType, defendType}]; ok {
		return e
	}
	return EffNormal
}

package battle

import "github.com/emeraldfactory/battlecore/data"

// SemiInvulnState names a two-turn move's mid-flight/underground/
// underwater state, used by AccuracyCheck's exception table.
type SemiInvulnState uint8

const (
	SemiNone SemiInvulnState = iota
	SemiAir
	SemiUnderground
	SemiUnderwater
)

// DisableBlock holds every countdown/identifier that the source keeps in
// its "disable" struct: Disable, Encore, Perish Song, Rollout/Fury
// Cutter streaks, Charge, Taunt, Yawn, Bide, Lock-On, Protect chain,
// Stockpile, and Substitute HP.
type DisableBlock struct {
	DisabledMove     data.MoveID
	DisableTurns     int
	EncoreMove       data.MoveID
	EncoreSlot       int
	EncoreTurns      int
	PerishSongTurns  int
	RolloutCount     int // Rollout/Ice Ball streak read by effectivePowerAndType; nothing increments it, so the moves stay at base power
	FuryCutterCount  int // Fury Cutter streak read by effectivePowerAndType; nothing increments it, so the move stays at base power
	DefenseCurlUsed  bool
	ChargeTurns      int
	TauntTurns       int
	YawnTurns        int
	BideTurns        int
	BideDamage       int
	BideTarget       int
	LockOnTarget     int
	LockOnTurns      int
	ProtectChain     int // consecutive Protect/Endure uses this battler has stacked
	Stockpile        int
	SubstituteHP     int
	Truant           bool
}

// ThisTurnBlock holds flags computed fresh at the start of a battler's
// action and cleared at the end of each ProcessTurn, next to the scratch
// reset (Charging alone is kept, for a two-turn move's release turn).
type ThisTurnBlock struct {
	Protecting     bool
	Enduring       bool
	HelpingHand    bool
	MagicCoat      bool
	Snatch         bool
	Charging       bool // mid-resolution of a two-turn move
	LastPhysicalDamage int
	LastPhysicalSource int
	LastSpecialDamage  int
	LastSpecialSource  int
	NotFirstStrike bool
}

// SpecialStatusBlock holds miscellaneous per-battler flags that don't fit
// a counter shape: Leech Seed's relationship, Pressure suppression,
// Lightning Rod redirection, and Flash Fire's boost flag.
type SpecialStatusBlock struct {
	SeededBy         int // battler id that planted Leech Seed, -1 if none
	SeedDrainAmount  int
	PressureIgnored  bool
	LightningRodTarget int
	FlashFireBoosted bool
	PendingBatonPass bool
}

// Status3 groups boolean flags the design notes call out as deserving
// their own typed fields rather than living in the Status2 bitset.
type Status3 struct {
	Semi        SemiInvulnState
	Minimized   bool
	Rooted      bool // Ingrain
	MudSport    bool
	WaterSport  bool
}

// Volatile is the full per-active-slot state: everything in §3's
// "per-battler volatile structs" that isn't already on the Combatant
// value itself.
type Volatile struct {
	Disable DisableBlock
	Turn    ThisTurnBlock
	Special SpecialStatusBlock
	Status3 Status3
}

// ResetOnSwitch clears everything except the Baton-Pass allow-listed
// subset, per §9's switching policy. batonPass carries forward the
// values that should survive (stat stages are handled on Combatant by
// the caller; this only covers the Volatile fields in the allow-list).
func (v *Volatile) ResetOnSwitch(batonPass bool) {
	keep := NewVolatile()
	if batonPass {
		keep.Disable.SubstituteHP = v.Disable.SubstituteHP
		keep.Disable.LockOnTarget = v.Disable.LockOnTarget
		keep.Disable.LockOnTurns = v.Disable.LockOnTurns
		keep.Disable.PerishSongTurns = v.Disable.PerishSongTurns
		keep.Special.SeededBy = v.Special.SeededBy
		keep.Special.SeedDrainAmount = v.Special.SeedDrainAmount
		keep.Status3.Rooted = v.Status3.Rooted
		keep.Status3.MudSport = v.Status3.MudSport
		keep.Status3.WaterSport = v.Status3.WaterSport
	}
	*v = keep
}

// NewVolatile returns a zeroed Volatile with sentinel fields set to
// their "nothing active" values (SeededBy -1 rather than 0, since 0 is a
// valid battler id).
func NewVolatile() Volatile {
	v := Volatile{}
	v.Special.SeededBy = -1
	v.Disable.LockOnTarget = -1
	v.Disable.BideTarget = -1
	v.Special.LightningRodTarget = -1
	return v
}

package battle

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/emeraldfactory/battlecore/data"
	"github.com/emeraldfactory/battlecore/rng"
)

// BattleSnapshot is a bson-taggable mirror of Battle, for callers that
// persist the whole value between turns rather than keeping it resident
// in memory (see §6: "callers may snapshot the whole Battle value
// between turns"). It follows the teacher's own persistence idiom —
// bson struct tags on plain value types, no ORM/collection wrapper —
// the same shape players.PlayerGameState and diplomacy.Pair use.
type BattleSnapshot struct {
	Parties   [2]PartySnapshot    `bson:"parties"`
	Active    [4]ActiveSlot       `bson:"active"`
	Volatiles [4]VolatileSnapshot `bson:"volatiles"`
	Delayed   [4]DelayedEffects   `bson:"delayed"`
	Sides     [2]SideState        `bson:"sides"`
	Field     FieldState          `bson:"field"`
	Scratch   ScratchSnapshot     `bson:"scratch"`
	Seed      uint32              `bson:"seed"`
	Turn      int                 `bson:"turn"`
	Over      bool                `bson:"over"`
	Winner    int                 `bson:"winner"`
	Doubles   bool                `bson:"doubles"`
}

// PartySnapshot mirrors Party; Combatant is flattened into a bson-tagged
// value type since Party.Members holds pointers.
type PartySnapshot struct {
	Members []CombatantSnapshot `bson:"members"`
}

// CombatantSnapshot mirrors Combatant field-for-field under bson tags.
type CombatantSnapshot struct {
	Species    data.SpeciesID `bson:"species"`
	Level      int            `bson:"level"`
	MaxHP      int            `bson:"maxHp"`
	HP         int            `bson:"hp"`
	IVs        [6]int         `bson:"ivs"`
	BaseStat   [6]int         `bson:"baseStat"`
	Ability    data.AbilityID `bson:"ability"`
	Item       data.ItemID    `bson:"item"`
	Type1      data.Type      `bson:"type1"`
	Type2      data.Type      `bson:"type2"`
	Moves      [4]MoveSlot    `bson:"moves"`
	Stages     [statCount]int `bson:"stages"`
	Status1    Status1        `bson:"status1"`
	Status2    Status2        `bson:"status2"`
	Friendship int            `bson:"friendship"`
}

// VolatileSnapshot mirrors Volatile block-for-block under bson tags.
type VolatileSnapshot struct {
	Disable        DisableBlock      `bson:"disable"`
	Turn           ThisTurnBlock     `bson:"turn"`
	Special        SpecialStatusBlock `bson:"special"`
	Status3        Status3           `bson:"status3"`
}

// ScratchSnapshot carries only the TurnScratch fields that survive a
// turn boundary (LastUsedMove, Grudge, Imprison, Pay Day); the rest of
// TurnScratch is reset at the start of every turn and is not meaningful
// to persist.
type ScratchSnapshot struct {
	Battlers [4]BattlerScratchSnapshot `bson:"battlers"`
}

// BattlerScratchSnapshot mirrors PerBattlerScratch's persistent fields;
// ImprisonSealed is flattened from a map into a slice since bson
// round-trips map[data.MoveID]bool awkwardly (non-string keys),
// following diplomacy.Pair's practice of normalizing a teacher type
// before it crosses the persistence boundary.
type BattlerScratchSnapshot struct {
	LastUsedMove   data.MoveID    `bson:"lastUsedMove"`
	GrudgeActive   bool           `bson:"grudgeActive"`
	ImprisonActive bool           `bson:"imprisonActive"`
	ImprisonSealed []data.MoveID  `bson:"imprisonSealed"`
	PayDayCounter  int            `bson:"payDayCounter"`
}

// Snapshot captures b's full state as a BattleSnapshot, suitable for
// bson.Marshal and storage between turns.
func (b *Battle) Snapshot() BattleSnapshot {
	var s BattleSnapshot
	for i, party := range b.Parties {
		s.Parties[i].Members = make([]CombatantSnapshot, len(party.Members))
		for j, c := range party.Members {
			if c == nil {
				continue
			}
			s.Parties[i].Members[j] = CombatantSnapshot{
				Species: c.Species, Level: c.Level, MaxHP: c.MaxHP, HP: c.HP,
				IVs: c.IVs, BaseStat: c.BaseStat, Ability: c.Ability, Item: c.Item,
				Type1: c.Type1, Type2: c.Type2, Moves: c.Moves, Stages: c.Stages,
				Status1: c.Status1, Status2: c.Status2, Friendship: c.Friendship,
			}
		}
	}
	s.Active = b.Active
	for i, v := range b.Volatiles {
		s.Volatiles[i] = VolatileSnapshot{Disable: v.Disable, Turn: v.Turn, Special: v.Special, Status3: v.Status3}
	}
	s.Delayed = b.Delayed
	for i, side := range b.Sides {
		if side != nil {
			s.Sides[i] = *side
		}
	}
	s.Field = b.Field
	for i, bs := range b.Scratch.Battlers {
		sealed := make([]data.MoveID, 0, len(bs.ImprisonSealed))
		for m := range bs.ImprisonSealed {
			sealed = append(sealed, m)
		}
		s.Scratch.Battlers[i] = BattlerScratchSnapshot{
			LastUsedMove: bs.LastUsedMove, GrudgeActive: bs.GrudgeActive,
			ImprisonActive: bs.ImprisonActive, ImprisonSealed: sealed,
			PayDayCounter: bs.PayDayCounter,
		}
	}
	s.Seed = b.RNG.Seed()
	s.Turn = b.Turn
	s.Over = b.over
	s.Winner = b.winner
	s.Doubles = b.doubles
	return s
}

// Restore rebuilds a live Battle from a snapshot taken by Snapshot. The
// returned Battle's RNG continues deterministically from the saved
// seed, and its Log starts empty — the log is a per-process narration
// trail, not part of persisted state (see §6's "Persisted state layout:
// none required" note).
func Restore(s BattleSnapshot) *Battle {
	b := &Battle{
		Parties: [2]*Party{{}, {}},
		Sides:   [2]*SideState{{}, {}},
		Field:   s.Field,
		RNG:     rng.New(s.Seed),
		Log:     NewLog(),
		Turn:    s.Turn,
		over:    s.Over,
		winner:  s.Winner,
		doubles: s.Doubles,
	}
	for i, party := range s.Parties {
		b.Parties[i].Members = make([]*Combatant, len(party.Members))
		for j, cs := range party.Members {
			b.Parties[i].Members[j] = &Combatant{
				Species: cs.Species, Level: cs.Level, MaxHP: cs.MaxHP, HP: cs.HP,
				IVs: cs.IVs, BaseStat: cs.BaseStat, Ability: cs.Ability, Item: cs.Item,
				Type1: cs.Type1, Type2: cs.Type2, Moves: cs.Moves, Stages: cs.Stages,
				Status1: cs.Status1, Status2: cs.Status2, Friendship: cs.Friendship,
			}
		}
	}
	b.Active = s.Active
	for i, vs := range s.Volatiles {
		b.Volatiles[i] = Volatile{Disable: vs.Disable, Turn: vs.Turn, Special: vs.Special, Status3: vs.Status3}
	}
	b.Delayed = s.Delayed
	for i := range s.Sides {
		side := s.Sides[i]
		b.Sides[i] = &side
	}
	b.Scratch = newTurnScratch()
	for i, bs := range s.Scratch.Battlers {
		sealed := map[data.MoveID]bool{}
		for _, m := range bs.ImprisonSealed {
			sealed[m] = true
		}
		b.Scratch.Battlers[i] = PerBattlerScratch{
			LastUsedMove: bs.LastUsedMove, GrudgeActive: bs.GrudgeActive,
			ImprisonActive: bs.ImprisonActive, ImprisonSealed: sealed,
			PayDayCounter: bs.PayDayCounter,
		}
	}
	return b
}

// MarshalSnapshot bson-encodes b's current state, the wire format a
// caller would write to a mongo-driver collection or any other bson
// sink between turns.
func (b *Battle) MarshalSnapshot() ([]byte, error) {
	return bson.Marshal(b.Snapshot())
}

// UnmarshalSnapshot decodes bson-encoded bytes produced by
// MarshalSnapshot and restores a live Battle from them.
func UnmarshalSnapshot(data []byte) (*Battle, error) {
	var s BattleSnapshot
	if err := bson.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return Restore(s), nil
}

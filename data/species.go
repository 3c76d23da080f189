package data

// BaseStats are a species' level-independent stat bases used by the
// Combatant stat formula (owned by the out-of-scope party-assembly
// collaborator; the engine only reads species_info for the handful of
// species-gated interactions named in §4.D, e.g. Thick Club/Light Ball).
type BaseStats struct {
	HP, Atk, Def, Spe, SpA, SpD int
}

// SpeciesInfo is the static record returned by SpeciesTable lookups.
type SpeciesInfo struct {
	Base               BaseStats
	Type1, Type2        Type
	Ability1, Ability2 AbilityID
	FriendshipDefault  int
	WeightHectograms   int
}

var neutralSpecies = SpeciesInfo{
	Base:              BaseStats{HP: 100, Atk: 100, Def: 100, Spe: 100, SpA: 100, SpD: 100},
	Type1:             Normal,
	Type2:             Normal,
	FriendshipDefault: 70,
	WeightHectograms:  200,
}

var speciesTable = map[SpeciesID]SpeciesInfo{
	SpeciesRattata: {
		Base:              BaseStats{HP: 30, Atk: 56, Def: 35, Spe: 72, SpA: 25, SpD: 35},
		Type1:             Normal, Type2: Normal,
		Ability1: AbilityNone, FriendshipDefault: 70, WeightHectograms: 35,
	},
	SpeciesBulbasaur: {
		Base:              BaseStats{HP: 45, Atk: 49, Def: 49, Spe: 45, SpA: 65, SpD: 65},
		Type1:             Grass, Type2: Poison,
		Ability1: AbilityNone, FriendshipDefault: 70, WeightHectograms: 69,
	},
	SpeciesVulpix: {
		Base:              BaseStats{HP: 38, Atk: 41, Def: 40, Spe: 65, SpA: 50, SpD: 65},
		Type1:             Fire, Type2: Fire,
		Ability1: AbilityFlashFire, FriendshipDefault: 70, WeightHectograms: 99,
	},
	SpeciesCubone: {
		Base:              BaseStats{HP: 50, Atk: 50, Def: 95, Spe: 35, SpA: 40, SpD: 50},
		Type1:             Ground, Type2: Ground,
		Ability1: AbilityNone, FriendshipDefault: 70, WeightHectograms: 65,
	},
	SpeciesMarowak: {
		Base:              BaseStats{HP: 60, Atk: 80, Def: 110, Spe: 45, SpA: 50, SpD: 80},
		Type1:             Ground, Type2: Ground,
		Ability1: AbilityNone, FriendshipDefault: 70, WeightHectograms: 450,
	},
	SpeciesPikachu: {
		Base:              BaseStats{HP: 35, Atk: 55, Def: 30, Spe: 90, SpA: 50, SpD: 40},
		Type1:             Electric, Type2: Electric,
		Ability1: AbilityStickyHold, FriendshipDefault: 70, WeightHectograms: 60,
	},
	SpeciesDitto: {
		Base:              BaseStats{HP: 48, Atk: 48, Def: 48, Spe: 48, SpA: 48, SpD: 48},
		Type1:             Normal, Type2: Normal,
		Ability1: AbilityNone, FriendshipDefault: 70, WeightHectograms: 40,
	},
	SpeciesClamperl: {
		Base:              BaseStats{HP: 35, Atk: 64, Def: 85, Spe: 32, SpA: 74, SpD: 55},
		Type1:             Water, Type2: Water,
		Ability1: AbilityNone, FriendshipDefault: 70, WeightHectograms: 525,
	},
	SpeciesGeodude: {
		Base:              BaseStats{HP: 40, Atk: 80, Def: 100, Spe: 20, SpA: 30, SpD: 30},
		Type1:             Rock, Type2: Ground,
		Ability1: AbilitySturdy, FriendshipDefault: 70, WeightHectograms: 200,
	},
}

// SpeciesTable returns the static record for id. An unknown id resolves
// to neutralSpecies rather than panicking.
func SpeciesTable(id SpeciesID) SpeciesInfo {
	if s, ok := speciesTable[id]; ok {
		return s
	}
	return neutralSpecies
}

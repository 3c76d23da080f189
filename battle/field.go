package battle

import "github.com/emeraldfactory/battlecore/data"

// Weather is the current field-wide weather condition.
type Weather uint8

const (
	WeatherNone Weather = iota
	WeatherSun
	WeatherRain
	WeatherSandstorm
	WeatherHail
)

// Environment is the battle terrain tag consumed by Nature Power, Secret
// Power, and Camouflage.
type Environment uint8

const (
	EnvGrass Environment = iota
	EnvLongGrass
	EnvSand
	EnvUnderwater
	EnvWater
	EnvPond
	EnvMountain
	EnvCave
	EnvBuilding
	EnvPlain
)

// FieldState holds weather and the (Gen-3-inert but present) terrain and
// gravity countdowns, plus the static environment tag.
type FieldState struct {
	Weather         Weather
	WeatherTurns    int
	TerrainTurns    int // unused in Gen-3 move paths, retained for parity
	GravityTurns    int // unused in Gen-3 move paths, retained for parity
	Environment     Environment
}

// NeutralizesWeather reports whether any active battler's ability
// suppresses weather-based damage/accuracy modifiers (Cloud Nine/Air
// Lock). The caller passes in the four active Combatants.
func (f *FieldState) NeutralizesWeather(actives [4]*Combatant) bool {
	for _, c := range actives {
		if c == nil || c.Fainted() {
			continue
		}
		if c.Ability == data.AbilityCloudNine || c.Ability == data.AbilityAirLock {
			return true
		}
	}
	return false
}

// SideStatusBit is a bitmask of side-wide statuses.
type SideStatusBit uint8

const (
	SideReflect SideStatusBit = 1 << iota
	SideLightScreen
	SideSafeguard
	SideMist
	SideSpikesPresent
)

// SideState holds one team's shared timers, hazards, and Follow-Me
// redirection.
type SideState struct {
	Statuses       SideStatusBit
	ReflectTurns   int
	LightScreenTurns int
	SafeguardTurns int
	MistTurns      int
	SpikesLayers   int // 0..3

	FollowMeTurns  int
	FollowMeTarget int // battler id redirected to, -1 if none
}

func (s *SideState) Has(bit SideStatusBit) bool { return s.Statuses&bit != 0 }

// DelayedEffects holds Wish and Future Sight scheduling for one active
// slot. It has no Knock-Off bitmask; item removal is not tracked here.
type DelayedEffects struct {
	WishTurns      int
	WishOrigin     int // party index whose max HP heals the slot

	FutureSightTurns    int
	FutureSightAttacker int
	FutureSightMove     data.MoveID
}

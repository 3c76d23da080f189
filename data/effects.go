package data

// MoveEffect classifies which script template a move runs (see the
// battle package's effect dispatch table). The source game has on the
// order of 240 distinct effect tags; this is the subset actually wired
// to a handler, grouped by family to mirror §4.E of the design.
type MoveEffect uint16

const (
	EffectHit MoveEffect = iota // plain damage, no secondary effect

	// Major status
	EffectSleep
	EffectPoisonHit // damage + chance to poison
	EffectPoison    // pure status move
	EffectToxic
	EffectBurnHit
	EffectWillOWisp
	EffectParalyzeHit
	EffectParalyze
	EffectFreezeHit

	// Volatile status
	EffectConfuse
	EffectConfuseHit
	EffectAttract
	EffectTaunt
	EffectTorment
	EffectDisable
	EffectEncore
	EffectFlinchHit
	EffectUproar
	EffectNightmare
	EffectCurse
	EffectYawn
	EffectLeechSeed
	EffectWrap
	EffectIngrain
	EffectDefenseCurl
	EffectMinimize
	EffectFocusEnergy

	// Stat stages
	EffectStatUp
	EffectStatUp2
	EffectStatDown
	EffectStatDownHit // damage + chance to lower a stat
	EffectStatUpHit

	// Fixed / special damage
	EffectDragonRage
	EffectSonicBoom
	EffectLevelDamage // Night Shade / Seismic Toss
	EffectSuperFang
	EffectEndeavor
	EffectOHKO

	// Multi-hit
	EffectMultiHit
	EffectDoubleHit
	EffectTripleKick

	// Two-turn / semi-invulnerable
	EffectTwoTurnFly
	EffectTwoTurnDig
	EffectTwoTurnDive
	EffectTwoTurnCharge // Razor Wind / Sky Attack style
	EffectSolarBeam

	// Healing
	EffectHealHalf
	EffectRest
	EffectWeatherHeal // Morning Sun / Synthesis / Moonlight
	EffectWish
	EffectIngrainHeal

	// Field effects / hazards
	EffectReflect
	EffectLightScreen
	EffectSafeguard
	EffectMist
	EffectSpikes
	EffectProtect
	EffectEndure
	EffectWeatherSun
	EffectWeatherRain
	EffectWeatherSand
	EffectWeatherHail
	EffectFollowMe

	// Substitute
	EffectSubstitute

	// Phazing
	EffectPhaze

	// Reaction moves
	EffectCounter
	EffectMirrorCoat
	EffectBide
	EffectDestinyBond
	EffectGrudge
	EffectPerishSong

	// Delayed
	EffectFutureSight

	// Imprison / Baton Pass
	EffectImprison
	EffectBatonPass

	// Meta-moves
	EffectMetronome
	EffectAssist
	EffectNaturePower
	EffectSleepTalk
	EffectMimic
	EffectSketch
	EffectRolePlay

	// Secret Power / Camouflage
	EffectSecretPower
	EffectCamouflage

	// Dynamic power family (handled inside the damage calculator but
	// still need a distinct tag so the effect dispatcher recognizes
	// them as plain-Hit variants with no secondary)
	EffectWeatherBall
	EffectHiddenPower
	EffectRecoil
	EffectDrain

	// Stockpile / Spit Up / Swallow
	EffectStockpile
	EffectSpitUp
	EffectSwallow

	// Explosion-style self-faint nukes
	EffectExplosion
)

package data

// TargetMode describes which battler(s) a move resolves against.
type TargetMode uint8

const (
	TargetSelected     TargetMode = iota // single chosen target
	TargetSelf                           // the user
	TargetAllOpponents                   // spread move, both foes in doubles
	TargetAllBattlers                    // field-wide (Perish Song)
	TargetField                          // no battler target (weather, hazards on a side)
	TargetDepends                        // resolved dynamically (Counter/Mirror Coat/Curse)
)

// MoveFlags is a bitset of move properties consulted by the damage
// calculator, the effect library, and AttackCanceler/AccuracyCheck.
type MoveFlags uint16

const (
	FlagMakesContact MoveFlags = 1 << iota
	FlagProtectable
	FlagMagicCoat
	FlagSnatchable
	FlagSound // bypasses Substitute, blocked by Soundproof
	FlagHighCrit
	FlagKingsRockAffected
	FlagDanceMove
	FlagAlwaysHit // e.g. Swift-style never-miss (unused by default table but reserved)
)

// Has reports whether every bit in want is set.
func (f MoveFlags) Has(want MoveFlags) bool { return f&want == want }

// MoveData is the static record returned by MoveTable lookups. Callers
// must not mutate the returned value.
type MoveData struct {
	Power           int
	Type            Type
	Accuracy        int // 0 means "always hits" (bypasses AccuracyCheck roll)
	PP              int
	Effect          MoveEffect
	Target          TargetMode
	Priority        int
	Flags           MoveFlags
	SecondaryChance int // percent, 0 if the effect has no chance gate
}

var neutralMove = MoveData{Power: 0, Type: Normal, Accuracy: 100, PP: 1, Effect: EffectHit, Target: TargetSelected}

// moveTable is the static move database. An id absent from this map is
// StaticDataMissing and resolves to neutralMove via MoveTable.
var moveTable = map[MoveID]MoveData{
	MoveTackle:       {Power: 35, Type: Normal, Accuracy: 95, PP: 35, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MovePound:        {Power: 40, Type: Normal, Accuracy: 100, PP: 35, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveQuickAttack:  {Power: 40, Type: Normal, Accuracy: 100, PP: 30, Effect: EffectHit, Target: TargetSelected, Priority: 1, Flags: FlagMakesContact | FlagProtectable},
	MoveSplash:       {Power: 0, Type: Normal, Accuracy: 0, PP: 40, Effect: EffectHit, Target: TargetSelf},
	MoveStruggle:     {Power: 50, Type: Normal, Accuracy: 0, PP: 1, Effect: EffectRecoil, Target: TargetSelected, Flags: FlagMakesContact},

	MoveSleepPowder:  {Power: 0, Type: Grass, Accuracy: 75, PP: 15, Effect: EffectSleep, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MovePoisonPowder: {Power: 0, Type: Poison, Accuracy: 75, PP: 35, Effect: EffectPoison, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveToxic:        {Power: 0, Type: Poison, Accuracy: 85, PP: 10, Effect: EffectToxic, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MovePoisonSting:  {Power: 15, Type: Poison, Accuracy: 100, PP: 35, Effect: EffectPoisonHit, Target: TargetSelected, SecondaryChance: 30, Flags: FlagMakesContact | FlagProtectable},
	MoveWillOWisp:    {Power: 0, Type: Fire, Accuracy: 75, PP: 15, Effect: EffectWillOWisp, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveEmber:        {Power: 40, Type: Fire, Accuracy: 100, PP: 25, Effect: EffectBurnHit, Target: TargetSelected, SecondaryChance: 10, Flags: FlagProtectable},
	MoveThunderWave:  {Power: 0, Type: Electric, Accuracy: 100, PP: 20, Effect: EffectParalyze, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveStunSpore:    {Power: 0, Type: Grass, Accuracy: 75, PP: 30, Effect: EffectParalyze, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveIceBeam:      {Power: 95, Type: Ice, Accuracy: 100, PP: 10, Effect: EffectFreezeHit, Target: TargetSelected, SecondaryChance: 10, Flags: FlagProtectable},

	MoveConfuseRay: {Power: 0, Type: Ghost, Accuracy: 100, PP: 10, Effect: EffectConfuse, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveSupersonic: {Power: 0, Type: Normal, Accuracy: 55, PP: 20, Effect: EffectConfuse, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat | FlagSound},
	MoveAttract:    {Power: 0, Type: Normal, Accuracy: 100, PP: 15, Effect: EffectAttract, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveTaunt:      {Power: 0, Type: Dark, Accuracy: 100, PP: 20, Effect: EffectTaunt, Target: TargetSelected, Flags: FlagProtectable},
	MoveTorment:    {Power: 0, Type: Dark, Accuracy: 100, PP: 15, Effect: EffectTorment, Target: TargetSelected, Flags: FlagProtectable},
	MoveDisable:    {Power: 0, Type: Normal, Accuracy: 55, PP: 20, Effect: EffectDisable, Target: TargetSelected, Flags: FlagProtectable},
	MoveEncore:     {Power: 0, Type: Normal, Accuracy: 100, PP: 5, Effect: EffectEncore, Target: TargetSelected, Flags: FlagProtectable},

	MoveSwordsDance: {Power: 0, Type: Normal, Accuracy: 0, PP: 30, Effect: EffectStatUp2, Target: TargetSelf},
	MoveGrowl:       {Power: 0, Type: Normal, Accuracy: 100, PP: 40, Effect: EffectStatDown, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat | FlagSound},
	MoveTailWhip:    {Power: 0, Type: Normal, Accuracy: 100, PP: 30, Effect: EffectStatDown, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveHarden:      {Power: 0, Type: Normal, Accuracy: 0, PP: 30, Effect: EffectStatUp, Target: TargetSelf},
	MoveStringShot:  {Power: 0, Type: Bug, Accuracy: 95, PP: 40, Effect: EffectStatDown, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveScaryFace:   {Power: 0, Type: Normal, Accuracy: 90, PP: 10, Effect: EffectStatDown, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveSandAttack:  {Power: 0, Type: Ground, Accuracy: 100, PP: 15, Effect: EffectStatDown, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},

	MoveDragonRage:  {Power: 0, Type: Dragon, Accuracy: 100, PP: 10, Effect: EffectDragonRage, Target: TargetSelected, Flags: FlagProtectable},
	MoveSonicBoom:   {Power: 0, Type: Normal, Accuracy: 90, PP: 20, Effect: EffectSonicBoom, Target: TargetSelected, Flags: FlagProtectable},
	MoveNightShade:  {Power: 0, Type: Ghost, Accuracy: 100, PP: 15, Effect: EffectLevelDamage, Target: TargetSelected, Flags: FlagProtectable},
	MoveSeismicToss: {Power: 0, Type: Fighting, Accuracy: 100, PP: 20, Effect: EffectLevelDamage, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveSuperFang:   {Power: 0, Type: Normal, Accuracy: 90, PP: 10, Effect: EffectSuperFang, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveEndeavor:    {Power: 0, Type: Normal, Accuracy: 100, PP: 5, Effect: EffectEndeavor, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveFissure:     {Power: 0, Type: Ground, Accuracy: 0, PP: 5, Effect: EffectOHKO, Target: TargetSelected, Flags: FlagProtectable},
	MoveHornDrill:   {Power: 0, Type: Normal, Accuracy: 0, PP: 5, Effect: EffectOHKO, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveGuillotine:  {Power: 0, Type: Normal, Accuracy: 0, PP: 5, Effect: EffectOHKO, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveSheerCold:   {Power: 0, Type: Ice, Accuracy: 0, PP: 5, Effect: EffectOHKO, Target: TargetSelected, Flags: FlagProtectable},
	MoveLockOn:      {Power: 0, Type: Normal, Accuracy: 0, PP: 5, Effect: EffectHit, Target: TargetSelected, Flags: FlagProtectable},

	MoveDoubleSlap:  {Power: 15, Type: Normal, Accuracy: 85, PP: 10, Effect: EffectMultiHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveCometPunch:  {Power: 18, Type: Normal, Accuracy: 85, PP: 15, Effect: EffectMultiHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveFuryAttack:  {Power: 15, Type: Normal, Accuracy: 85, PP: 20, Effect: EffectMultiHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MovePinMissile:  {Power: 14, Type: Bug, Accuracy: 85, PP: 20, Effect: EffectMultiHit, Target: TargetSelected, Flags: FlagProtectable},
	MoveTwineedle:   {Power: 25, Type: Bug, Accuracy: 100, PP: 20, Effect: EffectDoubleHit, Target: TargetSelected, SecondaryChance: 20, Flags: FlagMakesContact | FlagProtectable},
	MoveDoubleHit:   {Power: 35, Type: Normal, Accuracy: 90, PP: 10, Effect: EffectDoubleHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveTripleKick:  {Power: 10, Type: Fighting, Accuracy: 90, PP: 10, Effect: EffectTripleKick, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},

	MoveFly:       {Power: 70, Type: Flying, Accuracy: 95, PP: 15, Effect: EffectTwoTurnFly, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveDig:       {Power: 60, Type: Ground, Accuracy: 100, PP: 10, Effect: EffectTwoTurnDig, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveDive:      {Power: 60, Type: Water, Accuracy: 100, PP: 10, Effect: EffectTwoTurnDive, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveRazorWind: {Power: 80, Type: Normal, Accuracy: 100, PP: 10, Effect: EffectTwoTurnCharge, Target: TargetSelected, Flags: FlagProtectable},
	MoveSolarBeam: {Power: 120, Type: Grass, Accuracy: 100, PP: 10, Effect: EffectSolarBeam, Target: TargetSelected, Flags: FlagProtectable},
	MoveSkyAttack: {Power: 140, Type: Flying, Accuracy: 90, PP: 5, Effect: EffectTwoTurnCharge, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},

	MoveRecover:    {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectHealHalf, Target: TargetSelf},
	MoveSoftboiled: {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectHealHalf, Target: TargetSelf},
	MoveMilkDrink:  {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectHealHalf, Target: TargetSelf},
	MoveRest:       {Power: 0, Type: Psychic, Accuracy: 0, PP: 10, Effect: EffectRest, Target: TargetSelf},
	MoveMorningSun: {Power: 0, Type: Normal, Accuracy: 0, PP: 5, Effect: EffectWeatherHeal, Target: TargetSelf},
	MoveSynthesis:  {Power: 0, Type: Grass, Accuracy: 0, PP: 5, Effect: EffectWeatherHeal, Target: TargetSelf},
	MoveMoonlight:  {Power: 0, Type: Dark, Accuracy: 0, PP: 5, Effect: EffectWeatherHeal, Target: TargetSelf},
	MoveWish:       {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectWish, Target: TargetSelf},
	MoveIngrain:    {Power: 0, Type: Grass, Accuracy: 0, PP: 20, Effect: EffectIngrain, Target: TargetSelf},

	MoveReflect:     {Power: 0, Type: Psychic, Accuracy: 0, PP: 20, Effect: EffectReflect, Target: TargetSelf, Flags: FlagMagicCoat},
	MoveLightScreen: {Power: 0, Type: Psychic, Accuracy: 0, PP: 30, Effect: EffectLightScreen, Target: TargetSelf, Flags: FlagMagicCoat},
	MoveSafeguard:   {Power: 0, Type: Normal, Accuracy: 0, PP: 25, Effect: EffectSafeguard, Target: TargetSelf, Flags: FlagMagicCoat},
	MoveMist:        {Power: 0, Type: Ice, Accuracy: 0, PP: 30, Effect: EffectMist, Target: TargetSelf, Flags: FlagMagicCoat},
	MoveSpikes:      {Power: 0, Type: Ground, Accuracy: 0, PP: 20, Effect: EffectSpikes, Target: TargetField},
	MoveProtect:     {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectProtect, Target: TargetSelf, Priority: 4},
	MoveEndure:      {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectEndure, Target: TargetSelf, Priority: 4},

	MoveSubstitute: {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectSubstitute, Target: TargetSelf},

	MoveRoar:      {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectPhaze, Target: TargetSelected, Flags: FlagMagicCoat | FlagSound},
	MoveWhirlwind: {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectPhaze, Target: TargetSelected, Flags: FlagMagicCoat},

	MoveCounter:     {Power: 0, Type: Fighting, Accuracy: 100, PP: 20, Effect: EffectCounter, Target: TargetDepends, Priority: -5, Flags: FlagMakesContact},
	MoveMirrorCoat:  {Power: 0, Type: Psychic, Accuracy: 100, PP: 20, Effect: EffectMirrorCoat, Target: TargetDepends, Priority: -5},
	MoveBide:        {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectBide, Target: TargetSelf, Flags: FlagMakesContact},
	MoveDestinyBond: {Power: 0, Type: Ghost, Accuracy: 0, PP: 5, Effect: EffectDestinyBond, Target: TargetSelf},
	MoveGrudge:      {Power: 0, Type: Ghost, Accuracy: 0, PP: 5, Effect: EffectGrudge, Target: TargetSelf},
	MovePerishSong:  {Power: 0, Type: Normal, Accuracy: 0, PP: 5, Effect: EffectPerishSong, Target: TargetAllBattlers, Flags: FlagSound},

	MoveFutureSight: {Power: 80, Type: Psychic, Accuracy: 90, PP: 15, Effect: EffectFutureSight, Target: TargetSelected},

	MoveImprison:  {Power: 0, Type: Psychic, Accuracy: 0, PP: 10, Effect: EffectImprison, Target: TargetSelf},
	MoveBatonPass: {Power: 0, Type: Normal, Accuracy: 0, PP: 40, Effect: EffectBatonPass, Target: TargetSelf},

	MoveMetronome:   {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectMetronome, Target: TargetSelf},
	MoveAssist:      {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectAssist, Target: TargetSelf},
	MoveNaturePower: {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectNaturePower, Target: TargetSelf},
	MoveSleepTalk:   {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectSleepTalk, Target: TargetSelf},
	MoveMimic:       {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectMimic, Target: TargetSelected},
	MoveSketch:      {Power: 0, Type: Normal, Accuracy: 0, PP: 1, Effect: EffectSketch, Target: TargetSelected},
	MoveRolePlay:    {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectRolePlay, Target: TargetSelected},

	MoveSecretPower: {Power: 70, Type: Normal, Accuracy: 100, PP: 20, Effect: EffectSecretPower, Target: TargetSelected, SecondaryChance: 30, Flags: FlagProtectable},
	MoveCamouflage:  {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectCamouflage, Target: TargetSelf},

	MoveWeatherBall:  {Power: 50, Type: Normal, Accuracy: 100, PP: 10, Effect: EffectWeatherBall, Target: TargetSelected, Flags: FlagProtectable},
	MoveHiddenPower:  {Power: 60, Type: Normal, Accuracy: 100, PP: 15, Effect: EffectHiddenPower, Target: TargetSelected, Flags: FlagProtectable},
	MoveReturn:       {Power: 1, Type: Normal, Accuracy: 100, PP: 20, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveFrustration:  {Power: 1, Type: Normal, Accuracy: 100, PP: 20, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveLowKick:      {Power: 1, Type: Fighting, Accuracy: 100, PP: 20, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveFlail:        {Power: 1, Type: Normal, Accuracy: 100, PP: 15, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveReversal:     {Power: 1, Type: Fighting, Accuracy: 100, PP: 15, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveEruption:     {Power: 150, Type: Fire, Accuracy: 100, PP: 5, Effect: EffectHit, Target: TargetAllOpponents, Flags: FlagProtectable},
	MoveWaterSpout:   {Power: 150, Type: Water, Accuracy: 100, PP: 5, Effect: EffectHit, Target: TargetAllOpponents, Flags: FlagProtectable},
	MoveRevenge:      {Power: 60, Type: Fighting, Accuracy: 100, PP: 10, Effect: EffectHit, Target: TargetSelected, Priority: -4, Flags: FlagMakesContact | FlagProtectable},
	MoveFacade:       {Power: 70, Type: Normal, Accuracy: 100, PP: 20, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveSmellingSalt: {Power: 60, Type: Normal, Accuracy: 100, PP: 10, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveRollout:      {Power: 30, Type: Rock, Accuracy: 90, PP: 20, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveIceBall:      {Power: 30, Type: Ice, Accuracy: 90, PP: 20, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveFuryCutter:   {Power: 10, Type: Bug, Accuracy: 95, PP: 20, Effect: EffectHit, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveStomp:        {Power: 65, Type: Normal, Accuracy: 100, PP: 20, Effect: EffectFlinchHit, Target: TargetSelected, SecondaryChance: 30, Flags: FlagMakesContact | FlagProtectable},

	MoveStockpile: {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectStockpile, Target: TargetSelf},
	MoveSpitUp:    {Power: 1, Type: Normal, Accuracy: 100, PP: 10, Effect: EffectSpitUp, Target: TargetSelected, Flags: FlagProtectable},
	MoveSwallow:   {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectSwallow, Target: TargetSelf},

	MoveThunderbolt: {Power: 95, Type: Electric, Accuracy: 100, PP: 15, Effect: EffectParalyzeHit, Target: TargetSelected, SecondaryChance: 10, Flags: FlagProtectable},
	MoveSurf:        {Power: 95, Type: Water, Accuracy: 100, PP: 15, Effect: EffectHit, Target: TargetAllOpponents, Flags: FlagProtectable},
	MoveEarthquake:  {Power: 100, Type: Ground, Accuracy: 100, PP: 10, Effect: EffectHit, Target: TargetAllOpponents, Flags: FlagProtectable},
	MoveShadowBall:  {Power: 80, Type: Ghost, Accuracy: 100, PP: 15, Effect: EffectStatDownHit, Target: TargetSelected, SecondaryChance: 20, Flags: FlagProtectable},
	MoveThunder:     {Power: 120, Type: Electric, Accuracy: 70, PP: 10, Effect: EffectParalyzeHit, Target: TargetSelected, SecondaryChance: 30, Flags: FlagProtectable},

	MoveSunnyDay:  {Power: 0, Type: Fire, Accuracy: 0, PP: 5, Effect: EffectWeatherSun, Target: TargetField},
	MoveRainDance: {Power: 0, Type: Water, Accuracy: 0, PP: 5, Effect: EffectWeatherRain, Target: TargetField},
	MoveSandstorm: {Power: 0, Type: Rock, Accuracy: 0, PP: 10, Effect: EffectWeatherSand, Target: TargetField},
	MoveHail:      {Power: 0, Type: Ice, Accuracy: 0, PP: 10, Effect: EffectWeatherHail, Target: TargetField},

	MoveLeechSeed:   {Power: 0, Type: Grass, Accuracy: 90, PP: 10, Effect: EffectLeechSeed, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveUproar:      {Power: 50, Type: Normal, Accuracy: 100, PP: 10, Effect: EffectUproar, Target: TargetSelected, Flags: FlagProtectable | FlagSound},
	MoveNightmare:   {Power: 0, Type: Ghost, Accuracy: 100, PP: 15, Effect: EffectNightmare, Target: TargetSelected, Flags: FlagProtectable},
	MoveCurse:       {Power: 0, Type: Ghost, Accuracy: 0, PP: 10, Effect: EffectCurse, Target: TargetDepends},
	MoveWrap:        {Power: 15, Type: Normal, Accuracy: 85, PP: 20, Effect: EffectWrap, Target: TargetSelected, Flags: FlagMakesContact | FlagProtectable},
	MoveYawn:        {Power: 0, Type: Normal, Accuracy: 0, PP: 10, Effect: EffectYawn, Target: TargetSelected, Flags: FlagProtectable | FlagMagicCoat},
	MoveDefenseCurl: {Power: 0, Type: Normal, Accuracy: 0, PP: 40, Effect: EffectDefenseCurl, Target: TargetSelf},
	MoveMinimize:    {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectMinimize, Target: TargetSelf},
	MoveFocusEnergy: {Power: 0, Type: Normal, Accuracy: 0, PP: 30, Effect: EffectFocusEnergy, Target: TargetSelf},
	MoveFollowMe:    {Power: 0, Type: Normal, Accuracy: 0, PP: 20, Effect: EffectFollowMe, Target: TargetSelf, Priority: 3},
	MoveSelfDestruct: {Power: 200, Type: Normal, Accuracy: 100, PP: 5, Effect: EffectExplosion, Target: TargetAllOpponents},
	MoveExplosion:   {Power: 250, Type: Normal, Accuracy: 100, PP: 5, Effect: EffectExplosion, Target: TargetAllOpponents},
}

// MoveTable returns the static record for id. An id with no table entry
// is StaticDataMissing and resolves to a neutral Normal-type 0-power
// move with Accuracy 100; callers never see a panic.
func MoveTable(id MoveID) MoveData {
	if d, ok := moveTable[id]; ok {
		return d
	}
	return neutralMove
}

// MoveEffectOf is a convenience accessor equivalent to move_effect(id).
func MoveEffectOf(id MoveID) MoveEffect {
	return MoveTable(id).Effect
}

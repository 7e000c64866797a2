package parameter

// Target pool
const (
	// TargetCount is the fixed initial number of live targets
	TargetCount = 6

	// TargetRespawnDelay is the simulated delay before a destroyed target is replaced
	TargetRespawnDelay = 0.8

	// TargetSize is the reference edge length of target geometry
	TargetSize = 1.7

	// Spawn volume
	TargetSpawnSpanX   = 22.0
	TargetSpawnSpanZ   = 20.0
	TargetSpawnOffsetZ = -10.0
	TargetSpawnMinY    = 2.0
	TargetSpawnSpanY   = 6.0

	// Float motion, per simulated millisecond
	TargetFloatSpeedMin   = 0.001
	TargetFloatSpeedSpan  = 0.002
	TargetFloatSpeedScale = 1.1
	TargetFloatAmpMin     = 0.5
	TargetFloatAmpSpan    = 1.5
	TargetFloatPhaseSpan  = 1000.0

	// TargetSpinSpan is the span of per-tick rotation rates, centered on zero
	TargetSpinSpan = 0.066
)

// Scoring
const (
	ScoreBase = 2

	// Depth-distance bands, strictly greater than
	ScoreBand1Dist = 15.0
	ScoreBand2Dist = 25.0
	ScoreBand3Dist = 35.0
	ScoreBand4Dist = 45.0

	ScoreBand1Points = 4
	ScoreBand2Points = 8
	ScoreBand3Points = 16
	ScoreBand4Points = 32

	TierMultiplierSilver = 1.5
	TierMultiplierGold   = 2.0
)

// Boundary geometry
const (
	MonolithRows      = 25
	MonolithStartZ    = -10.0
	MonolithSpacingZ  = 5.0
	MonolithInnerX    = 30.0
	MonolithSpreadX   = 20.0
	MonolithHue       = 0.12
	MonolithSat       = 0.5
	MonolithLightMin  = 0.5
	MonolithLightSpan = 0.2
)

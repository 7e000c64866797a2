package parameter

// Fragments
const (
	FragmentCountImpact   = 25
	FragmentCountPiercing = 12

	FragmentLifeImpact   = 1.5
	FragmentLifePiercing = 3.0

	FragmentForceImpact   = 20.0
	FragmentForcePiercing = 10.0

	// FragmentSpeedFloor is added to the randomized force
	FragmentSpeedFloor = 5.0

	FragmentSizeMin  = 0.1
	FragmentSizeSpan = 0.4

	// FragmentSpinScale scales the per-tick angular rate
	FragmentSpinScale = 0.5

	FragmentGravity = 0.3

	// FragmentFadeBelow starts opacity tracking remaining life
	FragmentFadeBelow = 1.0

	// FragmentFloorY removes fragments that fall through the ground
	FragmentFloorY = -5.0
)

// Detonation particles
const (
	FlashLife         = 0.15
	FlashRadius       = 2.0
	FlashOpacity      = 0.8
	FlashScaleStep    = 0.3
	FlashOpacityDecay = 0.1

	SparkCount    = 20
	SparkLife     = 0.8
	SparkSpeed    = 15.0
	SparkGravity  = 0.3
	SparkSizeMin  = 0.1
	SparkSizeSpan = 0.2
)

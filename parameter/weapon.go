package parameter

// Charge / reload state machine
const (
	// PowerMax is the charge ceiling
	PowerMax = 50.0

	// PowerStep is added to power every tick while charging
	PowerStep = 0.8

	// OverchargeThreshold is the power above which the weapon glows
	OverchargeThreshold = 18.0

	// OverchargeIntensityMax is the emissive intensity reached at PowerMax
	OverchargeIntensityMax = 2.5

	// ReloadDuration is the cooldown after a shot
	ReloadDuration = 0.5

	// SwitchReloadDuration is the cooldown forced by a weapon switch while idle
	SwitchReloadDuration = 0.4

	// IdleScaleStep grows the re-materialized weapon from 0 to 1 (~20 ticks)
	IdleScaleStep = 0.05

	// IdleIntroSpin is the z spin per tick during the intro, scaled by remaining (1 - scale)
	IdleIntroSpin = 0.1

	// ChargeJitter is the anchor jitter span at full charge
	ChargeJitter = 0.2

	// IdleBobRate and IdleBobAmplitude drive the resting weapon's vertical drift (per simulated ms)
	IdleBobRate      = 0.003
	IdleBobAmplitude = 0.002
)

// Launch
const (
	// LaunchSpeedBase is the speed at zero charge
	LaunchSpeedBase = 20.0

	// LaunchSpeedRange is added at full charge, scaled by the squared power ratio
	LaunchSpeedRange = 100.0

	// SpeedMultiplierImpact and SpeedMultiplierPiercing scale launch speed per weapon kind
	SpeedMultiplierImpact   = 1.0
	SpeedMultiplierPiercing = 1.2

	// AimDepth is the distance along the pointer ray used as the aim point
	AimDepth = 50.0
)

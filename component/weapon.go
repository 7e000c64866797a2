package component

import (
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// WeaponKind discriminates the two projectile families
type WeaponKind uint8

const (
	// WeaponImpact detonates on any collision ("bomb")
	WeaponImpact WeaponKind = iota
	// WeaponPiercing embeds on collision and decays in place ("dart")
	WeaponPiercing
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponImpact:
		return "bomb"
	case WeaponPiercing:
		return "dart"
	default:
		return "unknown"
	}
}

// ParseWeaponKind accepts the player-facing names
func ParseWeaponKind(name string) (WeaponKind, bool) {
	switch name {
	case "bomb", "impact":
		return WeaponImpact, true
	case "dart", "piercing":
		return WeaponPiercing, true
	}
	return 0, false
}

// IdleWeapon is the single preview entity bound to the charge anchor
type IdleWeapon struct {
	Kind     WeaponKind
	Scale    float64 // intro animation, 0 -> 1
	Bob      float64 // accumulated idle drift
	Position vmath.Vec3F
	Rotation vmath.Vec3F
}

// ChargeState is the charge/reload state machine shared by input handling and the tick
// Power only accumulates while Holding && !Reloading
type ChargeState struct {
	Kind  WeaponKind
	Power float64

	Holding   bool
	Reloading bool

	ReloadTimer     float64
	ReloadThreshold float64

	// Pointer is the last known pointer position in normalized device coordinates
	Pointer vmath.Vec3F

	// Idle is the preview entity, zero while reloading
	Idle core.Entity
}

// Ratio returns power normalized to 0..1
func (c *ChargeState) Ratio() float64 {
	return c.Power / parameter.PowerMax
}

// CanCharge reports whether a trigger-down would start charging
func (c *ChargeState) CanCharge() bool {
	return !c.Reloading && c.Idle != 0
}

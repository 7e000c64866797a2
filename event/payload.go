package event

import "github.com/lixenwraith/stress-bomb/component"

// PointerPayload carries a pointer position in normalized device coordinates
type PointerPayload struct {
	X float64
	Y float64
}

// WeaponSwitchPayload names the requested weapon kind
type WeaponSwitchPayload struct {
	Kind component.WeaponKind
}

// ResizePayload carries the viewport width/height ratio
type ResizePayload struct {
	Aspect float64
}

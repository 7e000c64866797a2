package parameter

import "github.com/lixenwraith/stress-bomb/core"

// Target palette for normal tier
var TargetPalette = []core.RGB{
	core.Hex(0x116DD2), core.Hex(0x1642BF), core.Hex(0x000082),
	core.Hex(0xF0B400), core.Hex(0xFCCA0C), core.Hex(0xF9E07E),
}

// Fixed material colors
var (
	ColorGold     = core.Hex(0xFFD700)
	ColorSilver   = core.Hex(0xC0C0C0)
	ColorBomb     = core.Hex(0x111111)
	ColorDart     = core.Hex(0xC8A951)
	ColorFlash    = core.Hex(0xFFAA00)
	ColorSpark    = core.Hex(0xFF5500)
	ColorEmissive = core.Hex(0x990000)

	ColorSky    = core.Hex(0xD8B863)
	ColorGround = core.Hex(0xF9E076)
	ColorGrid   = core.Hex(0xAA8855)

	ColorUIBomb = core.Hex(0xE94560)
	ColorUIDart = core.Hex(0x16C79A)
	ColorUIIdle = core.Hex(0x444444)
)

// Fog range in depth units
const (
	FogNear = 20.0
	FogFar  = 90.0
)

package parameter

// Terminal rendering
const (
	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// HUDRows are reserved at the top and bottom of the screen
	HUDRows = 1

	// GlyphRadius is the projected radius in rows below which a node draws as a single glyph
	GlyphRadius = 0.75

	// Floor grid
	GridSpacing = 2.0
	GridWidth   = 0.06

	// EmissiveTint scales ColorEmissive per unit of emissive intensity
	EmissiveTint = 0.4
)

// Cursor glyphs by charge ratio
const (
	CursorFullRatio = 0.9
	CursorIdle      = '◯'
	CursorLow       = '○'
	CursorMid       = '◦'
	CursorFull      = '●'
)

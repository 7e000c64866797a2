package render

import "github.com/lixenwraith/stress-bomb/parameter"

// Viewport maps between terminal cells and normalized device coordinates
// The 3D view occupies the rows between the top and bottom HUD bars
type Viewport struct {
	Width  int
	Height int
}

// Top is the first view row
func (v Viewport) Top() int { return parameter.HUDRows }

// Rows is the view height in cells
func (v Viewport) Rows() int { return max(1, v.Height-2*parameter.HUDRows) }

// Aspect is the view's width over height in square units
func (v Viewport) Aspect() float64 {
	if v.Width <= 0 {
		return 1
	}
	return float64(v.Width) / (float64(v.Rows()) * parameter.CellAspect)
}

// ToNDC maps a cell center to NDC; y grows upward
func (v Viewport) ToNDC(col, row int) (x, y float64) {
	w := max(1, v.Width)
	x = (float64(col)+0.5)/float64(w)*2 - 1
	y = 1 - (float64(row-v.Top())+0.5)/float64(v.Rows())*2
	return x, y
}

// FromNDC maps NDC to fractional cell coordinates
func (v Viewport) FromNDC(x, y float64) (col, row float64) {
	col = (x + 1) / 2 * float64(v.Width)
	row = float64(v.Top()) + (1-y)/2*float64(v.Rows())
	return col, row
}

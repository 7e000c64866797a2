package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/render"
)

// Target receives translated input; implemented by the simulation
type Target interface {
	PointerDown(x, y float64)
	PointerUp()
	PointerMove(x, y float64)
	SwitchWeapon(kind component.WeaponKind)
	Resize(aspect float64)
}

// Overlay is the renderer side of input: screen layout, clickable buttons and the pointer glyph
type Overlay interface {
	Viewport() render.Viewport
	ButtonAt(col, row int) (component.WeaponKind, bool)
	SetCursor(col, row int)
}

// weaponKeys maps key runes to weapon selections
var weaponKeys = map[rune]component.WeaponKind{
	'b': component.WeaponImpact,
	'1': component.WeaponImpact,
	'd': component.WeaponPiercing,
	'2': component.WeaponPiercing,
}

// Input translates tcell events for one Target
// Not safe for concurrent use; a single pump goroutine owns it
type Input struct {
	target  Target
	overlay Overlay

	// Left button state from the previous mouse event
	pressed bool
	// Press landed on a HUD button; its release is swallowed
	onButton bool
}

func NewInput(target Target, overlay Overlay) *Input {
	return &Input{target: target, overlay: overlay}
}

// Handle applies one event and reports whether the user asked to quit
func (in *Input) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.handleKey(ev)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		vp := render.Viewport{Width: w, Height: h}
		in.target.Resize(vp.Aspect())
	}
	return false
}

func (in *Input) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' {
			return true
		}
		if kind, ok := weaponKeys[r]; ok {
			in.target.SwitchWeapon(kind)
		}
	}
	return false
}

func (in *Input) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	vp := in.overlay.Viewport()
	x, y := vp.ToNDC(col, row)
	down := ev.Buttons()&tcell.Button1 != 0

	in.overlay.SetCursor(col, row)

	switch {
	case down && !in.pressed:
		in.pressed = true
		if kind, ok := in.overlay.ButtonAt(col, row); ok {
			in.onButton = true
			in.target.SwitchWeapon(kind)
			return
		}
		in.target.PointerMove(x, y)
		in.target.PointerDown(x, y)

	case !down && in.pressed:
		in.pressed = false
		if in.onButton {
			in.onButton = false
			return
		}
		in.target.PointerMove(x, y)
		in.target.PointerUp()

	default:
		in.target.PointerMove(x, y)
	}
}

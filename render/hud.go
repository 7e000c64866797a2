package render

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/status"
)

// Helper text shown on the bottom bar
const (
	HelpIdle      = "click and hold to charge · release to throw"
	HelpReloading = "reloading..."
)

var (
	hudBar    = core.Hex(0x1A1A2E)
	hudText   = core.Hex(0xEEEEEE)
	hudDim    = core.Hex(0x888888)
	barTrough = core.Hex(0x333333)
)

var debugKeys = []string{
	status.KeyTicks, status.KeyTargets, status.KeyPending, status.KeyProjectiles,
	status.KeyFragments, status.KeyParticles, status.KeyShake, status.KeyDropped,
}

// HelpText returns the bottom bar prompt for a HUD state; the bar is blank while charging
func HelpText(hud engine.HUD) string {
	switch {
	case hud.Holding:
		return ""
	case hud.Reloading:
		return HelpReloading
	default:
		return HelpIdle
	}
}

// CursorGlyph shrinks with charge and fills above CursorFullRatio
func CursorGlyph(ratio float64) rune {
	switch {
	case ratio > parameter.CursorFullRatio:
		return parameter.CursorFull
	case ratio > 0.5:
		return parameter.CursorMid
	case ratio > 0:
		return parameter.CursorLow
	default:
		return parameter.CursorIdle
	}
}

func weaponColor(kind component.WeaponKind) core.RGB {
	if kind == component.WeaponPiercing {
		return parameter.ColorUIDart
	}
	return parameter.ColorUIBomb
}

// writeStr writes s starting at x and returns the column after it
func (r *TerminalRenderer) writeStr(x, y int, s string, fg, bg core.RGB) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if c := r.buf.at(x, y); c != nil {
			*c = cell{Rune: ch, Fg: fg, Bg: bg}
		}
		for i := 1; i < w; i++ {
			if c := r.buf.at(x+i, y); c != nil {
				*c = cell{Fg: fg, Bg: bg}
			}
		}
		x += w
	}
	return x
}

func (r *TerminalRenderer) fillRow(y int, bg core.RGB) {
	for x := 0; x < r.buf.width; x++ {
		if c := r.buf.at(x, y); c != nil {
			*c = cell{Rune: ' ', Fg: hudText, Bg: bg}
		}
	}
}

func (r *TerminalRenderer) drawHUD(vp Viewport, hud engine.HUD) {
	top := 0
	bottom := vp.Height - 1

	r.fillRow(top, hudBar)
	if bottom != top {
		r.fillRow(bottom, hudBar)
	}

	// Score, left
	x := r.writeStr(1, top, fmt.Sprintf("SCORE: %d", hud.Score), hudText, hudBar)

	// Weapon buttons, right aligned
	labels := []struct {
		kind  component.WeaponKind
		label string
	}{
		{component.WeaponImpact, " BOMB "},
		{component.WeaponPiercing, " DART "},
	}
	span := 0
	for _, l := range labels {
		span += runewidth.StringWidth(l.label) + 1
	}
	col := vp.Width - span
	buttons := make([]button, 0, len(labels))
	for _, l := range labels {
		bg := parameter.ColorUIIdle
		if l.kind == hud.Weapon {
			bg = weaponColor(l.kind)
		}
		fg := hudText
		if hud.Reloading {
			bg = bg.Scale(0.5)
			fg = hudDim
		}
		w := runewidth.StringWidth(l.label)
		r.writeStr(col, top, l.label, fg, bg)
		buttons = append(buttons, button{kind: l.kind, col: col, row: top, span: w})
		col += w + 1
	}
	r.mu.Lock()
	r.buttons = buttons
	cursorCol, cursorRow := r.cursorCol, r.cursorRow
	r.mu.Unlock()

	if r.debug != nil {
		line := r.debug.Line(debugKeys...)
		room := vp.Width - span - x - 2
		if room > 0 {
			r.writeStr(x+2, top, runewidth.Truncate(line, room, "…"), hudDim, hudBar)
		}
	}

	// Helper text, centered
	help := HelpText(hud)
	hw := runewidth.StringWidth(help)
	r.writeStr(max(0, (vp.Width-hw)/2), bottom, help, hudText, hudBar)

	if hud.Holding {
		r.drawPowerBar(vp, hud)
	}

	if cursorCol >= 0 && cursorRow >= vp.Top() && cursorRow < vp.Top()+vp.Rows() {
		if c := r.buf.at(cursorCol, cursorRow); c != nil {
			c.Rune = CursorGlyph(hud.ChargeRatio)
			c.Fg = hudText
			c.Bold = true
		}
	}
}

// drawPowerBar draws the charge bar on the last view row
func (r *TerminalRenderer) drawPowerBar(vp Viewport, hud engine.HUD) {
	width := max(4, vp.Width/3)
	start := (vp.Width - width) / 2
	row := vp.Top() + vp.Rows() - 1
	filled := int(math.Round(math.Max(0, math.Min(1, hud.ChargeRatio)) * float64(width)))

	fill := weaponColor(hud.Weapon)
	if hud.Overcharge > 0 {
		fill = fill.Blend(parameter.ColorFlash, math.Min(1, hud.Overcharge/parameter.OverchargeIntensityMax))
	}
	for i := 0; i < width; i++ {
		c := r.buf.at(start+i, row)
		if c == nil {
			continue
		}
		c.Rune = ' '
		if i < filled {
			c.Bg = fill
		} else {
			c.Bg = barTrough
		}
	}
}

package system

import (
	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// newTestWorld builds a world with every resource the systems read
func newTestWorld(r engine.Renderer, a engine.AudioPlayer) *engine.World {
	w := engine.NewWorld(r, a)
	w.Resources.Camera = engine.NewCameraResource(1)
	w.Resources.Charge = &component.ChargeState{}
	w.Resources.Score = &engine.ScoreResource{}
	w.Resources.Rand = vmath.NewFastRand(42)
	w.Resources.Status = status.NewRegistry()
	return w
}

// tick runs one full frame: clock, scheduled events, dispatch, systems
func tick(w *engine.World) {
	w.Step(0.016)
	w.Dispatch()
	w.Update()
}

package gui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// degrees of movement per frame while a crank key is held, and per notch of
// the mouse wheel
const (
	crankKeyStep   = 3.0
	crankWheelStep = 15.0
)

// crank emulates the crank sensor. movement accumulates in the change field
// until the next call to ReadCrank()
type crank struct {
	angle  float32
	change float32
	docked bool
}

func (g *gui) updateCrank() {
	if g.inputHandler.ActionIsJustPressed(ActionCrankDock) {
		g.crank.docked = !g.crank.docked
		// docking the crank discards any movement accumulated this frame
		g.crank.change = 0
	}
	if g.crank.docked {
		return
	}

	var change float32
	if g.inputHandler.ActionIsPressed(ActionCrankCW) {
		change += crankKeyStep
	}
	if g.inputHandler.ActionIsPressed(ActionCrankCCW) {
		change -= crankKeyStep
	}
	_, wheel := ebiten.Wheel()
	change += float32(wheel) * crankWheelStep

	g.crank.change += change
	g.crank.angle = wrapAngle(g.crank.angle + change)
}

// ReadCrank implements the hardware.CrankReader interface.
func (g *gui) ReadCrank() (float32, float32, bool) {
	change := g.crank.change
	g.crank.change = 0
	return g.crank.angle, change, g.crank.docked
}

// wrapAngle brings an angle in degrees into the range [0,360)
func wrapAngle(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	if a < 0 {
		a += 360
	}
	return a
}

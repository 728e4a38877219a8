package gui

import (
	einput "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/crankpad/input"
)

const (
	ActionLeft einput.Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionB
	ActionA
	ActionCrankCW
	ActionCrankCCW
	ActionCrankDock
)

func keymap() einput.Keymap {
	return einput.Keymap{
		ActionLeft:  {einput.KeyGamepadLeft, einput.KeyLeft},
		ActionRight: {einput.KeyGamepadRight, einput.KeyRight},
		ActionUp:    {einput.KeyGamepadUp, einput.KeyUp},
		ActionDown:  {einput.KeyGamepadDown, einput.KeyDown},
		ActionB:     {einput.KeyGamepadB, einput.KeyZ, einput.KeyB},
		ActionA:     {einput.KeyGamepadA, einput.KeySpace, einput.KeyX},

		// the crank has no natural desktop equivalent. the mouse wheel is the
		// closest but keys work too
		ActionCrankCW:   {einput.KeyE},
		ActionCrankCCW:  {einput.KeyQ},
		ActionCrankDock: {einput.KeyD},
	}
}

// ReadButtons implements the hardware.ButtonReader interface.
func (g *gui) ReadButtons() uint32 {
	var raw uint32
	if g.inputHandler.ActionIsPressed(ActionLeft) {
		raw |= 1 << input.Left
	}
	if g.inputHandler.ActionIsPressed(ActionRight) {
		raw |= 1 << input.Right
	}
	if g.inputHandler.ActionIsPressed(ActionUp) {
		raw |= 1 << input.Up
	}
	if g.inputHandler.ActionIsPressed(ActionDown) {
		raw |= 1 << input.Down
	}
	if g.inputHandler.ActionIsPressed(ActionB) {
		raw |= 1 << input.B
	}
	if g.inputHandler.ActionIsPressed(ActionA) {
		raw |= 1 << input.A
	}
	return raw
}

// Package hardware is the boundary between the input package and whatever
// concrete binding provides the raw register values. The binding is described
// by two small interfaces, ButtonReader and CrankReader, and the Console type
// polls them once per frame on behalf of the host application.
//
// The previous-frame snapshot needed for edge detection lives here. The input
// package itself is stateless.
package hardware

import (
	"github.com/jetsetilly/crankpad/input"
)

// ButtonReader is implemented by the binding layer to expose the raw button
// register.
type ButtonReader interface {
	// ReadButtons returns the raw button register for the current frame. One
	// bit per button in the arrangement defined by the input package. Bits
	// without a corresponding button may be set and will be ignored.
	ReadButtons() uint32
}

// CrankReader is implemented by the binding layer to expose the crank sensor.
type CrankReader interface {
	// ReadCrank returns the absolute angle of the crank in degrees in the
	// range [0,360), the movement in degrees since the previous call, and
	// whether the crank is docked.
	ReadCrank() (angle float32, change float32, docked bool)
}

// Console converts the raw register values of a binding into the types of
// the input package, taking one snapshot per frame.
type Console struct {
	buttons ButtonReader
	crank   CrankReader

	prev       input.ButtonSet
	curr       input.ButtonSet
	crankState input.Crank
}

// Create a Console reading from the supplied binding. The crank argument may
// be nil for bindings without a crank sensor, in which case the crank is
// reported as permanently docked.
func Create(buttons ButtonReader, crank CrankReader) *Console {
	return &Console{
		buttons:    buttons,
		crank:      crank,
		crankState: input.NewCrank(0, 0, true),
	}
}

// Update takes a fresh snapshot from the binding. It must be called exactly
// once per frame by the host application.
//
// On the first call there is no previous snapshot and the empty set is used
// in its place, meaning any button already held at startup is reported as
// pushed on the first frame.
func (con *Console) Update() {
	con.prev = con.curr
	con.curr = input.ButtonsFromBits(con.buttons.ReadButtons())
	if con.crank != nil {
		con.crankState = input.NewCrank(con.crank.ReadCrank())
	}
}

// Buttons returns the button state for the frame of the most recent call to
// Update().
func (con *Console) Buttons() input.State {
	return input.Derive(con.prev, con.curr)
}

// Crank returns the crank sample taken by the most recent call to Update().
func (con *Console) Crank() input.Crank {
	return con.crankState
}

// Package input converts the raw input registers of the console into typed
// values: the buttons currently held down, the buttons that were pushed or
// released this frame, the d-pad direction as a 2d vector, and the state of
// the crank.
//
// The package is pure. It does not talk to the hardware itself and it does
// not remember anything between frames. Reading the registers and calling the
// package once per frame is the job of the hardware package.
package input

// Button is one of the six physical buttons on the console. The set of
// buttons is closed. A new button on a future hardware revision is a breaking
// change to this package and not an extension point.
type Button uint8

// The value of each button is its bit position in the raw button register, as
// reported by the binding layer.
const (
	Left Button = iota
	Right
	Up
	Down
	B
	A

	numButtons
)

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case B:
		return "b"
	case A:
		return "a"
	}
	return "unknown"
}

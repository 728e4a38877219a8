package input_test

import (
	"testing"

	"github.com/jetsetilly/crankpad/input"
	"github.com/jetsetilly/crankpad/test"
)

func TestDPadVector(t *testing.T) {
	tests := []struct {
		set  input.ButtonSet
		x, y int
	}{
		{input.Buttons(), 0, 0},
		{input.Buttons(input.Up), 0, -1},
		{input.Buttons(input.Down), 0, 1},
		{input.Buttons(input.Left), -1, 0},
		{input.Buttons(input.Right), 1, 0},

		// opposing buttons cancel on their axis
		{input.Buttons(input.Right, input.Down, input.Up), 1, 0},
		{input.Buttons(input.Left, input.Right, input.Up), 0, -1},
		{input.Buttons(input.Left, input.Right, input.Up, input.Down), 0, 0},

		// diagonals are not normalised
		{input.Buttons(input.Right, input.Down), 1, 1},
		{input.Buttons(input.Left, input.Up), -1, -1},

		// non-directional buttons are ignored
		{input.Buttons(input.A, input.B), 0, 0},
		{input.Buttons(input.Up, input.A), 0, -1},
	}

	for _, tc := range tests {
		x, y := tc.set.Vector()
		test.ExpectEquality(t, x, tc.x)
		test.ExpectEquality(t, y, tc.y)
	}
}

func TestDPadSet(t *testing.T) {
	test.ExpectEquality(t, input.DPad,
		input.Buttons(input.Left, input.Right, input.Up, input.Down))
	test.ExpectEquality(t, input.DPad.Contains(input.A), false)
	test.ExpectEquality(t, input.DPad.Contains(input.B), false)
}

package input_test

import (
	"testing"

	"github.com/jetsetilly/crankpad/input"
	"github.com/jetsetilly/crankpad/test"
)

func TestEdgeDetection(t *testing.T) {
	prev := input.Buttons(input.A)
	curr := input.Buttons(input.A, input.B)

	st := input.Derive(prev, curr)
	test.ExpectEquality(t, st.Current, input.Buttons(input.A, input.B))
	test.ExpectEquality(t, st.Pushed, input.Buttons(input.B))
	test.ExpectSuccess(t, st.Released.IsEmpty())

	test.ExpectSuccess(t, st.IsPressed(input.A))
	test.ExpectSuccess(t, st.IsPressed(input.B))
	test.ExpectEquality(t, st.IsJustPressed(input.A), false)
	test.ExpectSuccess(t, st.IsJustPressed(input.B))
	test.ExpectEquality(t, st.IsJustReleased(input.A), false)
}

func TestEdgeDetectionRelease(t *testing.T) {
	prev := input.Buttons(input.Up, input.Left)
	curr := input.Buttons(input.Down)

	st := input.Derive(prev, curr)
	test.ExpectEquality(t, st.Pushed, input.Buttons(input.Down))
	test.ExpectEquality(t, st.Released, input.Buttons(input.Up, input.Left))

	x, y := st.DPad()
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 1)
}

func TestEdgeDetectionLaws(t *testing.T) {
	// a sample of snapshot pairs, including the empty and full sets
	snapshots := []input.ButtonSet{
		input.Buttons(),
		input.Buttons(input.A),
		input.Buttons(input.A, input.B),
		input.Buttons(input.Up, input.Left),
		input.Buttons(input.Down),
		input.DPad,
		input.ButtonsFromBits(0x3f),
	}

	for _, prev := range snapshots {
		for _, curr := range snapshots {
			pushed := input.JustPressed(prev, curr)
			released := input.JustReleased(prev, curr)

			// pushed and released are always disjoint
			test.ExpectEquality(t, pushed.ContainsAny(released), false)

			// pushed and released are subsets of the union of the snapshots
			union := prev.Union(curr)
			test.ExpectEquality(t, pushed, pushed&union)
			test.ExpectEquality(t, released, released&union)

			// swapping the snapshots swaps the derived sets
			test.ExpectEquality(t, pushed, input.JustReleased(curr, prev))
			test.ExpectEquality(t, released, input.JustPressed(curr, prev))
		}
	}
}

func TestFirstFrame(t *testing.T) {
	// on the first frame there is no previous snapshot. the empty set stands
	// in, so every held button reports as pushed
	curr := input.Buttons(input.A, input.Up)
	st := input.Derive(input.Buttons(), curr)
	test.ExpectEquality(t, st.Pushed, curr)
	test.ExpectSuccess(t, st.Released.IsEmpty())

	// and the mirror case: releasing everything at once
	st = input.Derive(curr, input.Buttons())
	test.ExpectEquality(t, st.Released, curr)
	test.ExpectSuccess(t, st.Pushed.IsEmpty())
}

func TestAnyPredicates(t *testing.T) {
	prev := input.Buttons(input.B)
	curr := input.Buttons(input.Up)
	st := input.Derive(prev, curr)

	test.ExpectSuccess(t, st.IsAnyPressed(input.DPad))
	test.ExpectEquality(t, st.IsAnyPressed(input.Buttons(input.A, input.B)), false)
	test.ExpectSuccess(t, st.IsAnyJustPressed(input.DPad))
	test.ExpectSuccess(t, st.IsAnyJustReleased(input.Buttons(input.A, input.B)))
	test.ExpectEquality(t, st.IsAnyJustReleased(input.DPad), false)
}

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/crankpad/hardware"
	"github.com/jetsetilly/crankpad/input"
	"github.com/jetsetilly/crankpad/test"
)

// stubBinding serves register values from plain fields, standing in for a
// real binding layer.
type stubBinding struct {
	buttons uint32
	angle   float32
	change  float32
	docked  bool
}

func (s *stubBinding) ReadButtons() uint32 {
	return s.buttons
}

func (s *stubBinding) ReadCrank() (float32, float32, bool) {
	return s.angle, s.change, s.docked
}

func TestFirstFrameSnapshot(t *testing.T) {
	bind := &stubBinding{}
	bind.buttons = input.Buttons(input.A, input.Up).Bits()

	con := hardware.Create(bind, bind)
	con.Update()

	// buttons held at startup report as pushed on the first frame
	st := con.Buttons()
	test.ExpectEquality(t, st.Current, input.Buttons(input.A, input.Up))
	test.ExpectEquality(t, st.Pushed, input.Buttons(input.A, input.Up))
	test.ExpectSuccess(t, st.Released.IsEmpty())
}

func TestFrameTransitions(t *testing.T) {
	bind := &stubBinding{}
	con := hardware.Create(bind, bind)

	bind.buttons = input.Buttons(input.A).Bits()
	con.Update()

	bind.buttons = input.Buttons(input.A, input.B).Bits()
	con.Update()

	st := con.Buttons()
	test.ExpectEquality(t, st.Current, input.Buttons(input.A, input.B))
	test.ExpectEquality(t, st.Pushed, input.Buttons(input.B))
	test.ExpectSuccess(t, st.Released.IsEmpty())

	bind.buttons = 0
	con.Update()

	st = con.Buttons()
	test.ExpectSuccess(t, st.Current.IsEmpty())
	test.ExpectSuccess(t, st.Pushed.IsEmpty())
	test.ExpectEquality(t, st.Released, input.Buttons(input.A, input.B))
}

func TestStateIsPerFrame(t *testing.T) {
	bind := &stubBinding{}
	con := hardware.Create(bind, bind)

	bind.buttons = input.Buttons(input.B).Bits()
	con.Update()
	test.ExpectSuccess(t, con.Buttons().IsJustPressed(input.B))

	// the button is still held on the next frame so it is no longer "just"
	// pressed
	con.Update()
	test.ExpectSuccess(t, con.Buttons().IsPressed(input.B))
	test.ExpectEquality(t, con.Buttons().IsJustPressed(input.B), false)
}

func TestReservedRegisterBits(t *testing.T) {
	bind := &stubBinding{buttons: 0xffffffc0}
	con := hardware.Create(bind, bind)
	con.Update()
	test.ExpectSuccess(t, con.Buttons().Current.IsEmpty())
}

func TestCrankPassthrough(t *testing.T) {
	bind := &stubBinding{angle: 90, change: -45, docked: false}
	con := hardware.Create(bind, bind)
	con.Update()

	c := con.Crank()
	test.ExpectEquality(t, c.AngleDegrees(), float32(90))
	test.ExpectEquality(t, c.ChangeDegrees(), float32(-45))
	test.ExpectEquality(t, c.IsDocked(), false)
}

func TestNoCrankSensor(t *testing.T) {
	bind := &stubBinding{}
	con := hardware.Create(bind, nil)
	con.Update()

	// a binding without a crank sensor reports a permanently docked crank
	c := con.Crank()
	test.ExpectSuccess(t, c.IsDocked())
	test.ExpectEquality(t, c.AngleDegrees(), float32(0))
	test.ExpectEquality(t, c.ChangeDegrees(), float32(0))
}

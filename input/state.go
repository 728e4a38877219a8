package input

// JustPressed returns the buttons that are in the current snapshot but were
// not in the previous snapshot.
func JustPressed(prev, curr ButtonSet) ButtonSet {
	return curr &^ prev
}

// JustReleased returns the buttons that were in the previous snapshot but are
// not in the current snapshot.
//
// For any pair of snapshots the just-pressed and just-released sets are
// disjoint and JustPressed(a, b) equals JustReleased(b, a).
func JustReleased(prev, curr ButtonSet) ButtonSet {
	return prev &^ curr
}

// State is the condition of the buttons for a single frame, derived from the
// snapshots of two consecutive frames.
type State struct {
	// Buttons currently held down
	Current ButtonSet

	// Buttons held down this frame that were not held down the previous
	// frame
	Pushed ButtonSet

	// Buttons held down the previous frame that are no longer held down
	Released ButtonSet
}

// Derive builds a State from the previous and current frame snapshots.
//
// On the very first frame of the host application there is no previous
// snapshot. Pass the empty set, meaning any button already held at startup is
// reported as pushed on that frame. This is the intended boundary behaviour.
func Derive(prev, curr ButtonSet) State {
	return State{
		Current:  curr,
		Pushed:   JustPressed(prev, curr),
		Released: JustReleased(prev, curr),
	}
}

// IsPressed returns true if the button is currently held down.
func (st State) IsPressed(b Button) bool {
	return st.Current.Contains(b)
}

// IsJustPressed returns true if the button was pushed this frame.
func (st State) IsJustPressed(b Button) bool {
	return st.Pushed.Contains(b)
}

// IsJustReleased returns true if the button was released this frame.
func (st State) IsJustReleased(b Button) bool {
	return st.Released.Contains(b)
}

// IsAnyPressed returns true if any button of the set is currently held down.
func (st State) IsAnyPressed(s ButtonSet) bool {
	return st.Current.ContainsAny(s)
}

// IsAnyJustPressed returns true if any button of the set was pushed this
// frame.
func (st State) IsAnyJustPressed(s ButtonSet) bool {
	return st.Pushed.ContainsAny(s)
}

// IsAnyJustReleased returns true if any button of the set was released this
// frame.
func (st State) IsAnyJustReleased(s ButtonSet) bool {
	return st.Released.ContainsAny(s)
}

// DPad returns the currently held d-pad buttons as a 2d vector. See
// ButtonSet.Vector() for the coordinate convention.
func (st State) DPad() (x, y int) {
	return st.Current.Vector()
}

// DPadJustPressed returns the d-pad buttons pushed this frame as a 2d vector.
func (st State) DPadJustPressed() (x, y int) {
	return st.Pushed.Vector()
}

// DPadJustReleased returns the d-pad buttons released this frame as a 2d
// vector.
func (st State) DPadJustReleased() (x, y int) {
	return st.Released.Vector()
}

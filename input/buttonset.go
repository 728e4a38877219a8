package input

import "strings"

// ButtonSet is a set of buttons backed by a single register-width integer,
// one bit per button. The zero value is the empty set.
//
// All operations are plain bit operations and never allocate, making the type
// suitable for per-frame use.
type ButtonSet uint8

// the bits that correspond to known buttons. a valid ButtonSet never has a
// bit set outside of this mask
const validButtons = ButtonSet(1<<numButtons - 1)

// DPad is the set of the four directional buttons.
const DPad = ButtonSet(1<<Left | 1<<Right | 1<<Up | 1<<Down)

// Buttons creates a ButtonSet containing the listed buttons. The order of the
// arguments does not matter and duplicates are harmless.
func Buttons(buttons ...Button) ButtonSet {
	var s ButtonSet
	for _, b := range buttons {
		s = s.Insert(b)
	}
	return s
}

// ButtonsFromBits creates a ButtonSet from the raw button register of the
// binding layer. Bits that do not correspond to a known button are silently
// discarded. The hardware reserves the upper bits of the register and may set
// them in future revisions.
func ButtonsFromBits(raw uint32) ButtonSet {
	return ButtonSet(raw) & validButtons
}

// Bits returns the set in the raw register format expected by the binding
// layer. Only bits corresponding to contained buttons are ever set.
func (s ButtonSet) Bits() uint32 {
	return uint32(s & validButtons)
}

// IsEmpty returns true if no button is in the set.
func (s ButtonSet) IsEmpty() bool {
	return s == 0
}

// Contains returns true if the button is in the set.
func (s ButtonSet) Contains(b Button) bool {
	return s&buttonBit(b) != 0
}

// ContainsAny returns true if any button of the other set is also in this
// set.
func (s ButtonSet) ContainsAny(other ButtonSet) bool {
	return s&other != 0
}

// Insert returns the set with the button added. Inserting a button that is
// already in the set is a no-op.
func (s ButtonSet) Insert(b Button) ButtonSet {
	return s | buttonBit(b)
}

// Union returns the set of buttons in either set.
func (s ButtonSet) Union(other ButtonSet) ButtonSet {
	return s | other
}

func (s ButtonSet) String() string {
	var parts []string
	for b := Left; b < numButtons; b++ {
		if s.Contains(b) {
			parts = append(parts, b.String())
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func buttonBit(b Button) ButtonSet {
	return (1 << b) & validButtons
}

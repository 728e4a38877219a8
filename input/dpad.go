package input

// Vector returns the d-pad buttons in the set as a 2d direction. Buttons
// other than the d-pad are ignored.
//
// Coordinates follow the screen convention of the console's display: x
// increases to the right and y increases downwards. Up is (0,-1), Down is
// (0,1), Left is (-1,0) and Right is (1,0).
//
// Opposing buttons cancel on their axis. Diagonals are the sum of the two
// contributing directions and are not normalised to unit length. Whether a
// diagonal should be normalised is for the host application to decide.
func (s ButtonSet) Vector() (x, y int) {
	if s.Contains(Up) {
		y--
	}
	if s.Contains(Down) {
		y++
	}
	if s.Contains(Left) {
		x--
	}
	if s.Contains(Right) {
		x++
	}
	return x, y
}

package input

import "math"

const degreesToRadians = math.Pi / 180

// Crank is a single sample of the rotary crank on the side of the console.
//
// Zero degrees is the crank pointing up. The angle increases as the crank
// turns clockwise, as viewed from the right side of the console.
type Crank struct {
	angle  float32
	change float32
	docked bool
}

// NewCrank assembles a crank sample from the raw readings of the binding
// layer. The angle is in degrees in the range [0,360). The change is the
// movement in degrees since the previous sample. It is signed, negative for
// anti-clockwise movement, and can exceed a full turn if samples are far
// apart.
func NewCrank(angle float32, change float32, docked bool) Crank {
	return Crank{
		angle:  angle,
		change: change,
		docked: docked,
	}
}

// AngleDegrees returns the absolute angle of the crank in degrees, in the
// range [0,360).
func (c Crank) AngleDegrees() float32 {
	return c.angle
}

// AngleRadians returns the absolute angle of the crank in radians, in the
// range [0,2π).
func (c Crank) AngleRadians() float32 {
	return c.angle * degreesToRadians
}

// ChangeDegrees returns the movement of the crank since the previous sample,
// in degrees. Negative values are anti-clockwise.
func (c Crank) ChangeDegrees() float32 {
	return c.change
}

// ChangeRadians returns the movement of the crank since the previous sample,
// in radians. Negative values are anti-clockwise.
func (c Crank) ChangeRadians() float32 {
	return c.change * degreesToRadians
}

// IsDocked returns true if the crank is folded into the body of the console.
// A docked crank does not move and its angle is not meaningful.
func (c Crank) IsDocked() bool {
	return c.docked
}

// Package ui defines the channels connecting the gui to the monitor. The gui
// sends a Report every frame and the monitor consumes them at its own pace.
package ui

import (
	"github.com/jetsetilly/crankpad/input"
)

// Report is the per-frame summary of the console's input.
type Report struct {
	Buttons input.State
	Crank   input.Crank
}

// UI is the communication channel between the gui and the monitor.
type UI struct {
	Reports chan Report
}

// NewUI is the preferred method of initialisation for the UI type.
func NewUI() *UI {
	return &UI{
		// a small buffer. the gui never blocks on the channel so a slow
		// monitor only means dropped reports
		Reports: make(chan Report, 1),
	}
}

// Package gui is the ebiten binding for the console's input. It implements
// the hardware.ButtonReader and hardware.CrankReader interfaces, mapping the
// keyboard and any connected gamepad onto the button register and emulating
// the crank with the mouse wheel.
//
// The gui also draws the live state of the buttons and the crank, and sends a
// ui.Report to the monitor every frame.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	einput "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/crankpad/hardware"
	"github.com/jetsetilly/crankpad/logger"
	"github.com/jetsetilly/crankpad/ui"
	"github.com/jetsetilly/crankpad/version"
)

type gui struct {
	started bool

	endGui chan bool
	u      *ui.UI

	console *hardware.Console

	inputHandler *einput.Handler
	inputSystem  einput.System

	crank crank
}

func (g *gui) initialise() {
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap())
	g.started = true
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	g.inputSystem.Update()
	g.updateCrank()

	// one snapshot per frame
	g.console.Update()

	// the monitor may be busy. dropping a report is preferable to stalling
	// the frame
	select {
	case g.u.Reports <- ui.Report{Buttons: g.console.Buttons(), Crank: g.console.Crank()}:
	default:
	}

	select {
	case <-g.endGui:
		return ebiten.Termination
	default:
	}

	return nil
}

func (g *gui) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

// Launch the gui and block until the window is closed. The endGui channel
// ends the gui from the outside.
func Launch(endGui chan bool, u *ui.UI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)

	if err := onWindowOpen(); err != nil {
		logger.Log(logger.Allow, "gui", err)
	}

	g := &gui{
		endGui: endGui,
		u:      u,
	}
	g.console = hardware.Create(g, g)

	g.inputSystem.Init(einput.SystemConfig{
		DevicesEnabled: einput.AnyDevice,
	})

	err := ebiten.RunGame(g)

	if werr := onWindowClose(); werr != nil {
		logger.Log(logger.Allow, "gui", werr)
	}

	return err
}

package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jetsetilly/crankpad/input"
)

const (
	screenWidth  = 320
	screenHeight = 160
)

var (
	colBackground = color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xff}
	colIdle       = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
	colPressed    = color.RGBA{R: 0xf0, G: 0xc0, B: 0x30, A: 0xff}
	colDocked     = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	colCrank      = color.RGBA{R: 0x30, G: 0xc0, B: 0xf0, A: 0xff}
)

func buttonColor(pressed bool) color.RGBA {
	if pressed {
		return colPressed
	}
	return colIdle
}

func (g *gui) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	st := g.console.Buttons()

	// d-pad cross
	const cell = 24
	const dpadX, dpadY = 64, 80
	vector.DrawFilledRect(screen, dpadX-cell/2, dpadY-cell*1.5, cell, cell, buttonColor(st.IsPressed(input.Up)), false)
	vector.DrawFilledRect(screen, dpadX-cell/2, dpadY+cell/2, cell, cell, buttonColor(st.IsPressed(input.Down)), false)
	vector.DrawFilledRect(screen, dpadX-cell*1.5, dpadY-cell/2, cell, cell, buttonColor(st.IsPressed(input.Left)), false)
	vector.DrawFilledRect(screen, dpadX+cell/2, dpadY-cell/2, cell, cell, buttonColor(st.IsPressed(input.Right)), false)

	// face buttons
	vector.DrawFilledCircle(screen, 160, 96, 14, buttonColor(st.IsPressed(input.B)), true)
	vector.DrawFilledCircle(screen, 192, 64, 14, buttonColor(st.IsPressed(input.A)), true)

	// crank dial. zero degrees points up and the angle increases clockwise
	crk := g.console.Crank()
	const dialX, dialY, dialR = 264, 80, 28
	if crk.IsDocked() {
		vector.StrokeCircle(screen, dialX, dialY, dialR, 2, colDocked, true)
		ebitenutil.DebugPrintAt(screen, "docked", dialX-18, dialY-8)
	} else {
		vector.StrokeCircle(screen, dialX, dialY, dialR, 2, colIdle, true)
		rad := float64(crk.AngleRadians())
		hx := dialX + float32(math.Sin(rad))*dialR
		hy := dialY - float32(math.Cos(rad))*dialR
		vector.StrokeLine(screen, dialX, dialY, hx, hy, 3, colCrank, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5.1f", crk.AngleDegrees()), dialX-18, dialY+dialR+6)
	}
}

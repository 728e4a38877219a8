package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jetsetilly/crankpad/resources"
)

func onWindowOpen() error {
	s, err := resources.Read("window")
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}

	var x, y, w, h int

	_, err = fmt.Sscanf(s, "%d %d %d %d", &x, &y, &w, &h)
	if err != nil {
		return err
	}

	ebiten.SetWindowPosition(x, y)
	ebiten.SetWindowSize(w, h)

	return nil
}

func onWindowClose() error {
	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	s := fmt.Sprintf("%d %d %d %d", x, y, w, h)
	return resources.Write("window", s)
}

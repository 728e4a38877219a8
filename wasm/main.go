// The wasm build of crankpad runs the gui on its own, without the terminal
// monitor. Build with GOOS=js GOARCH=wasm, place the result in the www
// directory and serve it with the httpd program.
package main

import (
	"fmt"

	"github.com/jetsetilly/crankpad/gui"
	"github.com/jetsetilly/crankpad/ui"
)

func main() {
	endGui := make(chan bool, 1)

	u := ui.NewUI()

	// nothing reads the reports in the browser. drain them
	go func() {
		for range u.Reports {
		}
	}()

	if err := gui.Launch(endGui, u); err != nil {
		fmt.Printf("*** %s\n", err)
	}
}

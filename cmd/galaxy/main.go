// Command galaxy renders a site catalog as an interactive 3D galaxy in the terminal
package main

import (
	"os"

	"github.com/lixenwraith/vi-galaxy/engine"
)

func main() {
	// Panic recovery: restore the terminal before the stack is printed
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
